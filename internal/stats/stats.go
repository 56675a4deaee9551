// Package stats holds the wire types shared by the statistics service and
// its HTTP client.
package stats

import "time"

// DateTimeLayout is the wire format for all stats timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

type EndpointHit struct {
	App       string    `json:"app"`
	URI       string    `json:"uri"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"-"`
}

type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}
