package domain

import "time"

type Request struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	Created     time.Time     `json:"created"`
}

type StatusUpdateInput struct {
	RequestIDs []string
	Status     RequestStatus
}

// StatusUpdateResult partitions the touched requests of a moderation batch.
type StatusUpdateResult struct {
	Confirmed []*Request `json:"confirmed_requests"`
	Rejected  []*Request `json:"rejected_requests"`
}
