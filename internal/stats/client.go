package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/retry"
)

type hitPayload struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// Client talks to the statistics service over HTTP. A stale count or a lost
// hit is tolerable, so callers are expected to treat failures as soft.
type Client struct {
	baseURL  string
	app      string
	http     *http.Client
	strategy retry.Strategy
}

func NewClient(baseURL, app string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		app:     app,
		http:    &http.Client{Timeout: timeout},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// RecordHit logs one endpoint hit for this application.
func (c *Client) RecordHit(ctx context.Context, hit EndpointHit) error {
	if hit.App == "" {
		hit.App = c.app
	}
	body, err := json.Marshal(hitPayload{
		App:       hit.App,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: hit.Timestamp.Format(DateTimeLayout),
	})
	if err != nil {
		return fmt.Errorf("marshal hit: %w", err)
	}

	return retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build hit request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("send hit: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
			return fmt.Errorf("send hit: unexpected status %d", resp.StatusCode)
		}
		return nil
	}, c.strategy)
}

// ViewCounts returns hit counts per uri for the given period.
func (c *Client) ViewCounts(ctx context.Context, start, end time.Time, uris []string, unique bool) (map[string]int64, error) {
	q := url.Values{}
	q.Set("start", start.Format(DateTimeLayout))
	q.Set("end", end.Format(DateTimeLayout))
	q.Set("unique", strconv.FormatBool(unique))
	for _, u := range uris {
		q.Add("uris", u)
	}

	var views []ViewStats
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+q.Encode(), nil)
		if err != nil {
			return fmt.Errorf("build stats request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("get stats: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("get stats: unexpected status %d", resp.StatusCode)
		}

		views = views[:0]
		if err = json.NewDecoder(resp.Body).Decode(&views); err != nil {
			return fmt.Errorf("decode stats: %w", err)
		}
		return nil
	}, c.strategy)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(views))
	for _, v := range views {
		counts[v.URI] = v.Hits
	}
	return counts, nil
}
