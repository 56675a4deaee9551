package ports

import (
	"context"
	"time"

	"github.com/ivan-nizalzov/explore-with-me/internal/stats"
)

// StatsClient is the view-count collaborator. Neither call is transactional
// with event or request mutations; failures must not fail the caller.
type StatsClient interface {
	RecordHit(ctx context.Context, hit stats.EndpointHit) error
	ViewCounts(ctx context.Context, start, end time.Time, uris []string, unique bool) (map[string]int64, error)
}
