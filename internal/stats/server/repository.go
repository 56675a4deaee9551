package server

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ivan-nizalzov/explore-with-me/internal/stats"
)

type HitRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHitRepo(db *dbpg.DB) *HitRepository {
	return &HitRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HitRepository) Save(ctx context.Context, hit stats.EndpointHit) error {
	query := `INSERT INTO hits (app, uri, ip, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, hit.App, hit.URI, hit.IP, hit.Timestamp); err != nil {
		return fmt.Errorf("insert hit: %w", err)
	}

	return nil
}

// Aggregate counts hits per app+uri within [start, end], optionally counting
// each client address once, optionally restricted to the given uris.
func (r *HitRepository) Aggregate(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]stats.ViewStats, error) {
	counter := "count(ip)"
	if unique {
		counter = "count(distinct ip)"
	}

	query := `SELECT app, uri, ` + counter + ` AS hits
			  FROM hits
			  WHERE created_at BETWEEN $1 AND $2
				AND (cardinality($3::text[]) = 0 OR uri = ANY($3))
			  GROUP BY app, uri
			  ORDER BY hits DESC`

	if uris == nil {
		uris = []string{}
	}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, start, end, pq.Array(uris))
	if err != nil {
		return nil, fmt.Errorf("aggregate hits: %w", err)
	}
	defer rows.Close()

	var res []stats.ViewStats
	for rows.Next() {
		var v stats.ViewStats
		if err = rows.Scan(&v.App, &v.URI, &v.Hits); err != nil {
			return nil, fmt.Errorf("scan view stats: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}
