package server

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/stats"
)

type hitRepo interface {
	Save(ctx context.Context, hit stats.EndpointHit) error
	Aggregate(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]stats.ViewStats, error)
}

type StatsService struct {
	repo   hitRepo
	logger logger.Logger
}

func NewStatsService(repo hitRepo, logger logger.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

func (s *StatsService) AddHit(ctx context.Context, hit stats.EndpointHit) error {
	if hit.App == "" || hit.URI == "" {
		return fmt.Errorf("%w: app and uri are required", domain.ErrValidation)
	}
	if err := s.repo.Save(ctx, hit); err != nil {
		return fmt.Errorf("save hit: %w", err)
	}

	s.logger.Debug("endpoint hit recorded",
		logger.String("app", hit.App),
		logger.String("uri", hit.URI),
	)

	return nil
}

func (s *StatsService) GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]stats.ViewStats, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start is after end", domain.ErrValidation)
	}

	views, err := s.repo.Aggregate(ctx, start, end, uris, unique)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	return views, nil
}
