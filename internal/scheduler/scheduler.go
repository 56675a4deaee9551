package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
)

type requestSweeper interface {
	RejectStale(ctx context.Context) ([]*domain.Request, error)
}

// Scheduler periodically rejects participation requests that are still
// pending after their event has already taken place.
type Scheduler struct {
	requestService requestSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	requestService requestSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		requestService: requestService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	rejected, err := s.requestService.RejectStale(ctx)
	if err != nil {
		s.logger.Error("failed to reject stale requests",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range rejected {
		s.logger.Info("stale request rejected",
			logger.String("request_id", r.ID),
			logger.String("event_id", r.EventID),
			logger.String("requester_id", r.RequesterID),
		)
	}
}
