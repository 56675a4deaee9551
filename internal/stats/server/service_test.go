package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/stats"
	"github.com/ivan-nizalzov/explore-with-me/internal/stats/server/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestStatsService_AddHit_Success(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewStatsService(repo, newTestLogger(t))

	hit := stats.EndpointHit{
		App:       "ewm-main-service",
		URI:       "/events/e1",
		IP:        "10.0.0.1",
		Timestamp: time.Now(),
	}
	repo.EXPECT().Save(mock.Anything, hit).Return(nil)

	err := svc.AddHit(context.Background(), hit)

	require.NoError(t, err)
}

func TestStatsService_AddHit_MissingApp(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewStatsService(repo, newTestLogger(t))

	err := svc.AddHit(context.Background(), stats.EndpointHit{URI: "/events"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatsService_AddHit_RepoError(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewStatsService(repo, newTestLogger(t))

	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db error"))

	err := svc.AddHit(context.Background(), stats.EndpointHit{
		App: "ewm-main-service",
		URI: "/events",
	})

	require.Error(t, err)
}

func TestStatsService_GetStats_Success(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewStatsService(repo, newTestLogger(t))

	start := time.Now().Add(-time.Hour)
	end := time.Now()
	views := []stats.ViewStats{
		{App: "ewm-main-service", URI: "/events/e1", Hits: 5},
	}
	repo.EXPECT().Aggregate(mock.Anything, start, end, []string{"/events/e1"}, true).Return(views, nil)

	got, err := svc.GetStats(context.Background(), start, end, []string{"/events/e1"}, true)

	require.NoError(t, err)
	assert.Equal(t, views, got)
}

func TestStatsService_GetStats_BadRange(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewStatsService(repo, newTestLogger(t))

	start := time.Now()
	end := start.Add(-time.Hour)

	_, err := svc.GetStats(context.Background(), start, end, nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
