package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/service/ports/mocks"
)

func newEventService(t *testing.T) (*mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockCategoryRepo, *mocks.MockStatsClient, *EventService) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	statsClient := mocks.NewMockStatsClient(t)
	svc := NewEventService(eventRepo, userRepo, categoryRepo, statsClient, newTestLogger(t))
	return eventRepo, userRepo, categoryRepo, statsClient, svc
}

func ptr[T any](v T) *T { return &v }

func TestEventService_Create_Defaults(t *testing.T) {
	eventRepo, userRepo, categoryRepo, _, svc := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	categoryRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "u1", domain.NewEventInput{
		Title:      "Concert",
		Annotation: "An evening of live music",
		CategoryID: "c1",
		EventDate:  time.Now().Add(3 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePending, event.State)
	assert.False(t, event.Paid)
	assert.Equal(t, 0, event.ParticipantLimit)
	assert.True(t, event.RequestModeration)
	assert.Equal(t, 0, event.ConfirmedRequests)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_TooSoon(t *testing.T) {
	_, _, _, _, svc := newEventService(t)

	_, err := svc.Create(context.Background(), "u1", domain.NewEventInput{
		Title:      "Concert",
		Annotation: "An evening of live music",
		CategoryID: "c1",
		EventDate:  time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_CategoryNotFound(t *testing.T) {
	_, userRepo, categoryRepo, _, svc := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	categoryRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.Create(context.Background(), "u1", domain.NewEventInput{
		Title:      "Concert",
		Annotation: "An evening of live music",
		CategoryID: "missing",
		EventDate:  time.Now().Add(3 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestEventService_UpdateByInitiator_CancelReview(t *testing.T) {
	eventRepo, userRepo, _, statsClient, svc := newEventService(t)

	event := &domain.Event{
		ID:          "e1",
		InitiatorID: "u1",
		State:       domain.EventStatePending,
		EventDate:   time.Now().Add(5 * time.Hour),
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, true).
		Return(map[string]int64{}, nil)

	got, err := svc.UpdateByInitiator(context.Background(), "u1", "e1", domain.UpdateEventInput{
		StateAction: ptr(domain.StateActionCancelReview),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStateCanceled, got.State)
}

func TestEventService_UpdateByInitiator_Resubmit(t *testing.T) {
	eventRepo, userRepo, _, statsClient, svc := newEventService(t)

	event := &domain.Event{
		ID:          "e1",
		InitiatorID: "u1",
		State:       domain.EventStateCanceled,
		EventDate:   time.Now().Add(5 * time.Hour),
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, true).
		Return(map[string]int64{}, nil)

	got, err := svc.UpdateByInitiator(context.Background(), "u1", "e1", domain.UpdateEventInput{
		StateAction: ptr(domain.StateActionSendToReview),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePending, got.State)
}

func TestEventService_UpdateByInitiator_PublishedIsImmutable(t *testing.T) {
	eventRepo, userRepo, _, _, svc := newEventService(t)

	event := &domain.Event{
		ID:          "e1",
		InitiatorID: "u1",
		State:       domain.EventStatePublished,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.UpdateByInitiator(context.Background(), "u1", "e1", domain.UpdateEventInput{
		Title: ptr("New title"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotEditable)
}

func TestEventService_UpdateByInitiator_NotOwner(t *testing.T) {
	eventRepo, userRepo, _, _, svc := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "u1", State: domain.EventStatePending}

	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.UpdateByInitiator(context.Background(), "u2", "e1", domain.UpdateEventInput{
		Title: ptr("New title"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_UpdateByAdmin_Publish(t *testing.T) {
	eventRepo, _, _, statsClient, svc := newEventService(t)

	event := &domain.Event{
		ID:        "e1",
		State:     domain.EventStatePending,
		EventDate: time.Now().Add(5 * time.Hour),
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, true).
		Return(map[string]int64{}, nil)

	got, err := svc.UpdateByAdmin(context.Background(), "e1", domain.UpdateEventInput{
		StateAction: ptr(domain.StateActionPublishEvent),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePublished, got.State)
	require.NotNil(t, got.PublishedOn)
	assert.WithinDuration(t, time.Now(), *got.PublishedOn, time.Minute)
}

func TestEventService_UpdateByAdmin_PublishTooSoon(t *testing.T) {
	eventRepo, _, _, _, svc := newEventService(t)

	event := &domain.Event{
		ID:        "e1",
		State:     domain.EventStatePending,
		EventDate: time.Now().Add(30 * time.Minute),
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.UpdateByAdmin(context.Background(), "e1", domain.UpdateEventInput{
		StateAction: ptr(domain.StateActionPublishEvent),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestEventService_UpdateByAdmin_RejectPublished(t *testing.T) {
	eventRepo, _, _, _, svc := newEventService(t)

	event := &domain.Event{
		ID:        "e1",
		State:     domain.EventStatePublished,
		EventDate: time.Now().Add(5 * time.Hour),
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.UpdateByAdmin(context.Background(), "e1", domain.UpdateEventInput{
		StateAction: ptr(domain.StateActionRejectEvent),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestEventService_PublicGet_Success(t *testing.T) {
	eventRepo, _, _, statsClient, svc := newEventService(t)

	event := &domain.Event{ID: "e1", State: domain.EventStatePublished}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	statsClient.EXPECT().RecordHit(mock.Anything, mock.Anything).Return(nil).Maybe()
	statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything, mock.Anything, []string{"/events/e1"}, true).
		Return(map[string]int64{"/events/e1": 7}, nil)

	got, err := svc.PublicGet(context.Background(), "e1", "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Views)

	time.Sleep(50 * time.Millisecond) // goroutine hit
}

func TestEventService_PublicGet_NotPublished(t *testing.T) {
	eventRepo, _, _, _, svc := newEventService(t)

	event := &domain.Event{ID: "e1", State: domain.EventStatePending}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.PublicGet(context.Background(), "e1", "10.0.0.1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_PublicSearch_SortByViews(t *testing.T) {
	eventRepo, _, _, statsClient, svc := newEventService(t)

	events := []*domain.Event{
		{ID: "e1", State: domain.EventStatePublished},
		{ID: "e2", State: domain.EventStatePublished},
	}

	eventRepo.EXPECT().PublicSearch(mock.Anything, mock.Anything).Return(events, nil)
	statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, true).
		Return(map[string]int64{"/events/e1": 9, "/events/e2": 3}, nil)
	statsClient.EXPECT().RecordHit(mock.Anything, mock.Anything).Return(nil).Maybe()

	got, err := svc.PublicSearch(context.Background(), domain.PublicEventFilter{
		Sort: domain.SortViews,
	}, "10.0.0.1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, "e1", got[1].ID)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_PublicSearch_BadRange(t *testing.T) {
	_, _, _, _, svc := newEventService(t)

	start := time.Now().Add(2 * time.Hour)
	end := time.Now().Add(time.Hour)

	_, err := svc.PublicSearch(context.Background(), domain.PublicEventFilter{
		RangeStart: &start,
		RangeEnd:   &end,
	}, "10.0.0.1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_PublicSearch_StatsDown(t *testing.T) {
	eventRepo, _, _, statsClient, svc := newEventService(t)

	events := []*domain.Event{{ID: "e1", State: domain.EventStatePublished}}

	eventRepo.EXPECT().PublicSearch(mock.Anything, mock.Anything).Return(events, nil)
	statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, true).
		Return(nil, context.DeadlineExceeded)
	statsClient.EXPECT().RecordHit(mock.Anything, mock.Anything).Return(nil).Maybe()

	got, err := svc.PublicSearch(context.Background(), domain.PublicEventFilter{}, "10.0.0.1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(0), got[0].Views)

	time.Sleep(50 * time.Millisecond)
}
