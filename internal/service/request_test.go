package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newRequestService(t *testing.T) (*mocks.MockRequestRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *RequestService) {
	t.Helper()
	requestRepo := mocks.NewMockRequestRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewRequestService(requestRepo, eventRepo, userRepo, newTestLogger(t))
	return requestRepo, eventRepo, userRepo, svc
}

func TestRequestService_Create_Pending(t *testing.T) {
	requestRepo, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	request, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", request.EventID)
	assert.Equal(t, "u1", request.RequesterID)
	assert.Equal(t, domain.RequestStatusPending, request.Status)
	assert.NotEmpty(t, request.ID)
}

func TestRequestService_Create_AutoConfirmed(t *testing.T) {
	requestRepo, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	// Without moderation the repository confirms the request in the same
	// transaction that increments the seat counter.
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *domain.Request) error {
			r.Status = domain.RequestStatusConfirmed
			return nil
		})

	request, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, request.Status)
}

func TestRequestService_Create_RequesterNotFound(t *testing.T) {
	_, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), "missing", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRequestService_Create_LimitReached(t *testing.T) {
	requestRepo, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrParticipantLimitReached)

	_, err := svc.Create(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantLimitReached)
}

func TestRequestService_Create_Duplicate(t *testing.T) {
	requestRepo, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateRequest)

	_, err := svc.Create(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestRequestService_Create_OwnEvent(t *testing.T) {
	requestRepo, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrOwnEventParticipation)

	_, err := svc.Create(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOwnEventParticipation)
}

func TestRequestService_Cancel_Success(t *testing.T) {
	requestRepo, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	requestRepo.EXPECT().Cancel(mock.Anything, "r1").
		Return(&domain.Request{ID: "r1", Status: domain.RequestStatusCanceled}, nil)

	request, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, request.Status)
}

func TestRequestService_Cancel_NotFound(t *testing.T) {
	requestRepo, _, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	requestRepo.EXPECT().Cancel(mock.Anything, "missing").Return(nil, domain.ErrRequestNotFound)

	_, err := svc.Cancel(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestService_ListForEvent_Success(t *testing.T) {
	requestRepo, eventRepo, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1"}, nil)
	requestRepo.EXPECT().ListByEvent(mock.Anything, "e1").
		Return([]*domain.Request{{ID: "r1"}, {ID: "r2"}}, nil)

	requests, err := svc.ListForEvent(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestRequestService_ListForEvent_NotOwner(t *testing.T) {
	_, eventRepo, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1"}, nil)

	_, err := svc.ListForEvent(context.Background(), "u2", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRequestService_ChangeStatus_Confirm(t *testing.T) {
	requestRepo, eventRepo, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1"}, nil)

	// Two seats left, three candidates: the third spills over into rejection.
	result := &domain.StatusUpdateResult{
		Confirmed: []*domain.Request{
			{ID: "r1", Status: domain.RequestStatusConfirmed},
			{ID: "r2", Status: domain.RequestStatusConfirmed},
		},
		Rejected: []*domain.Request{
			{ID: "r3", Status: domain.RequestStatusRejected},
		},
	}
	requestRepo.EXPECT().
		Moderate(mock.Anything, "e1", []string{"r1", "r2", "r3"}, domain.RequestStatusConfirmed).
		Return(result, nil)

	got, err := svc.ChangeStatus(context.Background(), "u1", "e1", domain.StatusUpdateInput{
		RequestIDs: []string{"r1", "r2", "r3"},
		Status:     domain.RequestStatusConfirmed,
	})

	require.NoError(t, err)
	assert.Len(t, got.Confirmed, 2)
	assert.Len(t, got.Rejected, 1)
}

func TestRequestService_ChangeStatus_InvalidTargetStatus(t *testing.T) {
	_, _, _, svc := newRequestService(t)

	_, err := svc.ChangeStatus(context.Background(), "u1", "e1", domain.StatusUpdateInput{
		RequestIDs: []string{"r1"},
		Status:     domain.RequestStatusCanceled,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_ChangeStatus_NotOwner(t *testing.T) {
	_, eventRepo, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1"}, nil)

	_, err := svc.ChangeStatus(context.Background(), "u2", "e1", domain.StatusUpdateInput{
		RequestIDs: []string{"r1"},
		Status:     domain.RequestStatusRejected,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRequestService_ChangeStatus_LimitReached(t *testing.T) {
	requestRepo, eventRepo, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1"}, nil)
	requestRepo.EXPECT().
		Moderate(mock.Anything, "e1", []string{"r1"}, domain.RequestStatusConfirmed).
		Return(nil, domain.ErrParticipantLimitReached)

	_, err := svc.ChangeStatus(context.Background(), "u1", "e1", domain.StatusUpdateInput{
		RequestIDs: []string{"r1"},
		Status:     domain.RequestStatusConfirmed,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantLimitReached)
}

func TestRequestService_ChangeStatus_UnknownRequestAborts(t *testing.T) {
	requestRepo, eventRepo, userRepo, svc := newRequestService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", InitiatorID: "u1"}, nil)
	requestRepo.EXPECT().
		Moderate(mock.Anything, "e1", []string{"r1", "missing"}, domain.RequestStatusRejected).
		Return(nil, domain.ErrRequestNotFound)

	_, err := svc.ChangeStatus(context.Background(), "u1", "e1", domain.StatusUpdateInput{
		RequestIDs: []string{"r1", "missing"},
		Status:     domain.RequestStatusRejected,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestService_RejectStale_Success(t *testing.T) {
	requestRepo, _, _, svc := newRequestService(t)

	rejected := []*domain.Request{
		{ID: "r1", Status: domain.RequestStatusRejected},
	}
	requestRepo.EXPECT().RejectStalePending(mock.Anything).Return(rejected, nil)

	got, err := svc.RejectStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRequestService_RejectStale_RepoError(t *testing.T) {
	requestRepo, _, _, svc := newRequestService(t)

	requestRepo.EXPECT().RejectStalePending(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RejectStale(context.Background())

	require.Error(t, err)
}
