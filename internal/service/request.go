package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/service/ports"
)

// RequestService is the admission controller: it decides participation
// request outcomes against the event's capacity.
type RequestService struct {
	requestRepo ports.RequestRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	logger      logger.Logger
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create submits a participation request. The repository performs the whole
// admission decision under the event row lock; an unmoderated or uncapped
// event yields an immediately confirmed request.
func (s *RequestService) Create(ctx context.Context, requesterID, eventID string) (*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	request := &domain.Request{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      domain.RequestStatusPending,
		Created:     time.Now().UTC(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("participation request created",
		logger.String("request_id", request.ID),
		logger.String("event_id", eventID),
		logger.String("requester_id", requesterID),
		logger.String("status", string(request.Status)),
	)

	return request, nil
}

func (s *RequestService) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	return s.requestRepo.ListByRequester(ctx, requesterID)
}

// Cancel withdraws the requester's own request. Unconditional: a confirmed
// seat is not returned to the pool.
func (s *RequestService) Cancel(ctx context.Context, requesterID, requestID string) (*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	request, err := s.requestRepo.Cancel(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("cancel request: %w", err)
	}

	s.logger.Info("participation request cancelled",
		logger.String("request_id", requestID),
		logger.String("requester_id", requesterID),
	)

	return request, nil
}

func (s *RequestService) ListForEvent(ctx context.Context, ownerID, eventID string) ([]*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.InitiatorID != ownerID {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrEventNotFound)
	}

	return s.requestRepo.ListByEvent(ctx, eventID)
}

// ChangeStatus confirms or rejects a batch of pending requests. Confirmation
// spends remaining seats in the order the ids were given; overflowing
// requests are rejected. The repository aborts the whole batch when any id
// does not exist.
func (s *RequestService) ChangeStatus(ctx context.Context, ownerID, eventID string, in domain.StatusUpdateInput) (*domain.StatusUpdateResult, error) {
	if in.Status != domain.RequestStatusConfirmed && in.Status != domain.RequestStatusRejected {
		return nil, fmt.Errorf("%w: status must be CONFIRMED or REJECTED", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.InitiatorID != ownerID {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrEventNotFound)
	}

	result, err := s.requestRepo.Moderate(ctx, eventID, in.RequestIDs, in.Status)
	if err != nil {
		return nil, fmt.Errorf("moderate requests: %w", err)
	}

	s.logger.Info("request batch moderated",
		logger.String("event_id", eventID),
		logger.String("owner_id", ownerID),
		logger.String("status", string(in.Status)),
		logger.Int("confirmed", len(result.Confirmed)),
		logger.Int("rejected", len(result.Rejected)),
	)

	return result, nil
}

// RejectStale sweeps requests left pending after their event date passed.
// Called by the scheduler.
func (s *RequestService) RejectStale(ctx context.Context) ([]*domain.Request, error) {
	rejected, err := s.requestRepo.RejectStalePending(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject stale: %w", err)
	}

	if len(rejected) > 0 {
		s.logger.Info("stale pending requests rejected",
			logger.Int("count", len(rejected)),
		)
	}

	return rejected, nil
}
