package ports

import (
	"context"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
)

// RequestRepo owns participation requests and the capacity ledger. Admission
// (Create) and moderation (Moderate) run as single transactions holding the
// event row lock, so the capacity check and the counter update cannot race.
type RequestRepo interface {
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error)
	Cancel(ctx context.Context, requestID string) (*domain.Request, error)
	Moderate(ctx context.Context, eventID string, requestIDs []string, status domain.RequestStatus) (*domain.StatusUpdateResult, error)
	RejectStalePending(ctx context.Context) ([]*domain.Request, error)
}
