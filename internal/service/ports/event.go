package ports

import (
	"context"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	ListByInitiator(ctx context.Context, initiatorID string, offset, limit int) ([]*domain.Event, error)
	AdminSearch(ctx context.Context, f domain.AdminEventFilter) ([]*domain.Event, error)
	PublicSearch(ctx context.Context, f domain.PublicEventFilter) ([]*domain.Event, error)
}
