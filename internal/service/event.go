package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/service/ports"
	"github.com/ivan-nizalzov/explore-with-me/internal/stats"
)

const (
	// Owners must plan at least two hours ahead; admins may publish anything
	// at least one hour out.
	minOwnerLeadTime = 2 * time.Hour
	minAdminLeadTime = 1 * time.Hour

	eventsURIPrefix = "/events/"
)

type EventService struct {
	eventRepo    ports.EventRepo
	userRepo     ports.UserRepo
	categoryRepo ports.CategoryRepo
	statsClient  ports.StatsClient
	logger       logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	categoryRepo ports.CategoryRepo,
	statsClient ports.StatsClient,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		statsClient:  statsClient,
		logger:       logger,
	}
}

func (s *EventService) Create(ctx context.Context, initiatorID string, in domain.NewEventInput) (*domain.Event, error) {
	if in.Title == "" || in.Annotation == "" {
		return nil, fmt.Errorf("%w: title and annotation are required", domain.ErrValidation)
	}
	if err := checkLeadTime(in.EventDate, minOwnerLeadTime); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}

	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             in.Title,
		Annotation:        in.Annotation,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		InitiatorID:       initiatorID,
		Lat:               in.Lat,
		Lon:               in.Lon,
		Paid:              false,
		ParticipantLimit:  0,
		RequestModeration: true,
		State:             domain.EventStatePending,
		EventDate:         in.EventDate,
		CreatedOn:         time.Now().UTC(),
	}
	if in.Paid != nil {
		event.Paid = *in.Paid
	}
	if in.ParticipantLimit != nil {
		event.ParticipantLimit = *in.ParticipantLimit
	}
	if in.RequestModeration != nil {
		event.RequestModeration = *in.RequestModeration
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("initiator_id", initiatorID),
	)

	return event, nil
}

func (s *EventService) ListByInitiator(ctx context.Context, initiatorID string, offset, limit int) ([]*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	events, err := s.eventRepo.ListByInitiator(ctx, initiatorID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	s.attachViews(ctx, events)

	return events, nil
}

func (s *EventService) GetByInitiator(ctx context.Context, initiatorID, eventID string) (*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != initiatorID {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrEventNotFound)
	}
	s.attachViews(ctx, []*domain.Event{event})

	return event, nil
}

// UpdateByInitiator applies an owner-side partial update. A published event
// is immutable for its owner.
func (s *EventService) UpdateByInitiator(ctx context.Context, initiatorID, eventID string, in domain.UpdateEventInput) (*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != initiatorID {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrEventNotFound)
	}

	if event.State != domain.EventStatePending && event.State != domain.EventStateCanceled {
		return nil, fmt.Errorf("%w: state=%s", domain.ErrEventNotEditable, event.State)
	}
	if in.EventDate != nil {
		if err = checkLeadTime(*in.EventDate, minOwnerLeadTime); err != nil {
			return nil, err
		}
	}
	if in.StateAction != nil {
		next, err := domain.Transition(domain.RoleOwner, event.State, *in.StateAction)
		if err != nil {
			return nil, err
		}
		event.State = next
	}

	if err = s.applyPatch(ctx, event, in); err != nil {
		return nil, err
	}
	if err = s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated by initiator",
		logger.String("event_id", eventID),
		logger.String("initiator_id", initiatorID),
		logger.String("state", string(event.State)),
	)
	s.attachViews(ctx, []*domain.Event{event})

	return event, nil
}

func (s *EventService) AdminSearch(ctx context.Context, f domain.AdminEventFilter) ([]*domain.Event, error) {
	events, err := s.eventRepo.AdminSearch(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("admin search: %w", err)
	}
	s.attachViews(ctx, events)

	return events, nil
}

// UpdateByAdmin moderates an event: publish or reject, plus optional field
// edits. Publishing stamps publishedOn.
func (s *EventService) UpdateByAdmin(ctx context.Context, eventID string, in domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if in.EventDate != nil {
		if err = checkLeadTime(*in.EventDate, minAdminLeadTime); err != nil {
			return nil, err
		}
	}
	if in.StateAction != nil {
		next, err := domain.Transition(domain.RoleAdmin, event.State, *in.StateAction)
		if err != nil {
			return nil, err
		}
		if next == domain.EventStatePublished {
			eventDate := event.EventDate
			if in.EventDate != nil {
				eventDate = *in.EventDate
			}
			if time.Until(eventDate) < minAdminLeadTime {
				return nil, fmt.Errorf("%w: event starts less than %s from now",
					domain.ErrInvalidStateTransition, minAdminLeadTime)
			}
			now := time.Now().UTC()
			event.PublishedOn = &now
		}
		event.State = next
	}

	if err = s.applyPatch(ctx, event, in); err != nil {
		return nil, err
	}
	if err = s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated by admin",
		logger.String("event_id", eventID),
		logger.String("state", string(event.State)),
	)
	s.attachViews(ctx, []*domain.Event{event})

	return event, nil
}

// PublicSearch lists published events. The serving request is logged to the
// stats service as a side effect.
func (s *EventService) PublicSearch(ctx context.Context, f domain.PublicEventFilter, clientIP string) ([]*domain.Event, error) {
	if f.RangeStart != nil && f.RangeEnd != nil && f.RangeStart.After(*f.RangeEnd) {
		return nil, fmt.Errorf("%w: range start is after range end", domain.ErrValidation)
	}

	events, err := s.eventRepo.PublicSearch(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("public search: %w", err)
	}
	s.attachViews(ctx, events)

	if f.Sort == domain.SortViews {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Views < events[j].Views
		})
	}

	s.recordHit(ctx, "/events", clientIP)

	return events, nil
}

// PublicGet exposes a single published event; anything else is not found
// from the public path.
func (s *EventService) PublicGet(ctx context.Context, eventID, clientIP string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.State != domain.EventStatePublished {
		return nil, fmt.Errorf("%w: event is not published", domain.ErrEventNotFound)
	}

	s.recordHit(ctx, eventsURIPrefix+eventID, clientIP)
	s.attachViews(ctx, []*domain.Event{event})

	return event, nil
}

func (s *EventService) applyPatch(ctx context.Context, event *domain.Event, in domain.UpdateEventInput) error {
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		event.CategoryID = *in.CategoryID
	}
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Annotation != nil {
		event.Annotation = *in.Annotation
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Lat != nil {
		event.Lat = *in.Lat
	}
	if in.Lon != nil {
		event.Lon = *in.Lon
	}
	if in.EventDate != nil {
		event.EventDate = *in.EventDate
	}
	if in.Paid != nil {
		event.Paid = *in.Paid
	}
	if in.ParticipantLimit != nil {
		event.ParticipantLimit = *in.ParticipantLimit
	}
	if in.RequestModeration != nil {
		event.RequestModeration = *in.RequestModeration
	}

	return nil
}

// attachViews refreshes the derived view counters from the stats service.
// A failure leaves counts at zero and never fails the read itself.
func (s *EventService) attachViews(ctx context.Context, events []*domain.Event) {
	if len(events) == 0 {
		return
	}

	uris := make([]string, 0, len(events))
	for _, e := range events {
		uris = append(uris, eventsURIPrefix+e.ID)
	}

	now := time.Now().UTC()
	counts, err := s.statsClient.ViewCounts(ctx, now.AddDate(-100, 0, 0), now, uris, true)
	if err != nil {
		s.logger.Warn("failed to fetch view counts",
			logger.Int("events", len(events)),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range events {
		e.Views = counts[eventsURIPrefix+e.ID]
	}
}

func (s *EventService) recordHit(ctx context.Context, uri, clientIP string) {
	hit := stats.EndpointHit{
		URI:       uri,
		IP:        clientIP,
		Timestamp: time.Now().UTC(),
	}

	go func(ctx context.Context) {
		if err := s.statsClient.RecordHit(ctx, hit); err != nil {
			s.logger.Warn("failed to record endpoint hit",
				logger.String("uri", uri),
				logger.String("error", err.Error()),
			)
		}
	}(context.WithoutCancel(ctx))
}

func checkLeadTime(eventDate time.Time, lead time.Duration) error {
	if time.Until(eventDate) < lead {
		return fmt.Errorf("%w: event date must be at least %s from now", domain.ErrValidation, lead)
	}
	return nil
}
