package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
)

const eventColumns = `id, title, annotation, description, category_id, initiator_id,
			lat, lon, paid, participant_limit, request_moderation, confirmed_requests,
			state, event_date, created_on, published_on`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.CategoryID, e.InitiatorID,
		e.Lat, e.Lon, e.Paid, e.ParticipantLimit, e.RequestModeration, e.ConfirmedRequests,
		e.State, e.EventDate, e.CreatedOn, e.PublishedOn,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// Update persists every mutable field of the event. The capacity counter is
// owned by RequestRepository and deliberately not written here.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, annotation = $3, description = $4, category_id = $5,
				  lat = $6, lon = $7, paid = $8, participant_limit = $9,
				  request_moderation = $10, state = $11, event_date = $12, published_on = $13
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.CategoryID,
		e.Lat, e.Lon, e.Paid, e.ParticipantLimit,
		e.RequestModeration, e.State, e.EventDate, e.PublishedOn,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return domain.ErrCategoryNotFound
			case "23514":
				return domain.ErrCapacityBelowConfirmed
			}
		}
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListByInitiator(ctx context.Context, initiatorID string, offset, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE initiator_id = $1
			  ORDER BY event_date DESC
			  OFFSET $2 LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, initiatorID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list events by initiator: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) AdminSearch(ctx context.Context, f domain.AdminEventFilter) ([]*domain.Event, error) {
	q := newEventQuery()
	if len(f.InitiatorIDs) > 0 {
		q.where("initiator_id = ANY(%s)", pq.Array(f.InitiatorIDs))
	}
	if len(f.States) > 0 {
		q.where("state = ANY(%s)", pq.Array(f.States))
	}
	if len(f.CategoryIDs) > 0 {
		q.where("category_id = ANY(%s)", pq.Array(f.CategoryIDs))
	}
	q.dateRange(f.RangeStart, f.RangeEnd)

	query, args := q.build("ORDER BY event_date DESC", f.Offset, f.Limit)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("admin search events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) PublicSearch(ctx context.Context, f domain.PublicEventFilter) ([]*domain.Event, error) {
	q := newEventQuery()
	q.where("state = %s", domain.EventStatePublished)
	if f.Text != "" {
		q.where("(annotation ILIKE %s OR description ILIKE %s)", "%"+f.Text+"%")
	}
	if len(f.CategoryIDs) > 0 {
		q.where("category_id = ANY(%s)", pq.Array(f.CategoryIDs))
	}
	if f.Paid != nil {
		q.where("paid = %s", *f.Paid)
	}
	if f.OnlyAvailable {
		q.clause("(participant_limit = 0 OR confirmed_requests < participant_limit)")
	}
	if f.RangeStart == nil && f.RangeEnd == nil {
		// No explicit window means upcoming events only.
		q.clause("event_date > NOW()")
	} else {
		q.dateRange(f.RangeStart, f.RangeEnd)
	}

	// Sorting by views happens in the service after counts are attached;
	// the query always returns date order.
	query, args := q.build("ORDER BY event_date DESC", f.Offset, f.Limit)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("public search events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*domain.Event, error) {
	var e domain.Event
	var publishedOn sql.NullTime
	if err := row.Scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.CategoryID, &e.InitiatorID,
		&e.Lat, &e.Lon, &e.Paid, &e.ParticipantLimit, &e.RequestModeration, &e.ConfirmedRequests,
		&e.State, &e.EventDate, &e.CreatedOn, &publishedOn,
	); err != nil {
		return nil, err
	}
	if publishedOn.Valid {
		t := publishedOn.Time
		e.PublishedOn = &t
	}

	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// eventQuery composes the optional search predicates into one WHERE clause
// instead of one hand-written query per parameter combination.
type eventQuery struct {
	clauses []string
	args    []any
}

func newEventQuery() *eventQuery {
	return &eventQuery{}
}

// where appends a predicate, substituting each %s with the next positional
// placeholder. One argument may be referenced several times (text search).
func (q *eventQuery) where(cond string, arg any) {
	q.args = append(q.args, arg)
	placeholder := fmt.Sprintf("$%d", len(q.args))
	q.clauses = append(q.clauses, strings.ReplaceAll(cond, "%s", placeholder))
}

func (q *eventQuery) clause(cond string) {
	q.clauses = append(q.clauses, cond)
}

func (q *eventQuery) dateRange(start, end *time.Time) {
	if start != nil {
		q.where("event_date >= %s", *start)
	}
	if end != nil {
		q.where("event_date <= %s", *end)
	}
}

func (q *eventQuery) build(order string, offset, limit int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + eventColumns + ` FROM events`)
	if len(q.clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.clauses, " AND "))
	}
	sb.WriteString(" " + order)

	q.args = append(q.args, offset, limit)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(q.args)-1, len(q.args)))

	return sb.String(), q.args
}
