package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
)

const requestColumns = `id, event_id, requester_id, status, created`

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create admits one participation request. The event row is locked for the
// whole check-and-insert, so two admissions racing at the limit boundary
// cannot both pass the capacity check. The final status is written back into
// r before commit: CONFIRMED when the event is unmoderated or uncapped,
// PENDING otherwise.
func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		initiatorID       string
		state             domain.EventState
		participantLimit  int
		confirmedRequests int
		requestModeration bool
	)
	eventQuery := `SELECT initiator_id, state, participant_limit, confirmed_requests, request_moderation
				   FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, eventQuery, req.EventID).Scan(
		&initiatorID, &state, &participantLimit, &confirmedRequests, &requestModeration,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	req.Status, err = admissionStatus(
		initiatorID, req.RequesterID, state,
		participantLimit, confirmedRequests, requestModeration,
	)
	if err != nil {
		return err
	}

	insertQuery := `INSERT INTO requests (` + requestColumns + `)
					VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		req.ID, req.EventID, req.RequesterID, req.Status, req.Created,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrDuplicateRequest
			case "23503":
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("insert request: %w", err)
	}

	if req.Status == domain.RequestStatusConfirmed {
		if err = r.confirmSeats(ctx, tx, req.EventID, 1); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.Request
	if err = row.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.Created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE requester_id = $1
			  ORDER BY created DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE event_id = $1
			  ORDER BY created`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests by event: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// Cancel is the requester's own withdrawal: unconditional, and a seat taken
// by an already-confirmed request is not released.
func (r *RequestRepository) Cancel(ctx context.Context, requestID string) (*domain.Request, error) {
	query := `UPDATE requests
			  SET status = $2
			  WHERE id = $1
			  RETURNING ` + requestColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, requestID, domain.RequestStatusCanceled)
	if err != nil {
		return nil, fmt.Errorf("cancel request: %w", err)
	}

	var req domain.Request
	if err = row.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.Created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan cancelled request: %w", err)
	}

	return &req, nil
}

// Moderate applies one confirm/reject batch. The event row lock serializes
// the whole walk against concurrent admissions. Confirmation spends seats in
// requestIDs order; once capacity is gone, the remaining pending requests in
// the list are rejected. An unknown id aborts the batch before any mutation
// becomes visible.
func (r *RequestRepository) Moderate(
	ctx context.Context,
	eventID string,
	requestIDs []string,
	status domain.RequestStatus,
) (*domain.StatusUpdateResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var participantLimit, confirmedRequests int
	var requestModeration bool
	eventQuery := `SELECT participant_limit, confirmed_requests, request_moderation
				   FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, eventQuery, eventID).Scan(
		&participantLimit, &confirmedRequests, &requestModeration,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if !requestModeration || participantLimit == 0 {
		return nil, domain.ErrModerationNotRequired
	}
	remaining := participantLimit - confirmedRequests
	if remaining <= 0 {
		return nil, domain.ErrParticipantLimitReached
	}

	batch, err := loadBatch(ctx, tx, requestIDs)
	if err != nil {
		return nil, err
	}
	if err = verifyBatch(batch, requestIDs, eventID); err != nil {
		return nil, err
	}

	result, confirmed, rejected := partitionModeration(batch, requestIDs, status, remaining)

	if err = updateStatuses(ctx, tx, confirmed, domain.RequestStatusConfirmed); err != nil {
		return nil, err
	}
	if err = updateStatuses(ctx, tx, rejected, domain.RequestStatusRejected); err != nil {
		return nil, err
	}
	if len(confirmed) > 0 {
		if err = r.confirmSeats(ctx, tx, eventID, len(confirmed)); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit moderation: %w", err)
	}

	return result, nil
}

// RejectStalePending rejects requests still pending for events whose date has
// already passed. No seats were taken by those requests, so the capacity
// counter stays untouched.
func (r *RequestRepository) RejectStalePending(ctx context.Context) ([]*domain.Request, error) {
	query := `UPDATE requests r
			  SET status = $2
			  FROM events e
			  WHERE r.event_id = e.id
				AND r.status = $1
				AND e.event_date < NOW()
			  RETURNING r.id, r.event_id, r.requester_id, r.status, r.created`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RequestStatusPending, domain.RequestStatusRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("reject stale requests: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *RequestRepository) confirmSeats(ctx context.Context, tx *sql.Tx, eventID string, seats int) error {
	query := `UPDATE events
			  SET confirmed_requests = confirmed_requests + $2
			  WHERE id = $1
				AND (participant_limit = 0 OR confirmed_requests + $2 <= participant_limit)`
	res, err := tx.ExecContext(ctx, query, eventID, seats)
	if err != nil {
		return fmt.Errorf("increment confirmed requests: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirmed requests rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrParticipantLimitReached
	}

	return nil
}

func loadBatch(ctx context.Context, tx *sql.Tx, requestIDs []string) (map[string]*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = ANY($1)`
	rows, err := tx.QueryContext(ctx, query, pq.Array(requestIDs))
	if err != nil {
		return nil, fmt.Errorf("load request batch: %w", err)
	}
	defer rows.Close()

	batch := make(map[string]*domain.Request, len(requestIDs))
	for rows.Next() {
		var req domain.Request
		if err = rows.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		batch[req.ID] = &req
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("load request batch: %w", err)
	}

	return batch, nil
}

// verifyBatch aborts the batch when any requested id is unknown or belongs to
// another event. Confirming a foreign request would spend this event's seats
// for a counter it never touches.
func verifyBatch(batch map[string]*domain.Request, requestIDs []string, eventID string) error {
	for _, id := range requestIDs {
		req, ok := batch[id]
		if !ok || req.EventID != eventID {
			return fmt.Errorf("%w: id=%s", domain.ErrRequestNotFound, id)
		}
	}

	return nil
}

// admissionStatus screens a new participation request against the locked
// event snapshot and picks its initial status: CONFIRMED when the event is
// unmoderated or uncapped, PENDING otherwise.
func admissionStatus(
	initiatorID, requesterID string,
	state domain.EventState,
	participantLimit, confirmedRequests int,
	requestModeration bool,
) (domain.RequestStatus, error) {
	if initiatorID == requesterID {
		return "", domain.ErrOwnEventParticipation
	}
	if state != domain.EventStatePublished {
		return "", domain.ErrEventNotPublished
	}
	if participantLimit != 0 && participantLimit <= confirmedRequests {
		return "", domain.ErrParticipantLimitReached
	}

	if !requestModeration || participantLimit == 0 {
		return domain.RequestStatusConfirmed, nil
	}

	return domain.RequestStatusPending, nil
}

// partitionModeration walks the batch in requestIDs order spending remaining
// seats on confirmations. Once seats run out, the rest of the pending entries
// are rejected regardless of the desired status. Entries already resolved are
// skipped. Request statuses in batch are mutated in place.
func partitionModeration(
	batch map[string]*domain.Request,
	requestIDs []string,
	status domain.RequestStatus,
	remaining int,
) (*domain.StatusUpdateResult, []string, []string) {
	result := &domain.StatusUpdateResult{
		Confirmed: []*domain.Request{},
		Rejected:  []*domain.Request{},
	}
	var confirmed, rejected []string

	for _, id := range requestIDs {
		req := batch[id]
		if req.Status != domain.RequestStatusPending {
			// Already resolved entries are a per-element no-op.
			continue
		}

		if status == domain.RequestStatusConfirmed && remaining > 0 {
			req.Status = domain.RequestStatusConfirmed
			remaining--
			confirmed = append(confirmed, id)
			result.Confirmed = append(result.Confirmed, req)
			continue
		}

		req.Status = domain.RequestStatusRejected
		rejected = append(rejected, id)
		result.Rejected = append(result.Rejected, req)
	}

	return result, confirmed, rejected
}

func updateStatuses(ctx context.Context, tx *sql.Tx, ids []string, status domain.RequestStatus) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE requests SET status = $1 WHERE id = ANY($2)`
	if _, err := tx.ExecContext(ctx, query, status, pq.Array(ids)); err != nil {
		return fmt.Errorf("update request statuses: %w", err)
	}

	return nil
}

func scanRequests(rows *sql.Rows) ([]*domain.Request, error) {
	var res []*domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}
