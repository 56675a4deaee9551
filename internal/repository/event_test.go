package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQuery_NoPredicates(t *testing.T) {
	q := newEventQuery()

	query, args := q.build("ORDER BY event_date DESC", 0, 10)

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY event_date DESC")
	assert.Contains(t, query, "OFFSET $1 LIMIT $2")
	assert.Equal(t, []any{0, 10}, args)
}

func TestEventQuery_NumbersPlaceholdersInOrder(t *testing.T) {
	q := newEventQuery()
	q.where("state = %s", "PUBLISHED")
	q.where("paid = %s", true)

	query, args := q.build("ORDER BY event_date DESC", 20, 5)

	assert.Contains(t, query, "state = $1")
	assert.Contains(t, query, "paid = $2")
	assert.Contains(t, query, "OFFSET $3 LIMIT $4")
	assert.Equal(t, []any{"PUBLISHED", true, 20, 5}, args)
}

func TestEventQuery_ReusesArgForRepeatedPlaceholder(t *testing.T) {
	q := newEventQuery()
	q.where("(annotation ILIKE %s OR description ILIKE %s)", "%music%")

	query, args := q.build("ORDER BY event_date DESC", 0, 10)

	// One argument, referenced twice.
	assert.Contains(t, query, "annotation ILIKE $1")
	assert.Contains(t, query, "description ILIKE $1")
	require.Len(t, args, 3)
	assert.Equal(t, "%music%", args[0])
}

func TestEventQuery_JoinsClausesWithAnd(t *testing.T) {
	q := newEventQuery()
	q.where("state = %s", "PUBLISHED")
	q.clause("(participant_limit = 0 OR confirmed_requests < participant_limit)")

	query, _ := q.build("ORDER BY event_date DESC", 0, 10)

	assert.Contains(t, query, "WHERE state = $1 AND (participant_limit = 0 OR confirmed_requests < participant_limit)")
}

func TestEventQuery_DateRange(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	q := newEventQuery()
	q.dateRange(&start, &end)

	query, args := q.build("ORDER BY event_date DESC", 0, 10)

	assert.Contains(t, query, "event_date >= $1")
	assert.Contains(t, query, "event_date <= $2")
	assert.Equal(t, []any{start, end, 0, 10}, args)
}

func TestEventQuery_OpenEndedRange(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	q := newEventQuery()
	q.dateRange(&start, nil)

	query, args := q.build("ORDER BY event_date DESC", 0, 10)

	assert.Contains(t, query, "event_date >= $1")
	assert.NotContains(t, query, "event_date <=")
	assert.Equal(t, []any{start, 0, 10}, args)
}
