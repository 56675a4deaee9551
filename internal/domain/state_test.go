package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_OwnerSendToReview(t *testing.T) {
	next, err := Transition(RoleOwner, EventStatePending, StateActionSendToReview)

	require.NoError(t, err)
	assert.Equal(t, EventStatePending, next)
}

func TestTransition_OwnerResubmitAfterCancel(t *testing.T) {
	next, err := Transition(RoleOwner, EventStateCanceled, StateActionSendToReview)

	require.NoError(t, err)
	assert.Equal(t, EventStatePending, next)
}

func TestTransition_OwnerCancelReview(t *testing.T) {
	next, err := Transition(RoleOwner, EventStatePending, StateActionCancelReview)

	require.NoError(t, err)
	assert.Equal(t, EventStateCanceled, next)
}

func TestTransition_AdminPublish(t *testing.T) {
	next, err := Transition(RoleAdmin, EventStatePending, StateActionPublishEvent)

	require.NoError(t, err)
	assert.Equal(t, EventStatePublished, next)
}

func TestTransition_AdminReject(t *testing.T) {
	next, err := Transition(RoleAdmin, EventStatePending, StateActionRejectEvent)

	require.NoError(t, err)
	assert.Equal(t, EventStateCanceled, next)
}

func TestTransition_PublishedIsTerminalForOwner(t *testing.T) {
	_, err := Transition(RoleOwner, EventStatePublished, StateActionCancelReview)

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestTransition_CannotPublishTwice(t *testing.T) {
	_, err := Transition(RoleAdmin, EventStatePublished, StateActionPublishEvent)

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestTransition_CannotRejectPublished(t *testing.T) {
	_, err := Transition(RoleAdmin, EventStatePublished, StateActionRejectEvent)

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestTransition_CannotPublishCanceled(t *testing.T) {
	_, err := Transition(RoleAdmin, EventStateCanceled, StateActionPublishEvent)

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestTransition_OwnerCannotUseAdminActions(t *testing.T) {
	_, err := Transition(RoleOwner, EventStatePending, StateActionPublishEvent)

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestTransition_AdminCannotUseOwnerActions(t *testing.T) {
	_, err := Transition(RoleAdmin, EventStatePending, StateActionSendToReview)

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestTransition_AdminRejectCanceledIsIdempotent(t *testing.T) {
	next, err := Transition(RoleAdmin, EventStateCanceled, StateActionRejectEvent)

	require.NoError(t, err)
	assert.Equal(t, EventStateCanceled, next)
}
