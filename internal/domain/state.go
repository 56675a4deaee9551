package domain

import "fmt"

type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

type StateAction string

const (
	StateActionSendToReview StateAction = "SEND_TO_REVIEW"
	StateActionCancelReview StateAction = "CANCEL_REVIEW"
	StateActionPublishEvent StateAction = "PUBLISH_EVENT"
	StateActionRejectEvent  StateAction = "REJECT_EVENT"
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

type transition struct {
	from map[EventState]bool
	to   EventState
}

// transitions is the full state machine: which state action each role may
// apply, from which current states, and the resulting state. Pairs absent
// from the table are rejected.
var transitions = map[Role]map[StateAction]transition{
	RoleOwner: {
		StateActionSendToReview: {
			from: map[EventState]bool{EventStatePending: true, EventStateCanceled: true},
			to:   EventStatePending,
		},
		StateActionCancelReview: {
			from: map[EventState]bool{EventStatePending: true, EventStateCanceled: true},
			to:   EventStateCanceled,
		},
	},
	RoleAdmin: {
		StateActionPublishEvent: {
			from: map[EventState]bool{EventStatePending: true},
			to:   EventStatePublished,
		},
		StateActionRejectEvent: {
			from: map[EventState]bool{EventStatePending: true, EventStateCanceled: true},
			to:   EventStateCanceled,
		},
	},
}

// Transition resolves the next event state for a role applying an action to
// the current state. Unknown actions for the role and disallowed current
// states both fail with ErrInvalidStateTransition.
func Transition(role Role, current EventState, action StateAction) (EventState, error) {
	t, ok := transitions[role][action]
	if !ok {
		return "", fmt.Errorf("%w: action %s is not available to %s", ErrInvalidStateTransition, action, role)
	}
	if !t.from[current] {
		return "", fmt.Errorf("%w: %s is not allowed for %s event", ErrInvalidStateTransition, action, current)
	}
	return t.to, nil
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)
