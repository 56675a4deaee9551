package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrRequestNotFound  = errors.New("request not found")
)

var (
	ErrParticipantLimitReached = errors.New("participant limit has been reached")
	ErrOwnEventParticipation   = errors.New("initiator cannot participate in own event")
	ErrEventNotPublished       = errors.New("cannot participate in unpublished event")
	ErrDuplicateRequest        = errors.New("user already has an active request for this event")
	ErrModerationNotRequired   = errors.New("request confirmation is not required for this event")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrEventNotEditable        = errors.New("only pending or canceled events can be changed")
	ErrCapacityBelowConfirmed  = errors.New("participant limit cannot drop below confirmed requests")
)

var (
	ErrEmailTaken        = errors.New("email is already taken")
	ErrCategoryNameTaken = errors.New("category name is already taken")
	ErrCategoryInUse     = errors.New("category is referenced by events")
)

var ErrValidation = errors.New("validation error")
