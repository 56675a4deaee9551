package domain

import "time"

type Event struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Annotation        string     `json:"annotation"`
	Description       string     `json:"description"`
	CategoryID        string     `json:"category_id"`
	InitiatorID       string     `json:"initiator_id"`
	Lat               float64    `json:"lat"`
	Lon               float64    `json:"lon"`
	Paid              bool       `json:"paid"`
	ParticipantLimit  int        `json:"participant_limit"`
	RequestModeration bool       `json:"request_moderation"`
	ConfirmedRequests int        `json:"confirmed_requests"`
	State             EventState `json:"state"`
	EventDate         time.Time  `json:"event_date"`
	CreatedOn         time.Time  `json:"created_on"`
	PublishedOn       *time.Time `json:"published_on"`

	// Views is derived from the stats service on read, never persisted.
	Views int64 `json:"views"`
}

type NewEventInput struct {
	Title             string
	Annotation        string
	Description       string
	CategoryID        string
	Lat               float64
	Lon               float64
	EventDate         time.Time
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
}

// UpdateEventInput carries a partial update: nil fields leave the current
// values untouched.
type UpdateEventInput struct {
	Title             *string
	Annotation        *string
	Description       *string
	CategoryID        *string
	Lat               *float64
	Lon               *float64
	EventDate         *time.Time
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	StateAction       *StateAction
}

type EventSort string

const (
	SortEventDate EventSort = "EVENT_DATE"
	SortViews     EventSort = "VIEWS"
)

type AdminEventFilter struct {
	InitiatorIDs []string
	States       []EventState
	CategoryIDs  []string
	RangeStart   *time.Time
	RangeEnd     *time.Time
	Offset       int
	Limit        int
}

type PublicEventFilter struct {
	Text          string
	CategoryIDs   []string
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Sort          EventSort
	Offset        int
	Limit         int
}
