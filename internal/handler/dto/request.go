package dto

import (
	"fmt"
	"time"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
)

// DateTimeLayout is the wire format for all event timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type NewEventRequest struct {
	Title             string   `json:"title" binding:"required"`
	Annotation        string   `json:"annotation" binding:"required"`
	Description       string   `json:"description"`
	Category          string   `json:"category" binding:"required,uuid"`
	EventDate         string   `json:"eventDate" binding:"required"`
	Location          Location `json:"location"`
	Paid              *bool    `json:"paid"`
	ParticipantLimit  *int     `json:"participantLimit" binding:"omitempty,gte=0"`
	RequestModeration *bool    `json:"requestModeration"`
}

func (r NewEventRequest) ToInput() (domain.NewEventInput, error) {
	eventDate, err := time.Parse(DateTimeLayout, r.EventDate)
	if err != nil {
		return domain.NewEventInput{}, fmt.Errorf("invalid eventDate, expected %q", DateTimeLayout)
	}

	return domain.NewEventInput{
		Title:             r.Title,
		Annotation:        r.Annotation,
		Description:       r.Description,
		CategoryID:        r.Category,
		Lat:               r.Location.Lat,
		Lon:               r.Location.Lon,
		EventDate:         eventDate,
		Paid:              r.Paid,
		ParticipantLimit:  r.ParticipantLimit,
		RequestModeration: r.RequestModeration,
	}, nil
}

type UpdateEventRequest struct {
	Title             *string   `json:"title"`
	Annotation        *string   `json:"annotation"`
	Description       *string   `json:"description"`
	Category          *string   `json:"category" binding:"omitempty,uuid"`
	EventDate         *string   `json:"eventDate"`
	Location          *Location `json:"location"`
	Paid              *bool     `json:"paid"`
	ParticipantLimit  *int      `json:"participantLimit" binding:"omitempty,gte=0"`
	RequestModeration *bool     `json:"requestModeration"`
	StateAction       *string   `json:"stateAction"`
}

func (r UpdateEventRequest) ToInput() (domain.UpdateEventInput, error) {
	in := domain.UpdateEventInput{
		Title:             r.Title,
		Annotation:        r.Annotation,
		Description:       r.Description,
		CategoryID:        r.Category,
		Paid:              r.Paid,
		ParticipantLimit:  r.ParticipantLimit,
		RequestModeration: r.RequestModeration,
	}

	if r.EventDate != nil {
		eventDate, err := time.Parse(DateTimeLayout, *r.EventDate)
		if err != nil {
			return domain.UpdateEventInput{}, fmt.Errorf("invalid eventDate, expected %q", DateTimeLayout)
		}
		in.EventDate = &eventDate
	}
	if r.Location != nil {
		in.Lat = &r.Location.Lat
		in.Lon = &r.Location.Lon
	}
	if r.StateAction != nil {
		action := domain.StateAction(*r.StateAction)
		in.StateAction = &action
	}

	return in, nil
}

type StatusUpdateRequest struct {
	RequestIDs []string `json:"requestIds" binding:"required,min=1,dive,uuid"`
	Status     string   `json:"status" binding:"required"`
}

type NewUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type NewCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
