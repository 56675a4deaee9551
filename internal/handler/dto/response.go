package dto

import (
	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
)

type EventFullResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Annotation        string   `json:"annotation"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Initiator         string   `json:"initiator"`
	Location          Location `json:"location"`
	Paid              bool     `json:"paid"`
	ParticipantLimit  int      `json:"participantLimit"`
	RequestModeration bool     `json:"requestModeration"`
	ConfirmedRequests int      `json:"confirmedRequests"`
	State             string   `json:"state"`
	EventDate         string   `json:"eventDate"`
	CreatedOn         string   `json:"createdOn"`
	PublishedOn       *string  `json:"publishedOn,omitempty"`
	Views             int64    `json:"views"`
}

type EventShortResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Annotation        string `json:"annotation"`
	Category          string `json:"category"`
	Initiator         string `json:"initiator"`
	Paid              bool   `json:"paid"`
	ConfirmedRequests int    `json:"confirmedRequests"`
	EventDate         string `json:"eventDate"`
	Views             int64  `json:"views"`
}

type RequestResponse struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Requester string `json:"requester"`
	Status    string `json:"status"`
	Created   string `json:"created"`
}

type StatusUpdateResponse struct {
	ConfirmedRequests []RequestResponse `json:"confirmedRequests"`
	RejectedRequests  []RequestResponse `json:"rejectedRequests"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventFullResponse(e *domain.Event) EventFullResponse {
	resp := EventFullResponse{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		Description:       e.Description,
		Category:          e.CategoryID,
		Initiator:         e.InitiatorID,
		Location:          Location{Lat: e.Lat, Lon: e.Lon},
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		ConfirmedRequests: e.ConfirmedRequests,
		State:             string(e.State),
		EventDate:         e.EventDate.Format(DateTimeLayout),
		CreatedOn:         e.CreatedOn.Format(DateTimeLayout),
		Views:             e.Views,
	}
	if e.PublishedOn != nil {
		published := e.PublishedOn.Format(DateTimeLayout)
		resp.PublishedOn = &published
	}

	return resp
}

func ToEventShortResponse(e *domain.Event) EventShortResponse {
	return EventShortResponse{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		Category:          e.CategoryID,
		Initiator:         e.InitiatorID,
		Paid:              e.Paid,
		ConfirmedRequests: e.ConfirmedRequests,
		EventDate:         e.EventDate.Format(DateTimeLayout),
		Views:             e.Views,
	}
}

func ToEventShortResponses(events []*domain.Event) []EventShortResponse {
	res := make([]EventShortResponse, 0, len(events))
	for _, e := range events {
		res = append(res, ToEventShortResponse(e))
	}
	return res
}

func ToEventFullResponses(events []*domain.Event) []EventFullResponse {
	res := make([]EventFullResponse, 0, len(events))
	for _, e := range events {
		res = append(res, ToEventFullResponse(e))
	}
	return res
}

func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		ID:        r.ID,
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
		Created:   r.Created.Format(DateTimeLayout),
	}
}

func ToRequestResponses(requests []*domain.Request) []RequestResponse {
	res := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, ToRequestResponse(r))
	}
	return res
}

func ToStatusUpdateResponse(r *domain.StatusUpdateResult) StatusUpdateResponse {
	return StatusUpdateResponse{
		ConfirmedRequests: ToRequestResponses(r.Confirmed),
		RejectedRequests:  ToRequestResponses(r.Rejected),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
