package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/handler/dto"
)

type EventSvc interface {
	Create(ctx context.Context, initiatorID string, in domain.NewEventInput) (*domain.Event, error)
	ListByInitiator(ctx context.Context, initiatorID string, offset, limit int) ([]*domain.Event, error)
	GetByInitiator(ctx context.Context, initiatorID, eventID string) (*domain.Event, error)
	UpdateByInitiator(ctx context.Context, initiatorID, eventID string, in domain.UpdateEventInput) (*domain.Event, error)
	AdminSearch(ctx context.Context, f domain.AdminEventFilter) ([]*domain.Event, error)
	UpdateByAdmin(ctx context.Context, eventID string, in domain.UpdateEventInput) (*domain.Event, error)
	PublicSearch(ctx context.Context, f domain.PublicEventFilter, clientIP string) ([]*domain.Event, error)
	PublicGet(ctx context.Context, eventID, clientIP string) (*domain.Event, error)
}

type RequestSvc interface {
	Create(ctx context.Context, requesterID, eventID string) (*domain.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error)
	Cancel(ctx context.Context, requesterID, requestID string) (*domain.Request, error)
	ListForEvent(ctx context.Context, ownerID, eventID string) ([]*domain.Request, error)
	ChangeStatus(ctx context.Context, ownerID, eventID string, in domain.StatusUpdateInput) (*domain.StatusUpdateResult, error)
}

type UserSvc interface {
	Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context, ids []string, offset, limit int) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type CategorySvc interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
}

type Handler struct {
	eventService    EventSvc
	requestService  RequestSvc
	userService     UserSvc
	categoryService CategorySvc
}

func NewHandler(eventService EventSvc, requestService RequestSvc, userService UserSvc, categoryService CategorySvc) *Handler {
	return &Handler{
		eventService:    eventService,
		requestService:  requestService,
		userService:     userService,
		categoryService: categoryService,
	}
}

// Private event scope

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.NewEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventFullResponse(event))
}

func (h *Handler) ListOwnEvents(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	from, size, ok := h.pagination(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListByInitiator(c.Request.Context(), userID, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventShortResponses(events))
}

func (h *Handler) GetOwnEvent(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := h.pathID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.eventService.GetByInitiator(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

func (h *Handler) UpdateOwnEvent(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := h.pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateByInitiator(c.Request.Context(), userID, eventID, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

// Participation requests

func (h *Handler) CreateRequest(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}

	eventID := c.Query("eventId")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid eventId"})
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

func (h *Handler) ListOwnRequests(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	requestID, ok := h.pathID(c, "requestId")
	if !ok {
		return
	}

	request, err := h.requestService.Cancel(c.Request.Context(), userID, requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

func (h *Handler) ListEventRequests(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := h.pathID(c, "eventId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListForEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) ChangeRequestStatus(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := h.pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.StatusUpdateInput{
		RequestIDs: req.RequestIDs,
		Status:     domain.RequestStatus(req.Status),
	}
	result, err := h.requestService.ChangeStatus(c.Request.Context(), userID, eventID, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusUpdateResponse(result))
}

// Admin event scope

func (h *Handler) AdminSearchEvents(c *ginext.Context) {
	from, size, ok := h.pagination(c)
	if !ok {
		return
	}

	rangeStart, ok := h.queryTime(c, "rangeStart")
	if !ok {
		return
	}
	rangeEnd, ok := h.queryTime(c, "rangeEnd")
	if !ok {
		return
	}

	states := make([]domain.EventState, 0)
	for _, s := range c.QueryArray("states") {
		states = append(states, domain.EventState(s))
	}

	f := domain.AdminEventFilter{
		InitiatorIDs: c.QueryArray("users"),
		States:       states,
		CategoryIDs:  c.QueryArray("categories"),
		RangeStart:   rangeStart,
		RangeEnd:     rangeEnd,
		Offset:       from,
		Limit:        size,
	}
	events, err := h.eventService.AdminSearch(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponses(events))
}

func (h *Handler) AdminUpdateEvent(c *ginext.Context) {
	eventID, ok := h.pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateByAdmin(c.Request.Context(), eventID, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

// Public event scope

func (h *Handler) PublicSearchEvents(c *ginext.Context) {
	from, size, ok := h.pagination(c)
	if !ok {
		return
	}
	rangeStart, ok := h.queryTime(c, "rangeStart")
	if !ok {
		return
	}
	rangeEnd, ok := h.queryTime(c, "rangeEnd")
	if !ok {
		return
	}

	var paid *bool
	if v := c.Query("paid"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid paid"})
			return
		}
		paid = &parsed
	}

	onlyAvailable := false
	if v := c.Query("onlyAvailable"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid onlyAvailable"})
			return
		}
		onlyAvailable = parsed
	}

	eventSort := domain.SortEventDate
	if v := c.Query("sort"); v != "" {
		if v != string(domain.SortEventDate) && v != string(domain.SortViews) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sort"})
			return
		}
		eventSort = domain.EventSort(v)
	}

	f := domain.PublicEventFilter{
		Text:          c.Query("text"),
		CategoryIDs:   c.QueryArray("categories"),
		Paid:          paid,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		OnlyAvailable: onlyAvailable,
		Sort:          eventSort,
		Offset:        from,
		Limit:         size,
	}
	events, err := h.eventService.PublicSearch(c.Request.Context(), f, c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventShortResponses(events))
}

func (h *Handler) PublicGetEvent(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.PublicGet(c.Request.Context(), eventID, c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

// Admin users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.NewUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	from, size, ok := h.pagination(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), c.QueryArray("ids"), from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Categories

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.NewCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) UpdateCategory(c *ginext.Context) {
	catID, ok := h.pathID(c, "catId")
	if !ok {
		return
	}

	var req dto.NewCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), catID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	catID, ok := h.pathID(c, "catId")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), catID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCategories(c *ginext.Context) {
	from, size, ok := h.pagination(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCategory(c *ginext.Context) {
	catID, ok := h.pathID(c, "catId")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), catID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// helpers

func (h *Handler) pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

func (h *Handler) pagination(c *ginext.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from"})
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid size"})
		return 0, 0, false
	}
	return from, size, true
}

func (h *Handler) queryTime(c *ginext.Context, name string) (*time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	t, err := time.Parse(dto.DateTimeLayout, v)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	return &t, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrParticipantLimitReached),
		errors.Is(err, domain.ErrOwnEventParticipation),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrModerationNotRequired),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrEventNotEditable),
		errors.Is(err, domain.ErrCapacityBelowConfirmed),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrCategoryNameTaken),
		errors.Is(err, domain.ErrCategoryInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
