package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/handler/dto"
	hmocks "github.com/ivan-nizalzov/explore-with-me/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockRequestSvc, *hmocks.MockUserSvc, *hmocks.MockCategorySvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	requestSvc := hmocks.NewMockRequestSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	categorySvc := hmocks.NewMockCategorySvc(t)

	h := NewHandler(eventSvc, requestSvc, userSvc, categorySvc)

	r := ginext.New("test")
	users := r.Group("/users/:userId")
	{
		users.POST("/events", h.CreateEvent)
		users.GET("/events", h.ListOwnEvents)
		users.GET("/events/:eventId", h.GetOwnEvent)
		users.PATCH("/events/:eventId", h.UpdateOwnEvent)
		users.GET("/events/:eventId/requests", h.ListEventRequests)
		users.PATCH("/events/:eventId/requests", h.ChangeRequestStatus)
		users.POST("/requests", h.CreateRequest)
		users.GET("/requests", h.ListOwnRequests)
		users.PATCH("/requests/:requestId/cancel", h.CancelRequest)
	}
	admin := r.Group("/admin")
	{
		admin.GET("/events", h.AdminSearchEvents)
		admin.PATCH("/events/:eventId", h.AdminUpdateEvent)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:userId", h.DeleteUser)
		admin.POST("/categories", h.CreateCategory)
	}
	r.GET("/events", h.PublicSearchEvents)
	r.GET("/events/:id", h.PublicGetEvent)

	return eventSvc, requestSvc, userSvc, categorySvc, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	catID := uuid.New().String()
	eventDate := time.Now().Add(24 * time.Hour)
	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             "Concert",
		Annotation:        "Live music all night",
		CategoryID:        catID,
		InitiatorID:       userID,
		State:             domain.EventStatePending,
		RequestModeration: true,
		EventDate:         eventDate,
		CreatedOn:         time.Now(),
	}

	eventSvc.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.NewEventRequest{
		Title:      "Concert",
		Annotation: "Live music all night",
		Category:   catID,
		EventDate:  eventDate.Format(dto.DateTimeLayout),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID+"/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventFullResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Title)
	assert.Equal(t, "PENDING", resp.State)
}

func TestHandler_CreateEvent_InvalidUserID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/not-a-uuid/events", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	body := []byte(`{"title":"X","annotation":"Y","category":"` + uuid.New().String() + `","eventDate":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID+"/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateOwnEvent_Conflict(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	eventSvc.EXPECT().UpdateByInitiator(mock.Anything, userID, eventID, mock.Anything).
		Return(nil, domain.ErrEventNotEditable)

	body := []byte(`{"title":"New title"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID+"/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateOwnEvent_LimitBelowConfirmed(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	eventSvc.EXPECT().UpdateByInitiator(mock.Anything, userID, eventID, mock.Anything).
		Return(nil, domain.ErrCapacityBelowConfirmed)

	body := []byte(`{"participantLimit":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID+"/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AdminUpdateEvent_Publish(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	published := time.Now()
	event := &domain.Event{
		ID:          eventID,
		Title:       "Concert",
		State:       domain.EventStatePublished,
		EventDate:   time.Now().Add(24 * time.Hour),
		CreatedOn:   time.Now(),
		PublishedOn: &published,
	}

	eventSvc.EXPECT().UpdateByAdmin(mock.Anything, eventID, mock.Anything).Return(event, nil)

	body := []byte(`{"stateAction":"PUBLISH_EVENT"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventFullResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PUBLISHED", resp.State)
	assert.NotNil(t, resp.PublishedOn)
}

func TestHandler_AdminSearchEvents_Filters(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventSvc.EXPECT().AdminSearch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, f domain.AdminEventFilter) ([]*domain.Event, error) {
			assert.Equal(t, []string{userID}, f.InitiatorIDs)
			assert.Equal(t, []domain.EventState{domain.EventStatePending}, f.States)
			assert.Equal(t, 0, f.Offset)
			assert.Equal(t, 10, f.Limit)
			return []*domain.Event{}, nil
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/events?users="+userID+"&states=PENDING", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PublicGetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().PublicGet(mock.Anything, eventID, mock.Anything).
		Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_PublicSearchEvents_BadSort(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events?sort=POPULARITY", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	_, requestSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	request := &domain.Request{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: userID,
		Status:      domain.RequestStatusPending,
		Created:     time.Now(),
	}

	requestSvc.EXPECT().Create(mock.Anything, userID, eventID).Return(request, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID+"/requests?eventId="+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandler_CreateRequest_MissingEventID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID+"/requests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRequest_LimitReached(t *testing.T) {
	_, requestSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	requestSvc.EXPECT().Create(mock.Anything, userID, eventID).
		Return(nil, domain.ErrParticipantLimitReached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID+"/requests?eventId="+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateRequest_Duplicate(t *testing.T) {
	_, requestSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()

	requestSvc.EXPECT().Create(mock.Anything, userID, eventID).
		Return(nil, domain.ErrDuplicateRequest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID+"/requests?eventId="+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ChangeRequestStatus_Success(t *testing.T) {
	_, requestSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	id1 := uuid.New().String()
	id2 := uuid.New().String()

	result := &domain.StatusUpdateResult{
		Confirmed: []*domain.Request{{ID: id1, Status: domain.RequestStatusConfirmed, Created: time.Now()}},
		Rejected:  []*domain.Request{{ID: id2, Status: domain.RequestStatusRejected, Created: time.Now()}},
	}
	requestSvc.EXPECT().ChangeStatus(mock.Anything, userID, eventID, mock.Anything).Return(result, nil)

	body, _ := json.Marshal(dto.StatusUpdateRequest{
		RequestIDs: []string{id1, id2},
		Status:     "CONFIRMED",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID+"/events/"+eventID+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.ConfirmedRequests, 1)
	assert.Len(t, resp.RejectedRequests, 1)
}

func TestHandler_ChangeRequestStatus_EmptyBatch(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	body := []byte(`{"requestIds":[],"status":"CONFIRMED"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID+"/events/"+eventID+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelRequest_Success(t *testing.T) {
	_, requestSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	requestID := uuid.New().String()
	request := &domain.Request{
		ID:     requestID,
		Status: domain.RequestStatusCanceled,
	}

	requestSvc.EXPECT().Cancel(mock.Anything, userID, requestID).Return(request, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID+"/requests/"+requestID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELED", resp.Status)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Name: "alice", Email: "alice@example.com"}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body := []byte(`{"name":"alice","email":"alice@example.com"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_BadEmail(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"alice","email":"not-an-email"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body := []byte(`{"name":"alice","email":"alice@example.com"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteUser_Success(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	userSvc.EXPECT().Delete(mock.Anything, userID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/users/"+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Categories ---

func TestHandler_CreateCategory_NameTaken(t *testing.T) {
	_, _, _, categorySvc, r := setupRouter(t)

	categorySvc.EXPECT().Create(mock.Anything, "concerts").Return(nil, domain.ErrCategoryNameTaken)

	body := []byte(`{"name":"concerts"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
