package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/ivan-nizalzov/explore-with-me/internal/stats"
	"github.com/ivan-nizalzov/explore-with-me/internal/stats/server/mocks"
)

func setupRouter(t *testing.T) (*mocks.MockStatsSvc, http.Handler) {
	t.Helper()
	svc := mocks.NewMockStatsSvc(t)
	h := NewHandler(svc)

	r := ginext.New("test")
	r.POST("/hit", h.AddHit)
	r.GET("/stats", h.GetStats)

	return svc, r
}

func TestHandler_AddHit_Success(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().AddHit(mock.Anything, mock.Anything).Return(nil)

	body := []byte(`{"app":"ewm-main-service","uri":"/events/e1","ip":"10.0.0.1","timestamp":"2025-08-01 12:00:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_AddHit_BadTimestamp(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"app":"ewm-main-service","uri":"/events/e1","ip":"10.0.0.1","timestamp":"2025-08-01T12:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddHit_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"uri":"/events/e1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStats_Success(t *testing.T) {
	svc, r := setupRouter(t)

	views := []stats.ViewStats{
		{App: "ewm-main-service", URI: "/events/e1", Hits: 3},
	}
	svc.EXPECT().GetStats(mock.Anything, mock.Anything, mock.Anything, []string{"/events/e1"}, true).
		Return(views, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/stats?start=2025-08-01+00:00:00&end=2025-08-02+00:00:00&uris=/events/e1&unique=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []stats.ViewStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Hits)
}

func TestHandler_GetStats_MissingRange(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStats_EmptyResult(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().GetStats(mock.Anything, mock.Anything, mock.Anything, mock.Anything, false).
		Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/stats?start=2025-08-01+00:00:00&end=2025-08-02+00:00:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
