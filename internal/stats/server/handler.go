package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/stats"
)

type StatsSvc interface {
	AddHit(ctx context.Context, hit stats.EndpointHit) error
	GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]stats.ViewStats, error)
}

type hitRequest struct {
	App       string `json:"app" binding:"required"`
	URI       string `json:"uri" binding:"required"`
	IP        string `json:"ip" binding:"required"`
	Timestamp string `json:"timestamp" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	service StatsSvc
}

func NewHandler(service StatsSvc) *Handler {
	return &Handler{service: service}
}

func (h *Handler) AddHit(c *ginext.Context) {
	var req hitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ts, err := time.Parse(stats.DateTimeLayout, req.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid timestamp format"})
		return
	}

	hit := stats.EndpointHit{App: req.App, URI: req.URI, IP: req.IP, Timestamp: ts}
	if err = h.service.AddHit(c.Request.Context(), hit); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) GetStats(c *ginext.Context) {
	start, err := time.Parse(stats.DateTimeLayout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid start"})
		return
	}
	end, err := time.Parse(stats.DateTimeLayout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid end"})
		return
	}

	unique := false
	if v := c.Query("unique"); v != "" {
		if unique, err = strconv.ParseBool(v); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid unique"})
			return
		}
	}

	views, err := h.service.GetStats(c.Request.Context(), start, end, c.QueryArray("uris"), unique)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if views == nil {
		views = []stats.ViewStats{}
	}

	c.JSON(http.StatusOK, views)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	if errors.Is(err, domain.ErrValidation) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
