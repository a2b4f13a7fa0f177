package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shipline/internal/modules/tracking"
	"shipline/internal/types"
)

type TrackingHandler struct {
	tracking *tracking.Service
}

func NewTrackingHandler(svc *tracking.Service) *TrackingHandler {
	return &TrackingHandler{tracking: svc}
}

type trackingResp struct {
	ID              types.ID        `json:"id"`
	CurrentLocation string          `json:"current_location"`
	Status          tracking.Status `json:"status"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Progress        int             `json:"progress_percentage"`
	NextLocation    *string         `json:"next_location"`
}

func (h *TrackingHandler) Track(c *gin.Context) {
	id := c.Param("order_id")
	if !types.Valid(id) {
		writeError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	v, err := h.tracking.Track(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, trackingResp{
		ID:              v.OrderID,
		CurrentLocation: v.Location,
		Status:          v.Status,
		UpdatedAt:       v.UpdatedAt,
		Progress:        v.Progress,
		NextLocation:    v.NextLocation,
	})
}
