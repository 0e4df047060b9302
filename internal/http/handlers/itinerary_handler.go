// README: Itinerary generation handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/itinerary"
)

// Planner runs the full generation pipeline for one request.
type Planner interface {
	Plan(ctx context.Context, raw itinerary.RawRequest) (*itinerary.Document, error)
}

type ItineraryHandler struct {
	planner Planner
}

func NewItineraryHandler(planner Planner) *ItineraryHandler {
	return &ItineraryHandler{planner: planner}
}

func (h *ItineraryHandler) Create(c *gin.Context) {
	var raw itinerary.RawRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	doc, err := h.planner.Plan(c.Request.Context(), raw)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, doc)
}
