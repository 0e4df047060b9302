// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/ai"
	"voyago/internal/itinerary"
	"voyago/internal/modules/search"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, messageResponse{Message: msg})
}

// writePlanError maps pipeline failures to HTTP statuses. Validation detail
// is safe to echo; everything else gets a generic message so provider
// responses and internal state never leak to clients.
func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrExhaustedRetries):
		writeError(c, http.StatusInternalServerError, "itinerary generation failed after multiple attempts")
	case errors.Is(err, ai.ErrFatal):
		writeError(c, http.StatusInternalServerError, "itinerary generation is currently unavailable")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeSearchError(c *gin.Context, err error) {
	if errors.Is(err, search.ErrInvalidQuery) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}
