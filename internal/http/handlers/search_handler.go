// README: Hotel and travel search handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/search"
)

type SearchHandler struct {
	search *search.Service
}

func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{search: svc}
}

func (h *SearchHandler) Hotels(c *gin.Context) {
	var q search.HotelQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.search.SearchHotels(c.Request.Context(), q)
	if err != nil {
		writeSearchError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

func (h *SearchHandler) Travel(c *gin.Context) {
	var q search.TravelQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.search.SearchTravel(c.Request.Context(), q)
	if err != nil {
		writeSearchError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
