// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
)

func NewRouter(planner handlers.Planner, searchHandler *handlers.SearchHandler) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	itineraryHandler := handlers.NewItineraryHandler(planner)
	r.POST("/api/itinerary", itineraryHandler.Create)

	r.POST("/api/search/hotels", searchHandler.Hotels)
	r.POST("/api/search/travel", searchHandler.Travel)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "voyago"})
	})

	return r
}
