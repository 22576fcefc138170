package routes

import (
	"watchpost/internal/controllers"
	"watchpost/internal/middleware"
	"watchpost/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterStatusRoutes(r *gin.Engine, token string, collector *services.Collector) {
	status := controllers.NewStatusController(collector)
	limiter := middleware.NewRateLimiter()

	// Auth runs first so a bad token is always answered with 401; the
	// limiter only guards the expensive probe pipeline behind it.
	r.GET("/status",
		middleware.BearerAuth(token),
		middleware.RateLimitMiddleware(limiter),
		status.GetStatus,
	)
}
