package routes

import (
	"trimly/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers all endpoints for the scheduling console.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	schedule := r.Group("/api/schedule")
	{
		schedule.GET("/:businessID/:date", h.GetDayView)
		schedule.POST("/:businessID/:date/reschedule", h.Reschedule)
		schedule.POST("/:businessID/:date/cancel", h.CancelBooking)
	}

	timeoff := r.Group("/api/timeoff")
	{
		timeoff.GET("/:businessID/:resourceID", h.GetTimeOffSummary)
	}

	r.GET("/health", handlers.Health)
}
