package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"trimly/models"
	"trimly/services/grid"
	"trimly/services/schedule"
)

// ScheduleHandler exposes the grid over HTTP.
type ScheduleHandler struct {
	Svc schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

// GetDayView returns the computed grid for one business and date.
// An optional ?filter= query dims bookings whose style note doesn't match.
func (h *ScheduleHandler) GetDayView(c *gin.Context) {
	businessID := c.Param("businessID")
	date := c.Param("date")
	filter := c.Query("filter")

	view, err := h.Svc.GetDayView(c.Request.Context(), businessID, date, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build day view", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Reschedule applies a drag-and-drop move. Out-of-hours and read-only
// rejections come back as 422 with the engine's message; the schedule is
// untouched on any failure.
func (h *ScheduleHandler) Reschedule(c *gin.Context) {
	businessID := c.Param("businessID")
	date := c.Param("date")

	var input struct {
		BookingID        string `json:"bookingId" binding:"required"`
		TargetResourceID string `json:"targetResourceId" binding:"required"`
		NewStart         *int   `json:"newStart" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cmd := models.RescheduleCommand{
		CommandID:        uuid.New().String(),
		BookingID:        input.BookingID,
		TargetResourceID: input.TargetResourceID,
		NewStart:         *input.NewStart,
	}

	view, err := h.Svc.Reschedule(c.Request.Context(), businessID, date, cmd)
	if err != nil {
		var rejection *grid.RescheduleError
		switch {
		case errors.As(err, &rejection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejection.Message, "code": rejection.Code})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reschedule booking", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelBooking cancels a booking and returns the refreshed view.
func (h *ScheduleHandler) CancelBooking(c *gin.Context) {
	businessID := c.Param("businessID")
	date := c.Param("date")

	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cmd := models.CancelBookingCommand{
		CommandID: uuid.New().String(),
		BookingID: input.BookingID,
	}

	view, err := h.Svc.CancelBooking(c.Request.Context(), businessID, date, cmd)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetTimeOffSummary returns a resource's merged time-off blocks per date.
func (h *ScheduleHandler) GetTimeOffSummary(c *gin.Context) {
	businessID := c.Param("businessID")
	resourceID := c.Param("resourceID")

	summaries, err := h.Svc.GetTimeOffSummary(c.Request.Context(), businessID, resourceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize time off", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resourceId": resourceID, "summaries": summaries})
}
