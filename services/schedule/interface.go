package schedule

import (
	"context"

	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"
)

// ScheduleService is what the handlers talk to: it fetches snapshots, runs
// the grid engine over them, and executes the mutation commands the grid
// emits. Every mutation ends with a fresh snapshot re-fetch; the grid is
// never patched in place.
type ScheduleService interface {
	GetDayView(ctx context.Context, businessID, date, styleFilter string) (*models.DayView, error)
	Reschedule(ctx context.Context, businessID, date string, cmd models.RescheduleCommand) (*models.DayView, error)
	CancelBooking(ctx context.Context, businessID, date string, cmd models.CancelBookingCommand) (*models.DayView, error)
	GetTimeOffSummary(ctx context.Context, businessID, resourceID string) ([]models.MergedTimeOffSummary, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
	// Cache is optional; nil disables day-view caching.
	Cache ViewCache
}
