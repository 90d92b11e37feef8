package schedule

import (
	"context"
	"fmt"

	"trimly/config"
	"trimly/models"
	"trimly/services/grid"
	"trimly/utils"

	"go.uber.org/zap"
)

func slotSize() int {
	if config.AppConfig.SlotSizeMinutes > 0 {
		return config.AppConfig.SlotSizeMinutes
	}
	return grid.DefaultSlotSize
}

// GetDayView fetches the day's snapshot and computes the full grid view.
func (s *DefaultScheduleService) GetDayView(ctx context.Context, businessID, date, styleFilter string) (*models.DayView, error) {
	logger := utils.GetLogger()

	if styleFilter == "" && s.Cache != nil {
		if view, ok := s.Cache.Get(ctx, businessID, date); ok {
			return view, nil
		}
	}

	snapshot, err := s.Repo.GetDaySchedule(ctx, businessID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day schedule: %w", err)
	}

	view := grid.BuildDayView(*snapshot, grid.ViewOptions{
		SlotSize:    slotSize(),
		StyleFilter: styleFilter,
	}, logger)

	if styleFilter == "" && s.Cache != nil {
		s.Cache.Set(ctx, businessID, date, &view)
	}
	return &view, nil
}

// Reschedule re-validates the command against a fresh snapshot, applies it,
// and returns the recomputed view. Validation runs server-side too: the
// client's grid state may be stale by the time the drop request arrives.
func (s *DefaultScheduleService) Reschedule(ctx context.Context, businessID, date string, cmd models.RescheduleCommand) (*models.DayView, error) {
	logger := utils.GetLogger()

	snapshot, err := s.Repo.GetDaySchedule(ctx, businessID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day schedule: %w", err)
	}

	duration, err := validateReschedule(*snapshot, cmd)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.ApplyReschedule(ctx, businessID, date, cmd, duration); err != nil {
		return nil, fmt.Errorf("failed to apply reschedule: %w", err)
	}
	logger.Info("booking rescheduled",
		zap.String("bookingId", cmd.BookingID),
		zap.String("targetResourceId", cmd.TargetResourceID),
		zap.Int("newStart", cmd.NewStart))

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, businessID, date)
	}
	return s.GetDayView(ctx, businessID, date, "")
}

// CancelBooking marks a booking cancelled and returns the refreshed view.
func (s *DefaultScheduleService) CancelBooking(ctx context.Context, businessID, date string, cmd models.CancelBookingCommand) (*models.DayView, error) {
	if err := s.Repo.CancelBooking(ctx, businessID, cmd); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, businessID, date)
	}
	return s.GetDayView(ctx, businessID, date, "")
}

// GetTimeOffSummary returns the merged per-date time-off read model for one
// resource.
func (s *DefaultScheduleService) GetTimeOffSummary(ctx context.Context, businessID, resourceID string) ([]models.MergedTimeOffSummary, error) {
	blocks, err := s.Repo.GetTimeOffForResource(ctx, businessID, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time off: %w", err)
	}
	return grid.MergeTimeOff(blocks), nil
}

// validateReschedule replays the drag gesture's checks against the current
// snapshot, sharing the grid's own transition functions so client and server
// agree on what a legal move is. Returns the booking's duration.
func validateReschedule(snapshot models.DaySchedule, cmd models.RescheduleCommand) (int, error) {
	state, err := grid.BeginDrag(grid.IdleState(), snapshot, cmd.BookingID)
	if err != nil {
		return 0, err
	}
	state = grid.DragOver(state, snapshot, cmd.TargetResourceID, cmd.NewStart)
	if _, _, err := grid.Drop(state, snapshot); err != nil {
		return 0, err
	}

	for _, b := range snapshot.Bookings {
		if b.ID == cmd.BookingID {
			return b.Duration(), nil
		}
	}
	return 0, fmt.Errorf("booking %s not found", cmd.BookingID)
}
