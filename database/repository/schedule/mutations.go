// File: database/repository/schedule/mutations.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplyReschedule moves a booking to its new resource and start time. The
// filter includes the old status so a booking cancelled since the snapshot
// was taken is not silently resurrected.
func (repo *mongoScheduleRepo) ApplyReschedule(ctx context.Context, businessID, date string, cmd models.RescheduleCommand, duration int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":         cmd.BookingID,
		"businessId": businessID,
		"date":       date,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	}
	update := bson.M{"$set": bson.M{
		"resourceId": cmd.TargetResourceID,
		"start":      cmd.NewStart,
		"end":        cmd.NewStart + duration,
	}}

	res, err := repo.bookings.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to apply reschedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CancelBooking marks the booking cancelled; records are kept for history.
func (repo *mongoScheduleRepo) CancelBooking(ctx context.Context, businessID string, cmd models.CancelBookingCommand) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.bookings.UpdateOne(ctx,
		bson.M{"id": cmd.BookingID, "businessId": businessID},
		bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}})
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
