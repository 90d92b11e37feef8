// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository is the persistence boundary of the grid: it fetches day
// snapshots and applies the mutation commands the grid emits. Conflict
// arbitration between concurrent editors lives here, not in the grid.
type ScheduleRepository interface {
	GetDaySchedule(ctx context.Context, businessID, date string) (*models.DaySchedule, error)
	ApplyReschedule(ctx context.Context, businessID, date string, cmd models.RescheduleCommand, duration int) error
	CancelBooking(ctx context.Context, businessID string, cmd models.CancelBookingCommand) error
	GetTimeOffForResource(ctx context.Context, businessID, resourceID string) ([]models.TimeOffBlock, error)
}

type mongoScheduleRepo struct {
	resources *mongo.Collection
	bookings  *mongo.Collection
	timeOff   *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		resources: database.Collection("resources"),
		bookings:  database.Collection("bookings"),
		timeOff:   database.Collection("timeoff"),
	}
}
