// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetDaySchedule assembles the full snapshot for one business and date.
func (repo *mongoScheduleRepo) GetDaySchedule(ctx context.Context, businessID, date string) (*models.DaySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var resources []models.Resource
	cursor, err := repo.resources.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("error decoding resources: %w", err)
	}

	var bookings []models.Booking
	cursor, err = repo.bookings.Find(ctx, bson.M{
		"businessId": businessID,
		"date":       date,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	}, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	var timeOff []models.TimeOffBlock
	cursor, err = repo.timeOff.Find(ctx, bson.M{"businessId": businessID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time off: %w", err)
	}
	if err := cursor.All(ctx, &timeOff); err != nil {
		return nil, fmt.Errorf("error decoding time off: %w", err)
	}

	return &models.DaySchedule{
		BusinessID: businessID,
		Date:       date,
		Resources:  resources,
		Bookings:   bookings,
		TimeOff:    timeOff,
	}, nil
}

// GetTimeOffForResource returns all raw blocks for one resource across dates,
// for the time-off summary view.
func (repo *mongoScheduleRepo) GetTimeOffForResource(ctx context.Context, businessID, resourceID string) ([]models.TimeOffBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.timeOff.Find(ctx,
		bson.M{"businessId": businessID, "resourceId": resourceID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time off: %w", err)
	}

	var blocks []models.TimeOffBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding time off: %w", err)
	}
	return blocks, nil
}
