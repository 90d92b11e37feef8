// FILE: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the schedule collections.
func (repo *mongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.bookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: one business, one day.
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("business_date_start_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	_, err = repo.timeOff.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "resourceId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("business_resource_date_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create timeoff indexes: %w", err)
	}

	_, err = repo.resources.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "businessId", Value: 1}},
		Options: options.Index().SetName("business_idx"),
	})
	if err != nil {
		return fmt.Errorf("failed to create resource indexes: %w", err)
	}
	return nil
}
