package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trimly/config"
	"trimly/models"

	"github.com/go-redis/redis/v8"
)

// ViewCache stores computed day views between schedule edits. Only unfiltered
// views are cached; a style filter changes the payload per user, so filtered
// requests always recompute.
type ViewCache interface {
	Get(ctx context.Context, businessID, date string) (*models.DayView, bool)
	Set(ctx context.Context, businessID, date string, view *models.DayView)
	Invalidate(ctx context.Context, businessID, date string)
}

// RedisViewCache backs ViewCache with the shared redis client.
type RedisViewCache struct {
	Client *redis.Client
}

func cacheKey(businessID, date string) string {
	return fmt.Sprintf("dayview:%s:%s", businessID, date)
}

func (c *RedisViewCache) Get(ctx context.Context, businessID, date string) (*models.DayView, bool) {
	data, err := c.Client.Get(ctx, cacheKey(businessID, date)).Result()
	if err != nil {
		return nil, false
	}
	var view models.DayView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, false
	}
	return &view, true
}

func (c *RedisViewCache) Set(ctx context.Context, businessID, date string, view *models.DayView) {
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.DayViewCacheTTL) * time.Second
	_ = c.Client.Set(ctx, cacheKey(businessID, date), data, ttl).Err()
}

func (c *RedisViewCache) Invalidate(ctx context.Context, businessID, date string) {
	_ = c.Client.Del(ctx, cacheKey(businessID, date)).Err()
}
