package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func reportKey(userID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("report:%s:%s", userID, date.Format(models.DateLayout))
}

// StoreDailyReport caches a report for the read path. Reports are
// frozen once written, so a cached copy never goes stale.
func (r *RedisClient) StoreDailyReport(ctx context.Context, report *models.DailyNutritionReport, duration time.Duration) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	err = r.client.Set(ctx, reportKey(report.UserID, report.Date), jsonData, duration).Err()
	if err != nil {
		return fmt.Errorf("failed to store report in Redis: %w", err)
	}
	return nil
}

// GetDailyReport returns the cached report and whether it was present.
func (r *RedisClient) GetDailyReport(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionReport, bool, error) {
	data, err := r.client.Get(ctx, reportKey(userID, date)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get report from Redis: %w", err)
	}

	var report models.DailyNutritionReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, true, nil
}

// Get Redis status
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	info, err := r.client.Info(ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
		"redis_info":   info,
	}, nil
}
