package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository caches rendered reports so repeated report requests skip
// the leaderboard query and the renderer.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) StoreReport(ctx context.Context, format string, content string, ttl time.Duration) error {
	key := "report:" + format
	return r.rdb.Set(ctx, key, content, ttl).Err()
}

// GetReport returns the cached report and whether it was present.
func (r *RedisRepository) GetReport(ctx context.Context, format string) (string, bool, error) {
	key := "report:" + format
	content, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

// InvalidateReports drops every cached rendering. Called whenever a run is
// added or removed, since either can shift the ranking.
func (r *RedisRepository) InvalidateReports(ctx context.Context) error {
	keys := []string{"report:markdown", "report:latex", "report:csv"}
	return r.rdb.Del(ctx, keys...).Err()
}
