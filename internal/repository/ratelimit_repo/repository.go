package ratelimit_repo

import (
	"casino_simulator/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyRateLimit = "ratelimit:%d:%s"

type repo struct {
	client *redis.Client
}

// NewRateLimitRepository - счётчик с фиксированным окном на INCR + EXPIRE
func NewRateLimitRepository(client *redis.Client) repository.RateLimitRepository {
	return &repo{client: client}
}

func (r *repo) Allow(ctx context.Context, playerID int64, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(keyRateLimit, playerID, action)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		// NX: окно начинается с первого обращения и не продлевается
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return incr.Val() <= int64(limit), nil
}
