package limiter

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a fixed-window limiter. Failures are counted under a key that
// expires window after the first failure; reaching maxFails sets a block
// key that lives for blockFor.
type Redis struct {
	client   redis.Cmdable
	window   time.Duration
	maxFails int
	blockFor time.Duration
}

// NewRedis constructs a Redis-backed limiter.
func NewRedis(client redis.Cmdable, window time.Duration, maxFails int, blockFor time.Duration) *Redis {
	return &Redis{client: client, window: window, maxFails: maxFails, blockFor: blockFor}
}

func failKey(login string, ipHash []byte) string {
	return "login:fail:" + login + ":" + hex.EncodeToString(ipHash)
}

func blockKey(login string, ipHash []byte) string {
	return "login:block:" + login + ":" + hex.EncodeToString(ipHash)
}

// Allow reports whether login is allowed and the remaining block time if not.
func (l *Redis) Allow(ctx context.Context, login string, ipHash []byte) (bool, time.Duration, error) {
	ttl, err := l.client.PTTL(ctx, blockKey(login, ipHash)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("limiter.Redis.Allow: %w", err)
	}
	// Missing keys report a negative TTL.
	if ttl > 0 {
		return false, ttl, nil
	}
	return true, 0, nil
}

// Success clears the failure counter for (login, ip).
func (l *Redis) Success(ctx context.Context, login string, ipHash []byte) error {
	if err := l.client.Del(ctx, failKey(login, ipHash)).Err(); err != nil {
		return fmt.Errorf("limiter.Redis.Success: %w", err)
	}
	return nil
}

// Failure counts a failed attempt and blocks once maxFails is reached.
func (l *Redis) Failure(ctx context.Context, login string, ipHash []byte) (bool, time.Duration, error) {
	key := failKey(login, ipHash)
	fails, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("limiter.Redis.Failure: incr: %w", err)
	}
	if fails == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("limiter.Redis.Failure: expire: %w", err)
		}
	}
	if fails < int64(l.maxFails) {
		return false, 0, nil
	}

	pipe := l.client.TxPipeline()
	pipe.Set(ctx, blockKey(login, ipHash), 1, l.blockFor)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("limiter.Redis.Failure: block: %w", err)
	}
	return true, l.blockFor, nil
}
