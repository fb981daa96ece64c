package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-matcher/internal/shared/telemetry"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Redis is a JSON cache that degrades to a no-op when Redis is unreachable.
type Redis struct {
	client *redis.Client
	prefix string

	warnedUnavailable atomic.Bool
}

// NewRedis connects to Redis. A failed ping returns a bypassing cache, never an error.
func NewRedis(ctx context.Context, opts Options) *Redis {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return &Redis{prefix: opts.Prefix}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		telemetry.Warn("cache.redis.unavailable", map[string]any{"addr": addr, "err": err})
		_ = client.Close()
		return &Redis{prefix: opts.Prefix}
	}

	telemetry.Info("cache.redis.connected", map[string]any{"addr": addr, "db": opts.DB})
	return &Redis{client: client, prefix: opts.Prefix}
}

// Enabled reports whether a live client is attached.
func (r *Redis) Enabled() bool {
	return !r.isUnavailable()
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		telemetry.Warn("cache.redis.bypass", map[string]any{"err": err})
	}
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

// GetJSON loads key into out. The bool reports a hit.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v under key for ttl.
func (r *Redis) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(key), b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// Close releases the client.
func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
