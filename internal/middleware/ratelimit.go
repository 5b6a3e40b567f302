package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Limiter enforces a fixed-window request limit backed by Redis. When the
// Redis store is unavailable the limiter fails open: blocking reads over a
// flaky counter store is worse than briefly exceeding the limit.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewLimiter creates a Limiter allowing `limit` requests per `window`.
// A nil client disables limiting entirely (dev and test environments).
func NewLimiter(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: limit, window: window}
}

// Allow reports whether one more request from `id` against `resource` fits
// within the window. Counter slots are INCR'd and given a TTL on first use.
func (l *Limiter) Allow(c *fiber.Ctx, resource, id string) (bool, error) {
	if l.rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)
	ctx := c.UserContext()

	cnt, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}
	return cnt <= int64(l.limit), nil
}

// Handler returns a Fiber middleware enforcing the limit, keyed by remote IP.
func (l *Limiter) Handler(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := "ip:" + c.IP()

		allowed, err := l.Allow(c, resource, id)
		if err != nil {
			Logger.WarnContext(c.UserContext(), "rate limit store unavailable, failing open",
				slog.String("resource", resource),
				slog.String("error", err.Error()),
			)
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
