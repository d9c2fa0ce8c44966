package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests per period
	Period      time.Duration // Fixed window length
}

// RateLimiterMiddleware counts requests per caller in a fixed Redis window
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Limit <= 0 {
				return next(c)
			}

			identifier := c.RealIP()
			if principal, ok := GetPrincipal(c); ok {
				identifier = principal.UserID.String()
			}
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			// the window and its TTL are created together, so a counter never outlives its period
			var incr *redis.IntCmd
			_, err := config.RedisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.SetNX(ctx, key, 0, config.Period)
				incr = pipe.Incr(ctx, key)
				return nil
			})
			if err != nil {
				// fail open when Redis is unavailable
				logger.Warn("Rate limiter unavailable", logger.String("key", key), logger.ErrorField(err))
				return next(c)
			}

			count := incr.Val()
			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(config.Limit) {
				ttl := config.RedisClient.TTL(ctx, key).Val()
				if ttl < 0 {
					ttl = config.Period
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
