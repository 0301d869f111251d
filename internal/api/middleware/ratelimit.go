package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AttemptLimiter abstracts the fixed-window counter store (Redis).
type AttemptLimiter interface {
	// Allow records one attempt for key and reports whether it is within the
	// configured window limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles credential-guessing by client IP. The limiter is
// fail-open: a store error is logged and the request proceeds, so Redis being
// down never locks users out.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("login limiter check failed, allowing request")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
			}
			return next(c)
		}
	}
}
