package middleware

import (
	"errors"
	"time"

	"neoflix/internal/apperr"
	"neoflix/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per route pattern. The status
// is resolved from the handler error because the error handler only runs
// after the middleware chain returns.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = apperr.StatusCode(err)
			}
		}

		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}
