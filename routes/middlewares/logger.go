package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockfolio/config"
)

// Logger logs one line per request. Errors from the chain are rendered through
// errorHandler first so the logged status is the one the client receives.
func Logger(errorHandler fiber.ErrorHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := errorHandler(c, err); herr != nil {
				return herr
			}
		}

		status := c.Response().StatusCode()
		entry := config.Logger.WithFields(logrus.Fields{
			"request_id":  GetRequestID(c),
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.IP(),
		})

		switch {
		case status >= 500:
			entry.Error("Request completed")
		case status >= 400:
			entry.Warn("Request completed")
		default:
			entry.Info("Request completed")
		}

		return nil
	}
}
