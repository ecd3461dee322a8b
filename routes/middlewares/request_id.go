package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it back.
func RequestID(c *fiber.Ctx) error {
	requestID := utils.CopyString(c.Get(RequestIDHeader))

	if len(requestID) == 0 {
		requestID = uuid.New().String()
	}

	c.Locals(RequestIDKey, requestID)
	c.Set(RequestIDHeader, requestID)

	return c.Next()
}

func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}
