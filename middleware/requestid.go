package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request with a correlation id, reusing the
// caller's X-Request-ID when one is supplied.
func RequestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}

	c.Locals("requestId", id)
	c.Set("X-Request-ID", id)

	return c.Next()
}
