package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ctxKeyCorrelationID struct{}

// CorrelationID tags every request with an identifier so one sync run can
// be traced through the handler, service and judge client logs. An incoming
// X-Request-ID is honored, otherwise a fresh UUID is issued.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("correlation_id", id)
		c.Set("X-Request-ID", id)
		c.SetUserContext(context.WithValue(c.UserContext(), ctxKeyCorrelationID{}, id))

		return c.Next()
	}
}

// GetCorrelationID returns the identifier bound to the request, empty when
// the middleware did not run.
func GetCorrelationID(c *fiber.Ctx) string {
	if id, ok := c.Locals("correlation_id").(string); ok {
		return id
	}
	return ""
}

// CorrelationIDFromContext reads the identifier from a detached context.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyCorrelationID{}).(string)
	return id
}
