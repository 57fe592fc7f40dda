package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"

	"github.com/gethelpdesk/helpdesk/internal/pkg/log"
)

const headerXRequestID = "X-Request-ID"

// New attaches a request ID to every request. Incoming X-Request-ID
// values are honored so IDs can flow through from upstream proxies;
// otherwise a fresh UUID is generated. The ID is stored on the request
// context for the logger and echoed back in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(headerXRequestID)
		if rid == "" {
			id, err := uuid.NewV4()
			if err != nil {
				return c.Next()
			}
			rid = id.String()
		}

		c.SetUserContext(log.WithRequestID(c.UserContext(), rid))
		c.Set(headerXRequestID, rid)

		return c.Next()
	}
}
