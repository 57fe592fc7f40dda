package queues

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/queues/handlers"
)

// QueuesHandlers holds all the handlers this router needs
type QueuesHandlers struct {
	QueueHandler *handlers.QueueHandler
}

// RegisterRoutes is the single entry point for setting up queue routes.
func RegisterRoutes(app *fiber.App, h *QueuesHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/queues", agentAuth)
	group.Post("/", h.QueueHandler.Create)
	group.Get("/", h.QueueHandler.List)
	group.Get("/:id", h.QueueHandler.Get)
	group.Put("/:id", h.QueueHandler.Update)
	group.Delete("/:id", h.QueueHandler.Delete)
	group.Get("/:id/tickets", h.QueueHandler.Execute)
}
