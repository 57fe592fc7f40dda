package threads

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/threads/handlers"
)

// ThreadsHandlers holds all the handlers this router needs
type ThreadsHandlers struct {
	ThreadHandler *handlers.ThreadHandler
}

// RegisterRoutes is the single entry point for setting up thread routes.
// Threads hang off tickets, so paths are ticket-scoped.
func RegisterRoutes(app *fiber.App, h *ThreadsHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/tickets/:id/thread", agentAuth)
	group.Get("/", h.ThreadHandler.GetByTicket)
	group.Post("/entries", h.ThreadHandler.PostEntry)
	group.Post("/collaborators", h.ThreadHandler.AddCollaborator)
}
