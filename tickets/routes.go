package tickets

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/tickets/handlers"
)

// TicketsHandlers holds all the handlers this router needs
type TicketsHandlers struct {
	TicketHandler *handlers.TicketHandler
}

// RegisterRoutes is the single entry point for setting up ticket routes.
// Submission is public; everything else requires an agent token.
func RegisterRoutes(app *fiber.App, h *TicketsHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	// Public ticket submission, e.g. from a web form or mail gateway.
	app.Post("/tickets", h.TicketHandler.Create)

	group := app.Group("/tickets", agentAuth)
	group.Get("/", h.TicketHandler.SimpleSearch)
	group.Post("/search", h.TicketHandler.Search)
	group.Get("/number/:number", h.TicketHandler.GetByNumber)
	group.Get("/:id", h.TicketHandler.Get)
	group.Put("/:id", h.TicketHandler.Update)
	group.Delete("/:id", h.TicketHandler.Delete)

	// Scoped listing of a single user's tickets.
	app.Get("/users/:id/tickets", agentAuth, h.TicketHandler.UserTickets)
}
