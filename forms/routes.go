package forms

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/forms/handlers"
	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
)

// FormsHandlers holds all the handlers this router needs
type FormsHandlers struct {
	FormHandler *handlers.FormHandler
}

// RegisterRoutes is the single entry point for setting up form routes.
// Reading forms is agent-level; changing them is admin-only.
func RegisterRoutes(app *fiber.App, h *FormsHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret, AdminOnly: true})

	group := app.Group("/forms", agentAuth)
	group.Get("/", h.FormHandler.List)
	group.Get("/:id", h.FormHandler.Get)

	group.Post("/", adminAuth, h.FormHandler.Create)
	group.Put("/:id", adminAuth, h.FormHandler.Update)
	group.Delete("/:id", adminAuth, h.FormHandler.Delete)
}
