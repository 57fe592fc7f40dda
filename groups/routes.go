package groups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/groups/handlers"
	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
)

// GroupsHandlers holds all the handlers this router needs
type GroupsHandlers struct {
	GroupHandler *handlers.GroupHandler
}

// RegisterRoutes is the single entry point for setting up group routes
func RegisterRoutes(app *fiber.App, h *GroupsHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret, AdminOnly: true})

	group := app.Group("/groups")
	group.Get("/", agentAuth, h.GroupHandler.List)
	group.Get("/:id", agentAuth, h.GroupHandler.Get)
	group.Post("/", adminAuth, h.GroupHandler.Create)
	group.Put("/:id", adminAuth, h.GroupHandler.Update)
	group.Delete("/:id", adminAuth, h.GroupHandler.Delete)
}
