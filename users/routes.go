package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/users/handlers"
)

// UsersHandlers holds all the handlers this router needs
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up user routes.
// All user management is agent-only.
func RegisterRoutes(app *fiber.App, h *UsersHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/users", agentAuth)
	group.Post("/", h.UserHandler.Create)
	group.Get("/", h.UserHandler.List)
	group.Get("/:id", h.UserHandler.Get)
	group.Put("/:id", h.UserHandler.Update)
	group.Delete("/:id", h.UserHandler.Delete)
}
