package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/settings/handlers"
)

// SettingsHandlers holds all the handlers this router needs
type SettingsHandlers struct {
	SettingsHandler *handlers.SettingsHandler
}

// RegisterRoutes is the single entry point for setting up settings routes.
// All configuration access is admin-only.
func RegisterRoutes(app *fiber.App, h *SettingsHandlers, cfg *config.Config) {
	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret, AdminOnly: true})

	group := app.Group("/settings", adminAuth)
	group.Get("/:namespace", h.SettingsHandler.ListNamespace)
	group.Get("/:namespace/:key", h.SettingsHandler.Get)
	group.Put("/:namespace", h.SettingsHandler.SetAll)
	group.Delete("/:namespace/:key", h.SettingsHandler.Delete)
}
