package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/schedules/handlers"
)

// SchedulesHandlers holds all the handlers this router needs
type SchedulesHandlers struct {
	ScheduleHandler *handlers.ScheduleHandler
}

// RegisterRoutes is the single entry point for setting up schedule routes.
// Reading is agent-level; changing schedules is admin-only.
func RegisterRoutes(app *fiber.App, h *SchedulesHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret, AdminOnly: true})

	group := app.Group("/schedules", agentAuth)
	group.Get("/", h.ScheduleHandler.List)
	group.Get("/:id", h.ScheduleHandler.Get)

	group.Post("/", adminAuth, h.ScheduleHandler.Create)
	group.Put("/:id", adminAuth, h.ScheduleHandler.Update)
	group.Delete("/:id", adminAuth, h.ScheduleHandler.Delete)
}
