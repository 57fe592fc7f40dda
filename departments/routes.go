package departments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/departments/handlers"
	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
)

// DepartmentsHandlers holds all the handlers this router needs
type DepartmentsHandlers struct {
	DepartmentHandler *handlers.DepartmentHandler
}

// RegisterRoutes is the single entry point for setting up department routes
func RegisterRoutes(app *fiber.App, h *DepartmentsHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret, AdminOnly: true})

	group := app.Group("/departments")
	group.Get("/", agentAuth, h.DepartmentHandler.List)
	group.Get("/:id", agentAuth, h.DepartmentHandler.Get)
	group.Post("/", adminAuth, h.DepartmentHandler.Create)
	group.Put("/:id", adminAuth, h.DepartmentHandler.Update)
	group.Delete("/:id", adminAuth, h.DepartmentHandler.Delete)
}
