package tasks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/tasks/handlers"
)

// TasksHandlers holds all the handlers this router needs
type TasksHandlers struct {
	TaskHandler *handlers.TaskHandler
}

// RegisterRoutes is the single entry point for setting up task routes.
func RegisterRoutes(app *fiber.App, h *TasksHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/tasks", agentAuth)
	group.Post("/", h.TaskHandler.Create)
	group.Get("/", h.TaskHandler.List)
	group.Get("/:id", h.TaskHandler.Get)
	group.Put("/:id", h.TaskHandler.Update)
	group.Post("/:id/close", h.TaskHandler.Close)
	group.Post("/:id/reopen", h.TaskHandler.Reopen)
	group.Delete("/:id", h.TaskHandler.Delete)
}
