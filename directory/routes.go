package directory

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/directory/handlers"
	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
)

// DirectoryHandlers holds all the handlers this router needs
type DirectoryHandlers struct {
	DirectoryHandler *handlers.DirectoryHandler
}

// RegisterRoutes is the single entry point for setting up the lookup-set
// routes. Reads need an agent token; writes are admin-only.
func RegisterRoutes(app *fiber.App, h *DirectoryHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret, AdminOnly: true})

	d := h.DirectoryHandler

	topics := app.Group("/topics")
	topics.Get("/", agentAuth, d.ListTopics)
	topics.Get("/:id", agentAuth, d.GetTopic)
	topics.Post("/", adminAuth, d.CreateTopic)
	topics.Put("/:id", adminAuth, d.UpdateTopic)
	topics.Delete("/:id", adminAuth, d.DeleteTopic)

	roles := app.Group("/roles")
	roles.Get("/", agentAuth, d.ListRoles)
	roles.Get("/:id", agentAuth, d.GetRole)
	roles.Post("/", adminAuth, d.CreateRole)
	roles.Put("/:id", adminAuth, d.UpdateRole)
	roles.Delete("/:id", adminAuth, d.DeleteRole)

	slas := app.Group("/slas")
	slas.Get("/", agentAuth, d.ListSLAs)
	slas.Get("/:id", agentAuth, d.GetSLA)
	slas.Post("/", adminAuth, d.CreateSLA)
	slas.Put("/:id", adminAuth, d.UpdateSLA)
	slas.Delete("/:id", adminAuth, d.DeleteSLA)

	statuses := app.Group("/statuses")
	statuses.Get("/", agentAuth, d.ListStatuses)
	statuses.Get("/:id", agentAuth, d.GetStatus)
	statuses.Post("/", adminAuth, d.CreateStatus)
	statuses.Put("/:id", adminAuth, d.UpdateStatus)
	statuses.Delete("/:id", adminAuth, d.DeleteStatus)

	app.Get("/priorities", agentAuth, d.ListPriorities)

	categories := app.Group("/categories")
	categories.Get("/", agentAuth, d.ListCategories)
	categories.Get("/:id", agentAuth, d.GetCategory)
	categories.Post("/", adminAuth, d.CreateCategory)
	categories.Put("/:id", adminAuth, d.UpdateCategory)
	categories.Delete("/:id", adminAuth, d.DeleteCategory)
}
