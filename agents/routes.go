package agents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/agents/handlers"
	"github.com/gethelpdesk/helpdesk/internal/middleware/authjwt"
	"github.com/gethelpdesk/helpdesk/internal/middleware/ratelimit"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
)

// AgentsHandlers holds all the handlers this router needs
type AgentsHandlers struct {
	AgentHandler *handlers.AgentHandler
}

// RegisterRoutes is the single entry point for setting up agent routes.
// Login is public but rate-limited; profile reads need an agent token;
// agent management is admin-only.
func RegisterRoutes(app *fiber.App, h *AgentsHandlers, cfg *config.Config) {
	agentAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret, AdminOnly: true})
	loginLimiter := ratelimit.New(ratelimit.LoginConfig())

	group := app.Group("/agents")

	group.Post("/login", loginLimiter, h.AgentHandler.Login)
	group.Get("/me", agentAuth, h.AgentHandler.Me)

	group.Get("/", agentAuth, h.AgentHandler.List)
	group.Get("/:id", agentAuth, h.AgentHandler.Get)
	group.Post("/", adminAuth, h.AgentHandler.Create)
	group.Put("/:id", adminAuth, h.AgentHandler.Update)
	group.Put("/:id/password", adminAuth, h.AgentHandler.ChangePassword)
	group.Delete("/:id", adminAuth, h.AgentHandler.Delete)
}
