package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/agents/errors"
	"github.com/gethelpdesk/helpdesk/agents/models"
	"github.com/gethelpdesk/helpdesk/agents/services"
	"github.com/gethelpdesk/helpdesk/internal/types"
)

// AgentHandler handles all agent-related HTTP requests
type AgentHandler struct {
	agentService services.AgentService
}

// NewAgentHandler creates a new AgentHandler with injected dependencies
func NewAgentHandler(agentService services.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// Login handles POST /agents/login
func (h *AgentHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidCredentials)
	}

	resp, err := h.agentService.Login(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}

// Me handles GET /agents/me
func (h *AgentHandler) Me(c *fiber.Ctx) error {
	agent, ok := c.Locals(types.AgentCtxName).(types.AgentContext)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing agent context",
		})
	}

	profile, err := h.agentService.Get(c.UserContext(), agent.AgentID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(profile)
}

// Create handles POST /agents
func (h *AgentHandler) Create(c *fiber.Ctx) error {
	var params models.CreateAgentParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidAgentData)
	}

	agent, err := h.agentService.Create(c.UserContext(), &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(agent)
}

// Get handles GET /agents/:id
func (h *AgentHandler) Get(c *fiber.Ctx) error {
	agentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidAgentData)
	}

	agent, err := h.agentService.Get(c.UserContext(), agentID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(agent)
}

// List handles GET /agents
func (h *AgentHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 25)

	agents, err := h.agentService.List(c.UserContext(), page, size)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(agents)
}

// Update handles PUT /agents/:id
func (h *AgentHandler) Update(c *fiber.Ctx) error {
	agentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidAgentData)
	}

	var params models.UpdateAgentParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidAgentData)
	}

	agent, err := h.agentService.Update(c.UserContext(), agentID, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(agent)
}

// ChangePassword handles PUT /agents/:id/password
func (h *AgentHandler) ChangePassword(c *fiber.Ctx) error {
	agentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidAgentData)
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidAgentData)
	}

	if err := h.agentService.ChangePassword(c.UserContext(), agentID, body.Password); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /agents/:id
func (h *AgentHandler) Delete(c *fiber.Ctx) error {
	agentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidAgentData)
	}

	if err := h.agentService.Delete(c.UserContext(), agentID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
