package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/types"
	"github.com/gethelpdesk/helpdesk/queues/errors"
	"github.com/gethelpdesk/helpdesk/queues/models"
	"github.com/gethelpdesk/helpdesk/queues/services"
)

// QueueHandler handles saved-search requests
type QueueHandler struct {
	queueService services.QueueService
}

// NewQueueHandler creates a new QueueHandler with injected dependencies
func NewQueueHandler(queueService services.QueueService) *QueueHandler {
	return &QueueHandler{queueService: queueService}
}

func agentFrom(c *fiber.Ctx) (types.AgentContext, bool) {
	agent, ok := c.Locals(types.AgentCtxName).(types.AgentContext)
	return agent, ok
}

// Create handles POST /queues
func (h *QueueHandler) Create(c *fiber.Ctx) error {
	agent, ok := agentFrom(c)
	if !ok {
		return c.SendStatus(http.StatusUnauthorized)
	}

	var params models.UpsertQueueParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	queue, err := h.queueService.Create(c.UserContext(), agent.AgentID, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(queue)
}

// Get handles GET /queues/:id
func (h *QueueHandler) Get(c *fiber.Ctx) error {
	queueID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid queue id")
	}

	queue, err := h.queueService.Get(c.UserContext(), queueID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(queue)
}

// List handles GET /queues
func (h *QueueHandler) List(c *fiber.Ctx) error {
	agent, ok := agentFrom(c)
	if !ok {
		return c.SendStatus(http.StatusUnauthorized)
	}

	queues, err := h.queueService.List(c.UserContext(), agent.AgentID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(queues)
}

// Update handles PUT /queues/:id
func (h *QueueHandler) Update(c *fiber.Ctx) error {
	agent, ok := agentFrom(c)
	if !ok {
		return c.SendStatus(http.StatusUnauthorized)
	}

	queueID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid queue id")
	}

	var params models.UpsertQueueParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	queue, err := h.queueService.Update(c.UserContext(), queueID, agent.AgentID, agent.Admin, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(queue)
}

// Delete handles DELETE /queues/:id
func (h *QueueHandler) Delete(c *fiber.Ctx) error {
	agent, ok := agentFrom(c)
	if !ok {
		return c.SendStatus(http.StatusUnauthorized)
	}

	queueID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid queue id")
	}

	if err := h.queueService.Delete(c.UserContext(), queueID, agent.AgentID, agent.Admin); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Execute handles GET /queues/:id/tickets
func (h *QueueHandler) Execute(c *fiber.Ctx) error {
	agent, ok := agentFrom(c)
	if !ok {
		return c.SendStatus(http.StatusUnauthorized)
	}

	queueID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid queue id")
	}

	result, err := h.queueService.Execute(c.UserContext(), queueID, agent.AgentID,
		c.QueryInt("page", 1), c.QueryInt("size", 25))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}
