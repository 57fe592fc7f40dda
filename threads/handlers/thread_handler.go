package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/internal/types"
	"github.com/gethelpdesk/helpdesk/threads/errors"
	"github.com/gethelpdesk/helpdesk/threads/services"
)

// ThreadHandler handles all thread-related HTTP requests
type ThreadHandler struct {
	threadService services.ThreadService
}

// NewThreadHandler creates a new ThreadHandler with injected dependencies
func NewThreadHandler(threadService services.ThreadService) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// GetByTicket handles GET /tickets/:id/thread
func (h *ThreadHandler) GetByTicket(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidThreadData)
	}

	view, err := h.threadService.GetByTicket(c.UserContext(), ticketID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(view)
}

// PostEntry handles POST /tickets/:id/thread/entries
func (h *ThreadHandler) PostEntry(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidThreadData)
	}

	var params services.PostEntryParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidThreadData)
	}

	agent, ok := c.Locals(types.AgentCtxName).(types.AgentContext)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing agent context",
		})
	}

	entry, err := h.threadService.PostEntry(c.UserContext(), ticketID, &agent.AgentID, agent.Name, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(entry)
}

// AddCollaborator handles POST /tickets/:id/thread/collaborators
func (h *ThreadHandler) AddCollaborator(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidThreadData)
	}

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil || body.UserID == 0 {
		return errors.HandleServiceError(c, errors.ErrInvalidThreadData)
	}
	if body.Role == "" {
		body.Role = "cc"
	}

	if err := h.threadService.AddCollaborator(c.UserContext(), ticketID, body.UserID, body.Role); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusCreated)
}
