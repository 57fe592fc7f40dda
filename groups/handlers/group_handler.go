package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/groups/errors"
	"github.com/gethelpdesk/helpdesk/groups/models"
	"github.com/gethelpdesk/helpdesk/groups/services"
)

// GroupHandler handles all group-related HTTP requests
type GroupHandler struct {
	groupService services.GroupService
}

// NewGroupHandler creates a new GroupHandler with injected dependencies
func NewGroupHandler(groupService services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create handles POST /groups
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var params models.UpsertGroupParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidGroupData)
	}

	group, err := h.groupService.Create(c.UserContext(), &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(group)
}

// Get handles GET /groups/:id
func (h *GroupHandler) Get(c *fiber.Ctx) error {
	groupID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidGroupData)
	}

	group, err := h.groupService.Get(c.UserContext(), groupID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(group)
}

// List handles GET /groups
func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groupService.List(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(groups)
}

// Update handles PUT /groups/:id
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	groupID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidGroupData)
	}

	var params models.UpsertGroupParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidGroupData)
	}

	group, err := h.groupService.Update(c.UserContext(), groupID, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(group)
}

// Delete handles DELETE /groups/:id
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	groupID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidGroupData)
	}

	if err := h.groupService.Delete(c.UserContext(), groupID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
