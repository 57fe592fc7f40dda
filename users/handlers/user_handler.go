package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/users/errors"
	"github.com/gethelpdesk/helpdesk/users/models"
	"github.com/gethelpdesk/helpdesk/users/services"
)

// UserHandler handles all end-user HTTP requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var params models.UpsertUserParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidUserData)
	}

	user, err := h.userService.Create(c.UserContext(), &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(user)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidUserData)
	}

	user, err := h.userService.Get(c.UserContext(), userID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(user)
}

// List handles GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 25)

	users, err := h.userService.List(c.UserContext(), page, size)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(users)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidUserData)
	}

	var params models.UpsertUserParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidUserData)
	}

	user, err := h.userService.Update(c.UserContext(), userID, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(user)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidUserData)
	}

	if err := h.userService.Delete(c.UserContext(), userID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
