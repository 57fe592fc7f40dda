package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/forms/errors"
	"github.com/gethelpdesk/helpdesk/forms/models"
	"github.com/gethelpdesk/helpdesk/forms/services"
)

// FormHandler handles form management requests
type FormHandler struct {
	formService services.FormService
}

// NewFormHandler creates a new FormHandler with injected dependencies
func NewFormHandler(formService services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// Create handles POST /forms
func (h *FormHandler) Create(c *fiber.Ctx) error {
	var params models.UpsertFormParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	form, err := h.formService.Create(c.UserContext(), &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(form)
}

// Get handles GET /forms/:id
func (h *FormHandler) Get(c *fiber.Ctx) error {
	formID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid form id")
	}

	form, err := h.formService.Get(c.UserContext(), formID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// List handles GET /forms
func (h *FormHandler) List(c *fiber.Ctx) error {
	forms, err := h.formService.List(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(forms)
}

// Update handles PUT /forms/:id
func (h *FormHandler) Update(c *fiber.Ctx) error {
	formID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid form id")
	}

	var params models.UpsertFormParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	form, err := h.formService.Update(c.UserContext(), formID, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// Delete handles DELETE /forms/:id
func (h *FormHandler) Delete(c *fiber.Ctx) error {
	formID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid form id")
	}

	if err := h.formService.Delete(c.UserContext(), formID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
