package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/settings/errors"
	"github.com/gethelpdesk/helpdesk/settings/repository"
)

// SettingsHandler handles configuration requests. Settings are a thin
// key/value surface, so the handler talks to the repository directly.
type SettingsHandler struct {
	repo repository.SettingsRepository
}

// NewSettingsHandler creates a new SettingsHandler with injected dependencies
func NewSettingsHandler(repo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// ListNamespace handles GET /settings/:namespace
func (h *SettingsHandler) ListNamespace(c *fiber.Ctx) error {
	settings, err := h.repo.ListNamespace(c.UserContext(), c.Params("namespace"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(settings)
}

// Get handles GET /settings/:namespace/:key
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	setting, err := h.repo.Get(c.UserContext(), c.Params("namespace"), c.Params("key"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(setting)
}

// SetAll handles PUT /settings/:namespace, a bulk upsert of the
// namespace's values in one transaction.
func (h *SettingsHandler) SetAll(c *fiber.Ctx) error {
	var values map[string]string
	if err := c.BodyParser(&values); err != nil || len(values) == 0 {
		return errors.HandleValidationError(c, "Expected a non-empty key/value object")
	}

	if err := h.repo.SetAll(c.UserContext(), c.Params("namespace"), values); err != nil {
		return errors.HandleServiceError(c, err)
	}

	settings, err := h.repo.ListNamespace(c.UserContext(), c.Params("namespace"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(settings)
}

// Delete handles DELETE /settings/:namespace/:key
func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("namespace"), c.Params("key")); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
