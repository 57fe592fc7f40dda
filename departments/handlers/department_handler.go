package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/departments/errors"
	"github.com/gethelpdesk/helpdesk/departments/models"
	"github.com/gethelpdesk/helpdesk/departments/repository"
)

// DepartmentHandler handles department HTTP requests. Departments are a
// plain CRUD surface, so the handler talks to the repository directly.
type DepartmentHandler struct {
	repo repository.DepartmentRepository
}

// NewDepartmentHandler creates a new DepartmentHandler with injected dependencies
func NewDepartmentHandler(repo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

// Create handles POST /departments
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var dept models.Department
	if err := c.BodyParser(&dept); err != nil || dept.Name == "" {
		return errors.HandleServiceError(c, errors.ErrInvalidDepartmentData)
	}
	if err := h.repo.Create(c.UserContext(), &dept); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dept)
}

// Get handles GET /departments/:id
func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	deptID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidDepartmentData)
	}
	dept, err := h.repo.FindByID(c.UserContext(), deptID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(dept)
}

// List handles GET /departments
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	depts, err := h.repo.List(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(depts)
}

// Update handles PUT /departments/:id
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	deptID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidDepartmentData)
	}
	var dept models.Department
	if err := c.BodyParser(&dept); err != nil || dept.Name == "" {
		return errors.HandleServiceError(c, errors.ErrInvalidDepartmentData)
	}
	dept.DeptID = deptID
	if err := h.repo.Update(c.UserContext(), &dept); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(dept)
}

// Delete handles DELETE /departments/:id
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	deptID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidDepartmentData)
	}
	if err := h.repo.Delete(c.UserContext(), deptID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
