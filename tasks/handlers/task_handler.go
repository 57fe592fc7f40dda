package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/tasks/errors"
	"github.com/gethelpdesk/helpdesk/tasks/models"
	"github.com/gethelpdesk/helpdesk/tasks/services"
)

// TaskHandler handles task management requests
type TaskHandler struct {
	taskService services.TaskService
}

// NewTaskHandler creates a new TaskHandler with injected dependencies
func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var params models.UpsertTaskParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	task, err := h.taskService.Create(c.UserContext(), &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(task)
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	taskID, err := pathID(c)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid task id")
	}

	task, err := h.taskService.Get(c.UserContext(), taskID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(task)
}

// List handles GET /tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.taskService.List(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("size", 25))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(tasks)
}

// Update handles PUT /tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, err := pathID(c)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid task id")
	}

	var params models.UpsertTaskParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	task, err := h.taskService.Update(c.UserContext(), taskID, &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(task)
}

// Close handles POST /tasks/:id/close
func (h *TaskHandler) Close(c *fiber.Ctx) error {
	taskID, err := pathID(c)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid task id")
	}

	if err := h.taskService.Close(c.UserContext(), taskID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Reopen handles POST /tasks/:id/reopen
func (h *TaskHandler) Reopen(c *fiber.Ctx) error {
	taskID, err := pathID(c)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid task id")
	}

	if err := h.taskService.Reopen(c.UserContext(), taskID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	taskID, err := pathID(c)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid task id")
	}

	if err := h.taskService.Delete(c.UserContext(), taskID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
