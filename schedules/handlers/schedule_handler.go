package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/schedules/errors"
	"github.com/gethelpdesk/helpdesk/schedules/models"
	"github.com/gethelpdesk/helpdesk/schedules/repository"
)

// ScheduleHandler handles schedule HTTP requests. Schedules are a plain
// CRUD surface, so the handler talks to the repository directly; the
// entry set is replaced wholesale inside one transaction.
type ScheduleHandler struct {
	repo repository.ScheduleRepository
}

// NewScheduleHandler creates a new ScheduleHandler with injected dependencies
func NewScheduleHandler(repo repository.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

// Create handles POST /schedules
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var params models.UpsertScheduleParams
	if err := c.BodyParser(&params); err != nil || params.Name == "" {
		return errors.HandleValidationError(c, "Schedule name is required")
	}

	schedule := &models.Schedule{
		Name:        params.Name,
		Timezone:    params.Timezone,
		Description: params.Description,
	}
	err := h.repo.WithTransaction(c.UserContext(), func(txCtx context.Context) error {
		if err := h.repo.Create(txCtx, schedule); err != nil {
			return err
		}
		return h.repo.ReplaceEntries(txCtx, schedule.ScheduleID, toEntries(params.Entries))
	})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	full, err := h.repo.FindByID(c.UserContext(), schedule.ScheduleID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(full)
}

// Get handles GET /schedules/:id
func (h *ScheduleHandler) Get(c *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid schedule id")
	}

	schedule, err := h.repo.FindByID(c.UserContext(), scheduleID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(schedule)
}

// List handles GET /schedules
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	schedules, err := h.repo.List(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(schedules)
}

// Update handles PUT /schedules/:id
func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid schedule id")
	}

	var params models.UpsertScheduleParams
	if err := c.BodyParser(&params); err != nil || params.Name == "" {
		return errors.HandleValidationError(c, "Schedule name is required")
	}

	schedule := &models.Schedule{
		ScheduleID:  scheduleID,
		Name:        params.Name,
		Timezone:    params.Timezone,
		Description: params.Description,
	}
	err = h.repo.WithTransaction(c.UserContext(), func(txCtx context.Context) error {
		if err := h.repo.Update(txCtx, schedule); err != nil {
			return err
		}
		return h.repo.ReplaceEntries(txCtx, scheduleID, toEntries(params.Entries))
	})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	full, err := h.repo.FindByID(c.UserContext(), scheduleID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(full)
}

// Delete handles DELETE /schedules/:id
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid schedule id")
	}

	if err := h.repo.Delete(c.UserContext(), scheduleID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func toEntries(params []models.ScheduleEntryParams) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, len(params))
	for i, p := range params {
		entries[i] = models.ScheduleEntry{
			Name:     p.Name,
			Repeats:  p.Repeats,
			StartsOn: p.StartsOn,
			StartsAt: p.StartsAt,
			EndOn:    p.EndOn,
			EndsAt:   p.EndsAt,
			StopsOn:  p.StopsOn,
			Day:      p.Day,
			Week:     p.Week,
			Month:    p.Month,
		}
	}
	return entries
}
