package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/directory/errors"
	"github.com/gethelpdesk/helpdesk/directory/models"
	"github.com/gethelpdesk/helpdesk/directory/services"
)

// DirectoryHandler handles the lookup-set HTTP endpoints.
type DirectoryHandler struct {
	service services.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler with injected dependencies
func NewDirectoryHandler(service services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// --- topics ---

func (h *DirectoryHandler) CreateTopic(c *fiber.Ctx) error {
	var topic models.Topic
	if err := c.BodyParser(&topic); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.CreateTopic(c.UserContext(), &topic); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(topic)
}

func (h *DirectoryHandler) GetTopic(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	topic, err := h.service.GetTopic(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(topic)
}

func (h *DirectoryHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := h.service.ListTopics(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(topics)
}

func (h *DirectoryHandler) UpdateTopic(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	var topic models.Topic
	if err := c.BodyParser(&topic); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	topic.TopicID = id
	if err := h.service.UpdateTopic(c.UserContext(), &topic); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(topic)
}

func (h *DirectoryHandler) DeleteTopic(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.DeleteTopic(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// --- roles ---

func (h *DirectoryHandler) CreateRole(c *fiber.Ctx) error {
	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.CreateRole(c.UserContext(), &role); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(role)
}

func (h *DirectoryHandler) GetRole(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	role, err := h.service.GetRole(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(role)
}

func (h *DirectoryHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.service.ListRoles(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(roles)
}

func (h *DirectoryHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	role.RoleID = id
	if err := h.service.UpdateRole(c.UserContext(), &role); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(role)
}

func (h *DirectoryHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.DeleteRole(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// --- slas ---

func (h *DirectoryHandler) CreateSLA(c *fiber.Ctx) error {
	var sla models.SLA
	if err := c.BodyParser(&sla); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.CreateSLA(c.UserContext(), &sla); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(sla)
}

func (h *DirectoryHandler) GetSLA(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	sla, err := h.service.GetSLA(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(sla)
}

func (h *DirectoryHandler) ListSLAs(c *fiber.Ctx) error {
	slas, err := h.service.ListSLAs(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(slas)
}

func (h *DirectoryHandler) UpdateSLA(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	var sla models.SLA
	if err := c.BodyParser(&sla); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	sla.SLAID = id
	if err := h.service.UpdateSLA(c.UserContext(), &sla); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(sla)
}

func (h *DirectoryHandler) DeleteSLA(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.DeleteSLA(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// --- statuses ---

func (h *DirectoryHandler) CreateStatus(c *fiber.Ctx) error {
	var status models.TicketStatus
	if err := c.BodyParser(&status); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.CreateStatus(c.UserContext(), &status); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(status)
}

func (h *DirectoryHandler) GetStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	status, err := h.service.GetStatus(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(status)
}

func (h *DirectoryHandler) ListStatuses(c *fiber.Ctx) error {
	statuses, err := h.service.ListStatuses(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(statuses)
}

func (h *DirectoryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	var status models.TicketStatus
	if err := c.BodyParser(&status); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	status.StatusID = id
	if err := h.service.UpdateStatus(c.UserContext(), &status); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(status)
}

func (h *DirectoryHandler) DeleteStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.DeleteStatus(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// --- priorities ---

func (h *DirectoryHandler) ListPriorities(c *fiber.Ctx) error {
	priorities, err := h.service.ListPriorities(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(priorities)
}

// --- categories ---

func (h *DirectoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.CreateCategory(c.UserContext(), &category); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(category)
}

func (h *DirectoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	category, err := h.service.GetCategory(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(category)
}

func (h *DirectoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(categories)
}

func (h *DirectoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	category.CategoryID = id
	if err := h.service.UpdateCategory(c.UserContext(), &category); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(category)
}

func (h *DirectoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidData)
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
