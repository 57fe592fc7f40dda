package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"

	"github.com/gethelpdesk/helpdesk/internal/types"
	"github.com/gethelpdesk/helpdesk/tickets/errors"
	"github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/search"
	"github.com/gethelpdesk/helpdesk/tickets/services"
)

// TicketHandler handles all ticket-related HTTP requests
type TicketHandler struct {
	ticketService services.TicketService
	queryDecoder  *schema.Decoder
}

// NewTicketHandler creates a new TicketHandler with injected dependencies
func NewTicketHandler(ticketService services.TicketService) *TicketHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &TicketHandler{
		ticketService: ticketService,
		queryDecoder:  decoder,
	}
}

// Create handles POST /tickets, the public submission endpoint.
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var params models.CreateTicketParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	ticket, err := h.ticketService.Create(c.UserContext(), &params)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(ticket)
}

// Get handles GET /tickets/:id
func (h *TicketHandler) Get(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid ticket id")
	}

	ticket, err := h.ticketService.Get(c.UserContext(), ticketID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(ticket)
}

// GetByNumber handles GET /tickets/number/:number
func (h *TicketHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return errors.HandleValidationError(c, "Ticket number is required")
	}

	ticket, err := h.ticketService.GetByNumber(c.UserContext(), number)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(ticket)
}

// Search handles POST /tickets/search, the advanced agent search with
// raw filter triples and sort keys in the body.
func (h *TicketHandler) Search(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid search request")
	}

	agent, ok := c.Locals(types.AgentCtxName).(types.AgentContext)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing agent context",
		})
	}

	result, err := h.ticketService.Search(c.UserContext(), &req, search.Scope{AgentID: agent.AgentID})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// SimpleSearch handles GET /tickets, the query-string search. The
// query is decoded with gorilla/schema and lowered to filter triples.
func (h *TicketHandler) SimpleSearch(c *fiber.Ctx) error {
	values := map[string][]string{}
	for key, vals := range c.Queries() {
		values[key] = []string{vals}
	}

	var query models.SimpleSearchQuery
	if err := h.queryDecoder.Decode(&query, values); err != nil {
		return errors.HandleValidationError(c, "Invalid query parameters")
	}

	agent, ok := c.Locals(types.AgentCtxName).(types.AgentContext)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing agent context",
		})
	}

	req := simpleToRequest(&query)
	result, err := h.ticketService.Search(c.UserContext(), req, search.Scope{AgentID: agent.AgentID})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// simpleToRequest lowers the flat query-string form into the filter
// triples the compiler consumes.
func simpleToRequest(q *models.SimpleSearchQuery) *models.SearchRequest {
	req := &models.SearchRequest{Page: q.Page, Size: q.Size}

	if q.Keyword != "" {
		req.Filters = append(req.Filters, search.Filter{
			Field: "title", Operator: search.OpILike, Value: "%" + q.Keyword + "%",
		})
	}
	if q.StatusID > 0 {
		req.Filters = append(req.Filters, search.Filter{
			Field: "status_id", Operator: search.OpEq, Value: q.StatusID,
		})
	}
	if q.AgentID > 0 {
		req.Filters = append(req.Filters, search.Filter{
			Field: "agent_id", Operator: search.OpEq, Value: q.AgentID,
		})
	}
	if q.Assigned != "" {
		req.Filters = append(req.Filters, search.Filter{
			Field: "assigned", Operator: search.OpEq, Value: q.Assigned,
		})
	}
	if q.Period != "" {
		req.Filters = append(req.Filters, search.Filter{
			Field: "period", Operator: search.OpEq, Value: q.Period,
		})
	}
	if q.Sort != "" {
		req.Sorts = append(req.Sorts, q.Sort)
	}
	return req
}

// UserTickets handles GET /users/:id/tickets. The search runs in
// end-user scope, so the ownership predicate is seeded by the compiler
// and no filter in the query string can widen the result set.
func (h *TicketHandler) UserTickets(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid user id")
	}

	values := map[string][]string{}
	for key, vals := range c.Queries() {
		values[key] = []string{vals}
	}
	var query models.SimpleSearchQuery
	if err := h.queryDecoder.Decode(&query, values); err != nil {
		return errors.HandleValidationError(c, "Invalid query parameters")
	}

	req := simpleToRequest(&query)
	result, err := h.ticketService.Search(c.UserContext(), req, search.Scope{UserID: userID, EndUser: true})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// Update handles PUT /tickets/:id, the audited agent update.
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid ticket id")
	}

	var params models.UpdateTicketParams
	if err := c.BodyParser(&params); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	agent, ok := c.Locals(types.AgentCtxName).(types.AgentContext)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing agent context",
		})
	}

	result, err := h.ticketService.UpdateWithAudit(c.UserContext(), ticketID, &params,
		services.Actor{AgentID: agent.AgentID, Name: agent.Name})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// Delete handles DELETE /tickets/:id
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errors.HandleValidationError(c, "Invalid ticket id")
	}

	if err := h.ticketService.Delete(c.UserContext(), ticketID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
