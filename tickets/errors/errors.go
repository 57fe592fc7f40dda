package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/tickets/search"
)

// Ticket service specific errors
var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrInvalidTicketData = errors.New("invalid ticket data")
	ErrNumberExhausted   = errors.New("unable to generate a unique ticket number")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeTicketNotFound    = "TICKET_NOT_FOUND"
	CodeTopicNotFound     = "TOPIC_NOT_FOUND"
	CodeInvalidTicketData = "INVALID_TICKET_DATA"
	CodeInvalidFilter     = "INVALID_FILTER"
	CodeNumberExhausted   = "NUMBER_EXHAUSTED"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeDatabaseError     = "DATABASE_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTicketNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeTicketNotFound,
			Message: "Ticket not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrTopicNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeTopicNotFound,
			Message: "Topic not found",
			Details: err.Error(),
		})
	case errors.Is(err, search.ErrNotImplemented):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidFilter,
			Message: "Unsupported search operator",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidTicketData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidTicketData,
			Message: "Invalid ticket data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrNumberExhausted):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeNumberExhausted,
			Message: "Unable to generate a unique ticket number",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseError,
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
		Details: message,
	})
}
