package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gethelpdesk/helpdesk/tickets/search"
)

// Queue service specific errors
var (
	ErrQueueNotFound    = errors.New("queue not found")
	ErrInvalidQueueData = errors.New("invalid queue data")
	ErrNotQueueOwner    = errors.New("queue belongs to another agent")
)

// Error codes
const (
	CodeQueueNotFound    = "QUEUE_NOT_FOUND"
	CodeInvalidQueueData = "INVALID_QUEUE_DATA"
	CodeNotQueueOwner    = "NOT_QUEUE_OWNER"
	CodeInvalidFilter    = "INVALID_FILTER"
	CodeValidationFailed = "VALIDATION_FAILED"
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
	case errors.Is(err, ErrQueueNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeQueueNotFound,
			Message: "Queue not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrNotQueueOwner):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Code:    CodeNotQueueOwner,
			Message: "Queue belongs to another agent",
			Details: err.Error(),
		})
	case errors.Is(err, search.ErrNotImplemented):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidFilter,
			Message: "Unsupported search operator",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidQueueData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidQueueData,
			Message: "Invalid queue data",
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
