package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrThreadNotFound    = errors.New("thread not found")
	ErrInvalidThreadData = errors.New("invalid thread data")
	ErrDatabaseOperation = errors.New("database operation failed")
)

const (
	CodeThreadNotFound    = "THREAD_NOT_FOUND"
	CodeInvalidThreadData = "INVALID_THREAD_DATA"
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
	case errors.Is(err, ErrThreadNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeThreadNotFound,
			Message: "Thread not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidThreadData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidThreadData,
			Message: "Invalid thread data",
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
