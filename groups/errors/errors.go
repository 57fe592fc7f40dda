package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrGroupNotFound     = errors.New("group not found")
	ErrInvalidGroupData  = errors.New("invalid group data")
	ErrDatabaseOperation = errors.New("database operation failed")
)

const (
	CodeGroupNotFound    = "GROUP_NOT_FOUND"
	CodeInvalidGroupData = "INVALID_GROUP_DATA"
	CodeDatabaseError    = "DATABASE_ERROR"
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
	case errors.Is(err, ErrGroupNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeGroupNotFound,
			Message: "Group not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidGroupData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidGroupData,
			Message: "Invalid group data",
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
