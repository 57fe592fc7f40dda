package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrInvalidDepartmentData = errors.New("invalid department data")
	ErrDatabaseOperation     = errors.New("database operation failed")
)

const (
	CodeDepartmentNotFound    = "DEPARTMENT_NOT_FOUND"
	CodeInvalidDepartmentData = "INVALID_DEPARTMENT_DATA"
	CodeDatabaseError         = "DATABASE_ERROR"
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
	case errors.Is(err, ErrDepartmentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeDepartmentNotFound,
			Message: "Department not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidDepartmentData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidDepartmentData,
			Message: "Invalid department data",
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
