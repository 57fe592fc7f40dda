package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Schedule specific errors
var (
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrInvalidScheduleData = errors.New("invalid schedule data")
)

// Error codes
const (
	CodeScheduleNotFound    = "SCHEDULE_NOT_FOUND"
	CodeInvalidScheduleData = "INVALID_SCHEDULE_DATA"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrScheduleNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeScheduleNotFound,
			Message: "Schedule not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidScheduleData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidScheduleData,
			Message: "Invalid schedule data",
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
