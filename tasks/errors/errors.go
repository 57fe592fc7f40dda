package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Task service specific errors
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTaskData = errors.New("invalid task data")
	ErrNumberExhausted = errors.New("unable to generate a unique task number")
)

// Error codes
const (
	CodeTaskNotFound     = "TASK_NOT_FOUND"
	CodeInvalidTaskData  = "INVALID_TASK_DATA"
	CodeNumberExhausted  = "NUMBER_EXHAUSTED"
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
	case errors.Is(err, ErrTaskNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeTaskNotFound,
			Message: "Task not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidTaskData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidTaskData,
			Message: "Invalid task data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrNumberExhausted):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeNumberExhausted,
			Message: "Unable to generate a unique task number",
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
