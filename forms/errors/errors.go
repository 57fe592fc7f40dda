package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Form service specific errors
var (
	ErrFormNotFound    = errors.New("form not found")
	ErrInvalidFormData = errors.New("invalid form data")
)

// Error codes
const (
	CodeFormNotFound     = "FORM_NOT_FOUND"
	CodeInvalidFormData  = "INVALID_FORM_DATA"
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
	case errors.Is(err, ErrFormNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeFormNotFound,
			Message: "Form not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidFormData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidFormData,
			Message: "Invalid form data",
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
