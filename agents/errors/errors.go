package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrAgentNotFound      = errors.New("agent not found")
	ErrInvalidAgentData   = errors.New("invalid agent data")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password is not strong enough")
	ErrDuplicateAgent     = errors.New("agent already exists")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

const (
	CodeAgentNotFound      = "AGENT_NOT_FOUND"
	CodeInvalidAgentData   = "INVALID_AGENT_DATA"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeDuplicateAgent     = "DUPLICATE_AGENT"
	CodeDatabaseError      = "DATABASE_ERROR"
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
	case errors.Is(err, ErrAgentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeAgentNotFound,
			Message: "Agent not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidCredentials):
		// No details: do not leak whether the email exists.
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid email or password",
		})
	case errors.Is(err, ErrWeakPassword):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeWeakPassword,
			Message: "Password is not strong enough",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDuplicateAgent):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateAgent,
			Message: "Agent already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidAgentData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidAgentData,
			Message: "Invalid agent data",
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
