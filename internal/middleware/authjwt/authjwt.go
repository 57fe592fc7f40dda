package authjwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gethelpdesk/helpdesk/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the HMAC key used to validate HS256 agent tokens.
	Secret string
	// AdminOnly rejects tokens that lack the admin flag.
	AdminOnly bool
}

// New creates a new middleware handler. It validates the bearer token,
// extracts the agent identity, and stores an AgentContext in fiber locals
// under types.AgentCtxName.
func New(cfg Config) fiber.Handler {
	if cfg.Secret == "" {
		panic("authjwt: secret is required")
	}
	secret := []byte(cfg.Secret)

	return func(c *fiber.Ctx) error {
		var tokenString string

		authHeader := c.Get(types.HeaderAuthorization)
		if authHeader != "" && strings.HasPrefix(authHeader, types.BearerPrefix) {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid JWT",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Enforce the expected signing algorithm.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token",
				"details": err.Error(),
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token claims",
			})
		}

		if exp, ok := claims["exp"].(float64); ok {
			if int64(exp) < time.Now().Unix() {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "Token has expired",
				})
			}
		}

		agentID, ok := claims["agent_id"].(float64)
		if !ok || agentID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token claim format",
			})
		}

		admin := false
		if a, ok := claims["admin"].(bool); ok {
			admin = a
		}
		name, _ := claims["name"].(string)

		if cfg.AdminOnly && !admin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "FORBIDDEN",
				"message": "Admin access required",
			})
		}

		c.Locals(types.AgentCtxName, types.AgentContext{
			AgentID: int64(agentID),
			Admin:   admin,
			Name:    name,
		})

		return c.Next()
	}
}
