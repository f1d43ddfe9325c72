// Package middleware provides the route guards for the HTTP surface:
// JWT verification and the admin-role check.
package middleware

import (
	"github.com/dolarasia/dolarasia/pkg/config"
	"github.com/dolarasia/dolarasia/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtProtected verifies the bearer token and stores it at c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// AdminRequired rejects verified tokens that lack the admin flag. Must run
// after JwtProtected.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := CurrentUser(c)
		if err != nil {
			return unauthorized(c)
		}
		if !u.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status": "error", "message": "Admin access required",
			})
		}
		return c.Next()
	}
}

// CurrentUser extracts the verified identity placed by JwtProtected.
func CurrentUser(c *fiber.Ctx) (*auth.TokenUser, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, fiber.ErrUnauthorized
	}
	return auth.UserFromToken(token)
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT"})
	}
	return unauthorized(c)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT"})
}
