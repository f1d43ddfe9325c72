// Package webapi provides the HTTP surface. It is organized into
// sub-packages for the different domains:
// - auth: registration, login, and logout
// - rates: the public rate board
// - exchange: order placement and transaction history
// - admin: the back-office endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/dolarasia/dolarasia/pkg/app"
	adminweb "github.com/dolarasia/dolarasia/webapi/admin"
	authweb "github.com/dolarasia/dolarasia/webapi/auth"
	"github.com/dolarasia/dolarasia/webapi/common"
	exchangeweb "github.com/dolarasia/dolarasia/webapi/exchange"
	ratesweb "github.com/dolarasia/dolarasia/webapi/rates"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp initializes Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	jwtCfg := app.Config.Auth.Jwt

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Rate limiting keyed on X-Forwarded-For when behind a proxy,
	// falling back to X-Real-IP, then the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Dolarasia API is running! 💱")
		},
	)

	authweb.Routes(fiberApp, app.AuthService, jwtCfg)
	ratesweb.Routes(fiberApp, app.RateService)
	exchangeweb.Routes(fiberApp, app.ExchangeService, jwtCfg)
	adminweb.Routes(fiberApp, app.ExchangeService, app.Deps.Users, jwtCfg)
	return fiberApp
}
