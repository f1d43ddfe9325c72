// Package admin exposes the back-office endpoints. Every route requires an
// admin token.
package admin

import (
	"github.com/dolarasia/dolarasia/pkg/config"
	"github.com/dolarasia/dolarasia/pkg/middleware"
	"github.com/dolarasia/dolarasia/pkg/repository"
	exchangesvc "github.com/dolarasia/dolarasia/pkg/service/exchange"
	"github.com/dolarasia/dolarasia/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the admin endpoints behind JWT and admin guards.
func Routes(app *fiber.App, svc *exchangesvc.Service, users repository.User, cfg *config.Jwt) {
	group := app.Group("/api/admin", middleware.JwtProtected(cfg), middleware.AdminRequired())
	group.Get("/transactions", ListTransactions(svc))
	group.Get("/users", ListUsers(users))
	group.Get("/stats", Stats(svc))
}

// ListTransactions returns every transaction across all users.
// @Summary List all transactions
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /api/admin/transactions [get]
// @Security Bearer
func ListTransactions(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := svc.ListAll(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
	}
}

// ListUsers dumps the stored user records, credentials included. The route
// sits behind the admin guard for exactly that reason.
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /api/admin/users [get]
// @Security Bearer
func ListUsers(users repository.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := users.All(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users fetched", all)
	}
}

// Stats returns the aggregate counters for the dashboard.
// @Summary Platform statistics
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /api/admin/stats [get]
// @Security Bearer
func Stats(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.GetStats(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't compute stats", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Stats computed", stats)
	}
}
