// Package rates exposes the public exchange-rate board.
package rates

import (
	ratesvc "github.com/dolarasia/dolarasia/pkg/service/rates"
	"github.com/dolarasia/dolarasia/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the rate endpoints. The board is public.
func Routes(app *fiber.App, svc *ratesvc.Service) {
	app.Get("/api/rates", List(svc))
}

// List returns the full rate board with fresh jitter.
// @Summary List exchange rates
// @Tags rates
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/rates [get]
func List(svc *ratesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Rates fetched", svc.List())
	}
}
