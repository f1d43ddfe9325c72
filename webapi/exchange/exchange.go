// Package exchange exposes order placement, conversion previews, and the
// customer's transaction history.
package exchange

import (
	"errors"

	"github.com/dolarasia/dolarasia/pkg/config"
	domainexchange "github.com/dolarasia/dolarasia/pkg/domain/exchange"
	"github.com/dolarasia/dolarasia/pkg/middleware"
	exchangesvc "github.com/dolarasia/dolarasia/pkg/service/exchange"
	"github.com/dolarasia/dolarasia/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the authenticated exchange endpoints.
func Routes(app *fiber.App, svc *exchangesvc.Service, cfg *config.Jwt) {
	group := app.Group("/api", middleware.JwtProtected(cfg))
	group.Post("/exchange", CreateTransaction(svc))
	group.Get("/exchange/preview", Preview(svc))
	group.Get("/transactions", ListMine(svc))
}

// CreateTransaction places an order on behalf of the token's user.
// @Summary Create an exchange transaction
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body CreateTransactionInput true "Order"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /api/exchange [post]
// @Security Bearer
func CreateTransaction(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateTransactionInput](c)
		if input == nil {
			return err
		}
		tx, err := svc.CreateTransaction(c.Context(), u.ID, toServiceInput(input))
		if err != nil {
			return orderProblem(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", tx)
	}
}

// Preview quotes an order from query parameters without recording it.
// @Summary Preview a conversion
// @Tags exchange
// @Produce json
// @Param type query string true "buy or sell"
// @Param currency query string true "ISO currency code"
// @Param amount query number true "Amount in the source currency"
// @Success 200 {object} common.Response
// @Failure 422 {object} common.ProblemDetails
// @Router /api/exchange/preview [get]
// @Security Bearer
func Preview(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.QueryAndValidate[PreviewInput](c)
		if input == nil {
			return err
		}
		q, err := svc.Preview(exchangesvc.CreateTransactionInput{
			Direction: domainexchange.Direction(input.Direction),
			Currency:  input.Currency,
			Amount:    input.Amount,
		})
		if err != nil {
			return orderProblem(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Quote calculated", q)
	}
}

// ListMine returns the authenticated user's history, newest first.
// @Summary List own transactions
// @Tags exchange
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/transactions [get]
// @Security Bearer
func ListMine(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		txs, err := svc.ListByUser(c.Context(), u.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
	}
}

func toServiceInput(input *CreateTransactionInput) exchangesvc.CreateTransactionInput {
	return exchangesvc.CreateTransactionInput{
		Direction:     domainexchange.Direction(input.Direction),
		Currency:      input.Currency,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
	}
}

func orderProblem(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domainexchange.ErrAmountBelowMinimum),
		errors.Is(err, domainexchange.ErrUnknownCurrency),
		errors.Is(err, domainexchange.ErrInvalidDirection),
		errors.Is(err, domainexchange.ErrInvalidAmount):
		return common.ProblemDetailsJSON(c, "Order rejected", err, fiber.StatusUnprocessableEntity)
	case errors.Is(err, domainexchange.ErrRateUnavailable):
		return common.ProblemDetailsJSON(c, "Rates unavailable", err, fiber.StatusServiceUnavailable)
	default:
		return common.ProblemDetailsJSON(c, "Internal Server Error", err)
	}
}
