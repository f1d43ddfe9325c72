// Package auth exposes the registration, login, and logout endpoints.
package auth

import (
	"errors"

	"github.com/dolarasia/dolarasia/pkg/config"
	domainuser "github.com/dolarasia/dolarasia/pkg/domain/user"
	"github.com/dolarasia/dolarasia/pkg/middleware"
	authsvc "github.com/dolarasia/dolarasia/pkg/service/auth"
	"github.com/dolarasia/dolarasia/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the authentication endpoints.
func Routes(app *fiber.App, svc *authsvc.Service, cfg *config.Jwt) {
	app.Post("/auth/register", Register(svc))
	app.Post("/auth/login", Login(svc))
	app.Post("/auth/logout", middleware.JwtProtected(cfg), Logout(svc))
}

// Register creates an account and returns the new user with a token.
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /auth/register [post]
func Register(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		u, err := svc.Register(c.Context(), authsvc.RegisterInput{
			Email:    input.Email,
			Password: input.Password,
			FullName: input.FullName,
			Phone:    input.Phone,
			Address:  input.Address,
			IDNumber: input.IDNumber,
		})
		if err != nil {
			if errors.Is(err, domainuser.ErrEmailTaken) {
				return common.ProblemDetailsJSON(c, "Email already registered", err, fiber.StatusConflict)
			}
			return common.ProblemDetailsJSON(c, "Couldn't register user", err)
		}
		token, err := svc.GenerateToken(u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Registration successful",
			fiber.Map{"user": u, "token": token})
	}
}

// Login authenticates by email and password and returns a token.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, err := svc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, domainuser.ErrInvalidCredentials) {
				return common.ProblemDetailsJSON(c, "Invalid email or password", nil,
					"Email or password is incorrect", fiber.StatusUnauthorized)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		token, err := svc.GenerateToken(u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful",
			fiber.Map{"user": u, "token": token})
	}
}

// Logout ends the persisted session.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Router /auth/logout [post]
// @Security Bearer
func Logout(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Logout(c.Context()); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't log out", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", nil)
	}
}
