// Package app wires the services to their dependencies.
package app

import (
	"log/slog"

	"github.com/dolarasia/dolarasia/pkg/config"
	"github.com/dolarasia/dolarasia/pkg/repository"
	"github.com/dolarasia/dolarasia/pkg/service/auth"
	"github.com/dolarasia/dolarasia/pkg/service/exchange"
	"github.com/dolarasia/dolarasia/pkg/service/rates"
	"github.com/dolarasia/dolarasia/pkg/session"
	"github.com/dolarasia/dolarasia/pkg/storage"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Store        storage.Store
	Users        repository.User
	Transactions repository.Transaction
	Sessions     *session.Holder
	Logger       *slog.Logger
}

// App holds the configured services.
type App struct {
	Deps            *Deps
	Config          *config.App
	AuthService     *auth.Service
	RateService     *rates.Service
	ExchangeService *exchange.Service
}

// New builds the service graph from deps and cfg.
func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.AuthService = auth.New(deps.Users, deps.Sessions, cfg.Auth.Jwt, deps.Logger)
	app.RateService = rates.New(deps.Logger)
	app.ExchangeService = exchange.New(
		app.RateService,
		deps.Transactions,
		deps.Users,
		deps.Logger,
	)
	return app
}
