package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dolarasia/dolarasia/pkg/config"
	"github.com/dolarasia/dolarasia/pkg/repository/transaction"
	"github.com/dolarasia/dolarasia/pkg/repository/user"
	"github.com/dolarasia/dolarasia/pkg/service/auth"
	"github.com/dolarasia/dolarasia/pkg/session"
	"github.com/dolarasia/dolarasia/pkg/storage"
)

// SetupLogger builds the styled slog logger and installs it as the default.
func SetupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("❌").
		Bold(true).
		Padding(0, 1).
		Foreground(errorTxtColor)
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("ℹ️").
		Bold(true).
		Padding(0, 1).
		Foreground(infoTxtColor)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("⚠️").
		Bold(true).
		Padding(0, 1).
		Foreground(warnTxtColor)
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("🐛").
		Bold(true).
		Padding(0, 1).
		Foreground(debugTxtColor)

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}

// InitDeps opens the data directory, builds the repositories and the session
// holder, and seeds the admin account.
func InitDeps(ctx context.Context, cfg *config.App, logger *slog.Logger) (*Deps, error) {
	store, err := storage.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage dir %q: %w", cfg.Storage.Dir, err)
	}

	users := user.New(store, logger)
	transactions := transaction.New(store, logger)

	sessions, err := session.NewHolder(ctx, store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	authSvc := auth.New(users, sessions, cfg.Auth.Jwt, logger)
	if err := authSvc.EnsureAdmin(ctx); err != nil {
		return nil, err
	}

	return &Deps{
		Store:        store,
		Users:        users,
		Transactions: transactions,
		Sessions:     sessions,
		Logger:       logger,
	}, nil
}
