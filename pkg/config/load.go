package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When envFilePath entries are
// given, the first loadable .env file is overlaid first; a missing file is a
// debug-level event, not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("env file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		break
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("config loaded",
		"env", cfg.Env,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage_dir", cfg.Storage.Dir,
		"jwt_secret", maskValue(cfg.Auth.Jwt.Secret),
		"jwt_expiry", cfg.Auth.Jwt.Expiry,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
