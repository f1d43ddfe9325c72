// Package config loads application settings from the environment, with an
// optional .env file overlay.
package config

import "time"

// Jwt configures token signing for the HTTP surface.
type Jwt struct {
	Secret string        `envconfig:"SECRET" default:"dolarasia-demo-secret"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// Auth groups authentication settings.
type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

// Storage points at the data directory backing the key-value store.
type Storage struct {
	Dir string `envconfig:"DIR" default:"./data"`
}

// RateLimit bounds request rates on the HTTP surface.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Log configures the structured logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[dolarasia]"`
}

// Server configures the listener.
type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// App is the root configuration.
type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Storage   *Storage   `envconfig:"STORAGE"`
	Auth      *Auth      `envconfig:"AUTH"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
