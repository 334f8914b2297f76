// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// SMTP holds the outgoing mail settings for the contact form.
type SMTP struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"TO_EMAIL"`
}

// Configured reports whether credentials and a recipient are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != "" && s.To != ""
}

// Admin holds the dashboard credentials. An empty TokenSecret makes the
// server generate one at startup, which logs every admin out on restart.
type Admin struct {
	Username    string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password    string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	TokenSecret string        `env:"ADMIN_TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"24h"`
}

// UsingDefaults reports whether the development credentials are in use.
func (a Admin) UsingDefaults() bool {
	return a.Username == "admin" || a.Password == "admin123"
}

// Config is the full server configuration.
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	GinMode          string        `env:"GIN_MODE" envDefault:"debug"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	StarCount        int           `env:"STAR_COUNT" envDefault:"150"`
	OrbitSessionTTL  time.Duration `env:"ORBIT_SESSION_TTL" envDefault:"30m"`
	OrbitMaxSessions int           `env:"ORBIT_MAX_SESSIONS" envDefault:"10000"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	VisitorSalt      string        `env:"VISITOR_SALT"`
	SMTP             SMTP
	Admin            Admin
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	if cfg.OrbitMaxSessions < 1 {
		return Config{}, fmt.Errorf("ORBIT_MAX_SESSIONS must be positive, got %d", cfg.OrbitMaxSessions)
	}
	if cfg.StarCount < 0 {
		return Config{}, fmt.Errorf("STAR_COUNT must not be negative, got %d", cfg.StarCount)
	}
	return cfg, nil
}
