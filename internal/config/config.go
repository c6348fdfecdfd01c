package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"navjot.dev/internal/content"
	"navjot.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	Settings
	Portfolio *models.Portfolio
}

// Settings are read from the environment
type Settings struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	ContentPath     string        `env:"CONTENT_PATH"`
	PublicDir       string        `env:"PUBLIC_DIR" envDefault:"public"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogDev          bool          `env:"LOG_DEV" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Contact         ContactConfig
}

// ContactConfig holds contact form settings
type ContactConfig struct {
	ResetDelay  time.Duration `env:"CONTACT_RESET_DELAY" envDefault:"3s"`
	RedisAddr   string        `env:"REDIS_ADDR"`
	RedisPrefix string        `env:"REDIS_PREFIX" envDefault:"portfolio:contact:"`
}

// Load reads .env (if present), the environment and the content document
func Load(dotenvPaths ...string) (*Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, path := range dotenvPaths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	var settings Settings
	if err := ParseEnv(&settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	portfolio, err := content.Load(settings.ContentPath)
	if err != nil {
		return nil, err
	}

	return &Config{
		Settings:  settings,
		Portfolio: portfolio,
	}, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks settings that cannot be defaulted
func (s Settings) Validate() error {
	if s.ServerAddr == "" {
		return errors.New("SERVER_ADDR is required")
	}
	if s.Contact.ResetDelay <= 0 {
		return fmt.Errorf("CONTACT_RESET_DELAY must be positive, got %s", s.Contact.ResetDelay)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", s.ShutdownTimeout)
	}
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}
