// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Display  DisplayConfig
	Fixtures FixtureConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for checkout assembly.
type TimeoutConfig struct {
	GlobalAssembly time.Duration `env:"TIMEOUT_GLOBAL_ASSEMBLY" envDefault:"10s"`
	PerSource      time.Duration `env:"TIMEOUT_PER_SOURCE" envDefault:"3s"`
}

// DisplayConfig holds price display preferences. PreferredCurrency is the
// default used when a request does not carry its own preference.
type DisplayConfig struct {
	PreferredCurrency string `env:"PREFERRED_CURRENCY" envDefault:"USD"`
	Locale            string `env:"DISPLAY_LOCALE" envDefault:"en-US"`
}

// FixtureConfig holds the locations of the file-backed source fixtures.
type FixtureConfig struct {
	FlightOffersPath string `env:"FIXTURE_FLIGHT_OFFERS" envDefault:"docs/fixtures/flight_offers.json"`
	HotelOffersPath  string `env:"FIXTURE_HOTEL_OFFERS" envDefault:"docs/fixtures/hotel_offers.json"`
	RatingsPath      string `env:"FIXTURE_RATINGS" envDefault:"docs/fixtures/hotel_ratings.json"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.GlobalAssembly <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_ASSEMBLY must be positive")
	}
	if cfg.Timeouts.PerSource <= 0 {
		return fmt.Errorf("TIMEOUT_PER_SOURCE must be positive")
	}

	// Validate per-source timeout is less than global timeout
	if cfg.Timeouts.PerSource >= cfg.Timeouts.GlobalAssembly {
		return fmt.Errorf("TIMEOUT_PER_SOURCE (%s) should be less than TIMEOUT_GLOBAL_ASSEMBLY (%s)",
			cfg.Timeouts.PerSource, cfg.Timeouts.GlobalAssembly)
	}

	// Validate currency code shape
	if len(cfg.Display.PreferredCurrency) != 3 {
		return fmt.Errorf("PREFERRED_CURRENCY must be a 3-letter ISO 4217 code, got %q", cfg.Display.PreferredCurrency)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
