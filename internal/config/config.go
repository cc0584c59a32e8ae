package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppEnv string `validate:"oneof=dev prod"`

	// LogLevelName is the raw LOG_LEVEL value; LogLevel is derived from it
	// once validation passes.
	LogLevelName string     `validate:"oneof=debug info warn warning error"`
	LogLevel     slog.Level `validate:"-"`

	// DataFile is the CSV file read when no path is passed on the command line.
	DataFile string `validate:"required"`

	// Report selects the rendered summaries: overview, daily or both.
	Report string `validate:"oneof=overview daily both"`
}

var validate = validator.New()

// Load reads configuration from the environment (and an optional .env file)
// with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &AppConfig{
		AppEnv:       getenvDefault("APP_ENV", "dev"),
		LogLevelName: strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		DataFile:     getenvDefault("WEATHER_DATA_FILE", "data/forecast_5days_a.csv"),
		Report:       strings.ToLower(getenvDefault("WEATHER_REPORT", "both")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.LogLevel = logLevels[cfg.LogLevelName]
	return cfg, nil
}

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// getenvDefault returns the trimmed value of key, or def when it is unset or blank.
func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
