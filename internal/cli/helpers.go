package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/routeconf/internal/config"
	"github.com/NikitaCOEUR/routeconf/internal/logger"
)

// environment holds what every command needs
type environment struct {
	config *config.Config
	log    *logger.Logger
}

// loadEnvironment resolves and loads the config, then builds the logger.
// A non-empty logLevel overrides the configured level.
func loadEnvironment(configPath, logLevel string, logOutput io.Writer) (*environment, error) {
	cfg, path, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return &environment{
		config: cfg,
		log:    newLogger(cfg, path, logLevel, logOutput),
	}, nil
}

// loadConfig loads the active config file and reports its path
func loadConfig(configPath string) (*config.Config, string, error) {
	path := config.Find(configPath)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func newLogger(cfg *config.Config, path, logLevel string, logOutput io.Writer) *logger.Logger {
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}

	log := logger.NewWithOptions(logger.Options{
		Level:  logLevel,
		Format: cfg.LogFormat,
		Output: logOutput,
	})
	log.Debug().Str("config", path).Str("level", logLevel).Msg("Configuration loaded")
	return log
}

// output returns w, or stdout when w is nil
func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// openLogFile opens the log file for appending, creating it if needed
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
