package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invectorlabs/bomsort/internal/clock"
	"github.com/invectorlabs/bomsort/internal/config"
	"github.com/invectorlabs/bomsort/internal/engine"
	"github.com/invectorlabs/bomsort/internal/fsops"
	"github.com/invectorlabs/bomsort/internal/hash"
	"github.com/invectorlabs/bomsort/internal/logging"
	"github.com/invectorlabs/bomsort/internal/report"
)

// loadConfig resolves and loads the configuration named by the global flags.
func loadConfig(fs fsops.FS) (*config.Config, string, error) {
	path, err := config.Resolve(fs, configPath, os.Getenv)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(fs, path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

// newEngine creates a new engine with real implementations of all dependencies.
// override, when non-nil, adjusts the loaded configuration before use.
func newEngine(cmd *cobra.Command, override func(*config.Config)) (*engine.Engine, *zap.Logger, error) {
	fs := fsops.NewRealFS()

	cfg, _, err := loadConfig(fs)
	if err != nil {
		return nil, nil, err
	}
	if override != nil {
		override(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", engine.ErrValidation, err)
		}
	}

	logCfg := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if verbose {
		logCfg.Level = "debug"
	}
	if logFormat != "" {
		logCfg.Format = logFormat
	}
	logger, err := logging.New(logCfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	eng := engine.New(fs, hash.NewXXH3Hasher(), &clock.RealClock{}, report.CSVWriter{}, cfg, logger)
	return eng, logger, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
