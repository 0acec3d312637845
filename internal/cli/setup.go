package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/breedview/internal/breed"
	"github.com/yildizm/breedview/internal/config"
	"github.com/yildizm/breedview/internal/emoji"
	"github.com/yildizm/breedview/internal/logger"
	"github.com/yildizm/breedview/internal/ui"
)

// loadConfig loads the effective configuration and folds in global flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if verbose {
		cfg.Log.Verbose = true
	}
	if noEmoji {
		cfg.UI.NoEmoji = true
	}
	emoji.SetEmojiDisabled(cfg.UI.NoEmoji)
	if logFile != "" {
		cfg.Log.File = logFile
	}

	return cfg, nil
}

func newLogger(cfg *config.Config, component string) *logger.Logger {
	return logger.NewWithCallback(component, func() bool {
		return isVerbose() || cfg.Log.Verbose
	})
}

func newBreedClient(cfg *config.Config, log *logger.Logger) (*breed.Client, error) {
	client, err := breed.NewClient(&breed.Config{
		BaseURL:   cfg.Lookup.BaseURL,
		Timeout:   cfg.Lookup.Timeout,
		UserAgent: cfg.Lookup.UserAgent,
	}, breed.WithLogger(log.WithComponent("breed")))
	if breed.IsConfigurationError(err) {
		return nil, fmt.Errorf("invalid lookup settings (check the lookup section of your config): %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup client: %w", err)
	}
	return client, nil
}

// resolveOutputFormat prefers an explicit --output over the config default
func resolveOutputFormat(cmd *cobra.Command, cfg *config.Config) string {
	if flag := cmd.Flag("output"); flag != nil && flag.Changed {
		return outputFmt
	}
	if cfg.Output.DefaultFormat != "" {
		return cfg.Output.DefaultFormat
	}
	return outputFmt
}

// colorEnabled combines --no-color with the configured color mode
func colorEnabled(cfg *config.Config) bool {
	return isColorEnabled() && !ui.IsColorDisabled(cfg.UI.ColorMode)
}

// redirectLogs keeps log lines off the screen while the TUI is running.
// The returned func restores the previous output.
func redirectLogs(cfg *config.Config) (func(), error) {
	path := cfg.Log.File
	if path == "" && cfg.Log.Verbose {
		path = filepath.Join(os.TempDir(), "breedview.log")
	}

	if path == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	closeLog, err := logger.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return func() { _ = closeLog() }, nil
}
