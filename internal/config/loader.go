package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.breedview.yaml",               // Project-specific config (highest priority)
	"~/.config/breedview/config.yaml", // User config
	"/etc/breedview/config.yaml",      // System config (lowest priority)
}

// EnvFiles are dotenv files read before environment overrides are applied.
// Variables already present in the environment win.
var EnvFiles = []string{".env"}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFiles    []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFiles:    EnvFiles,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables, including .env
// 3. ./.breedview.yaml
// 4. ~/.config/breedview/config.yaml
// 5. /etc/breedview/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := l.loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	// A zero delay is a valid setting, so presence of the key decides.
	var explicit struct {
		Debounce struct {
			Delay *time.Duration `yaml:"delay"`
		} `yaml:"debounce"`
	}
	if err := yaml.Unmarshal(data, &explicit); err == nil && explicit.Debounce.Delay != nil {
		config.Debounce.Delay = *explicit.Debounce.Delay
	}

	return nil
}

func (l *Loader) loadEnvFiles() error {
	for _, path := range l.envFiles {
		if !fileExists(path) {
			continue
		}
		// godotenv.Load never overwrites variables that are already set
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Lookup Config
		"BREEDVIEW_LOOKUP_BASE_URL":   func(v string) error { config.Lookup.BaseURL = v; return nil },
		"BREEDVIEW_LOOKUP_TIMEOUT":    func(v string) error { return parseDuration(v, &config.Lookup.Timeout) },
		"BREEDVIEW_LOOKUP_MAX_IMAGES": func(v string) error { return parseInt(v, &config.Lookup.MaxImages) },
		"BREEDVIEW_LOOKUP_USER_AGENT": func(v string) error { config.Lookup.UserAgent = v; return nil },

		// Debounce Config
		"BREEDVIEW_DEBOUNCE_DELAY": func(v string) error { return parseDuration(v, &config.Debounce.Delay) },

		// UI Config
		"BREEDVIEW_UI_THEME":       func(v string) error { config.UI.Theme = v; return nil },
		"BREEDVIEW_UI_COLOR_MODE":  func(v string) error { config.UI.ColorMode = v; return nil },
		"BREEDVIEW_UI_PLACEHOLDER": func(v string) error { config.UI.Placeholder = v; return nil },
		"BREEDVIEW_UI_AUTO_RELOAD": func(v string) error { return parseBool(v, &config.UI.AutoReload) },
		"BREEDVIEW_UI_NO_EMOJI":    func(v string) error { return parseBool(v, &config.UI.NoEmoji) },

		// Output Config
		"BREEDVIEW_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },

		// Log Config
		"BREEDVIEW_LOG_FILE":    func(v string) error { config.Log.File = v; return nil },
		"BREEDVIEW_LOG_VERBOSE": func(v string) error { return parseBool(v, &config.Log.Verbose) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return errors.New("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return errors.New("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/etc/passwd") ||
		strings.HasPrefix(absPath, "/etc/shadow") ||
		strings.HasPrefix(absPath, "/proc/") ||
		strings.HasPrefix(absPath, "/sys/") {
		return errors.New("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config
// Only non-zero values from source overwrite destination
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeLookupConfig(&dst.Lookup, &src.Lookup)
	if src.Debounce.Delay != 0 {
		dst.Debounce.Delay = src.Debounce.Delay
	}
	mergeUIConfig(&dst.UI, &src.UI)
	if src.Output.DefaultFormat != "" {
		dst.Output.DefaultFormat = src.Output.DefaultFormat
	}
	if src.Log.File != "" {
		dst.Log.File = src.Log.File
	}
	mergeIfSet(&dst.Log.Verbose, src.Log.Verbose)
}

func mergeLookupConfig(dst, src *LookupConfig) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.MaxImages != 0 {
		dst.MaxImages = src.MaxImages
	}
	if src.UserAgent != "" {
		dst.UserAgent = src.UserAgent
	}
}

func mergeUIConfig(dst, src *UIConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.Placeholder != "" {
		dst.Placeholder = src.Placeholder
	}
	mergeIfSet(&dst.AutoReload, src.AutoReload)
	mergeIfSet(&dst.NoEmoji, src.NoEmoji)
}

// mergeIfSet only turns booleans on; a zero value in a file cannot be told
// apart from an absent key. Env overrides can still switch them off.
func mergeIfSet(dst *bool, src bool) {
	if src {
		*dst = true
	}
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
