package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Lookup   LookupConfig   `yaml:"lookup" json:"lookup"`
	Debounce DebounceConfig `yaml:"debounce" json:"debounce"`
	UI       UIConfig       `yaml:"ui" json:"ui"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	Log      LogConfig      `yaml:"log" json:"log"`
}

// LookupConfig configures the breed image service
type LookupConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url"`     // API root
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`       // request timeout
	MaxImages int           `yaml:"max_images" json:"max_images"` // locators kept per lookup
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// DebounceConfig configures input coalescing
type DebounceConfig struct {
	Delay time.Duration `yaml:"delay" json:"delay"` // quiet period before a lookup
}

// UIConfig configures the terminal interface
type UIConfig struct {
	Theme       string `yaml:"theme" json:"theme"`             // default|high-contrast|minimal
	ColorMode   string `yaml:"color_mode" json:"color_mode"`   // auto|always|never
	Placeholder string `yaml:"placeholder" json:"placeholder"` // input placeholder text
	AutoReload  bool   `yaml:"auto_reload" json:"auto_reload"` // re-apply config on file change
	NoEmoji     bool   `yaml:"no_emoji" json:"no_emoji"`
}

// OutputConfig configures non-interactive output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	File    string `yaml:"file" json:"file"` // log destination while the TUI runs
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// DefaultPlaceholder lists a few breeds the service knows.
const DefaultPlaceholder = "Type a dog breed (bulldog, husky, beagle, pug, terrier, poodle, akita)"

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Lookup: LookupConfig{
			BaseURL:   "https://dog.ceo/api",
			Timeout:   10 * time.Second,
			MaxImages: 5,
			UserAgent: "breedview",
		},
		Debounce: DebounceConfig{
			Delay: 500 * time.Millisecond,
		},
		UI: UIConfig{
			Theme:       "default",
			ColorMode:   "auto",
			Placeholder: DefaultPlaceholder,
			AutoReload:  false,
			NoEmoji:     false,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
		},
		Log: LogConfig{
			File:    "",
			Verbose: false,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLookupConfig(); err != nil {
		return err
	}
	if err := c.validateDebounceConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLookupConfig() error {
	if c.Lookup.BaseURL == "" {
		return fmt.Errorf("lookup base_url is required")
	}
	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("lookup timeout must be positive")
	}
	if c.Lookup.MaxImages < 1 {
		return fmt.Errorf("max_images must be greater than 0")
	}
	return nil
}

func (c *Config) validateDebounceConfig() error {
	if c.Debounce.Delay < 0 {
		return fmt.Errorf("debounce delay must be non-negative")
	}
	return nil
}

func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	if c.UI.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.UI.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.UI.ColorMode)
		}
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	return nil
}
