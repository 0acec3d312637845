package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}

	if cfg.Lookup.BaseURL != "https://dog.ceo/api" {
		t.Errorf("Expected dog.ceo base URL, got %s", cfg.Lookup.BaseURL)
	}

	if cfg.Lookup.MaxImages != 5 {
		t.Errorf("Expected max images 5, got %d", cfg.Lookup.MaxImages)
	}

	if cfg.Debounce.Delay != 500*time.Millisecond {
		t.Errorf("Expected debounce delay 500ms, got %v", cfg.Debounce.Delay)
	}

	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	valid := func(mutate func(*Config)) *Config {
		cfg := DefaultConfig()
		mutate(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "missing base url",
			config:  valid(func(c *Config) { c.Lookup.BaseURL = "" }),
			wantErr: true,
			errMsg:  "lookup base_url is required",
		},
		{
			name:    "zero timeout",
			config:  valid(func(c *Config) { c.Lookup.Timeout = 0 }),
			wantErr: true,
			errMsg:  "lookup timeout must be positive",
		},
		{
			name:    "zero max images",
			config:  valid(func(c *Config) { c.Lookup.MaxImages = 0 }),
			wantErr: true,
			errMsg:  "max_images must be greater than 0",
		},
		{
			name:    "negative delay",
			config:  valid(func(c *Config) { c.Debounce.Delay = -time.Millisecond }),
			wantErr: true,
			errMsg:  "debounce delay must be non-negative",
		},
		{
			name:    "zero delay allowed",
			config:  valid(func(c *Config) { c.Debounce.Delay = 0 }),
			wantErr: false,
		},
		{
			name:    "invalid theme",
			config:  valid(func(c *Config) { c.UI.Theme = "neon" }),
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:    "invalid color mode",
			config:  valid(func(c *Config) { c.UI.ColorMode = "invalid" }),
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "invalid output format",
			config:  valid(func(c *Config) { c.Output.DefaultFormat = "invalid" }),
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSampleConfigsMention(t *testing.T) {
	for name, sample := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		if !strings.Contains(sample, "delay: 500ms") {
			t.Errorf("Expected %s sample to set the debounce delay", name)
		}
	}
}
