package breed

import (
	"net/url"
	"time"
)

// DefaultBaseURL is the public dog image API.
const DefaultBaseURL = "https://dog.ceo/api"

// Config holds lookup client settings
type Config struct {
	// BaseURL is the API root, without a trailing /breed
	BaseURL string `json:"base_url"`

	// Timeout for HTTP requests
	Timeout time.Duration `json:"timeout"`

	// UserAgent sent with every request
	UserAgent string `json:"user_agent"`
}

// DefaultConfig returns a default client configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   10 * time.Second,
		UserAgent: "breedview",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return NewConfigurationError("base_url", "base URL is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return NewConfigurationError("base_url", "invalid base URL: "+err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewConfigurationError("base_url", "base URL must use http or https")
	}

	if c.Timeout <= 0 {
		return NewConfigurationError("timeout", "timeout must be positive")
	}

	return nil
}
