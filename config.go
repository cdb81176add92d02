package search

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings needed to build a Client.
// Environment variables are parsed from the SEARCH_CLIENT_ prefix, e.g.
// SEARCH_CLIENT_SERVER_URL, SEARCH_CLIENT_CHARSET.
type Config struct {
	ServerURL string        `envconfig:"SERVER_URL" validate:"required,url"`
	Charset   string        `envconfig:"CHARSET" default:"UTF-8" validate:"required"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SEARCH_CLIENT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that cfg can be turned into a Client.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid search client config: %w", err)
	}
	return nil
}

// NewFromConfig builds a Client from cfg. opts are applied after the options
// derived from cfg, so they take precedence.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{
		WithHTTPTimeout(cfg.Timeout),
		WithCharset(cfg.Charset),
		WithDebugLogging(cfg.Debug),
	}
	return New(cfg.ServerURL, append(base, opts...)...)
}
