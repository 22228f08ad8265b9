// Package config holds the runtime configuration for echomart. Values come
// from ECHOMART_* environment variables with defaults suitable for the public
// fake store feed.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "echomart"

// Config is the full runtime configuration.
type Config struct {
	// FeedURL is the product feed endpoint, fetched once per dashboard mount.
	FeedURL string `envconfig:"FEED_URL" default:"https://fakestoreapi.com/products"`

	// FetchTimeout bounds the single feed request. There is no retry.
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`

	// DarkMode selects the dark color theme.
	DarkMode bool `envconfig:"DARK_MODE" default:"false"`

	// LogFile receives zap output when verbose logging is on. The TUI owns
	// stdout, so logs never go there.
	LogFile string `envconfig:"LOG_FILE" default:"echomart.log"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.FeedURL == "" {
		return Config{}, fmt.Errorf("load config: feed URL must not be empty")
	}
	return cfg, nil
}
