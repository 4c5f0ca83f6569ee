// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is everything the CLI reads from the environment. Flags override
// the corresponding fields where a command exposes one.
type Config struct {
	// AnalyticsID is the measurement ID injected into every page head.
	// Empty disables the analytics snippet.
	AnalyticsID string `env:"FRESHLY_ANALYTICS_ID"`
	// Bucket is the default S3 bucket for deploys.
	Bucket string `env:"FRESHLY_BUCKET"`
	// Addr is the default listen address for the preview server.
	Addr string `env:"FRESHLY_ADDR" envDefault:":8080"`
	// OutputDir receives the generated site.
	OutputDir string `env:"FRESHLY_OUTPUT_DIR" envDefault:"public"`
	// StaticDir is the source tree of static assets copied into OutputDir.
	StaticDir string `env:"FRESHLY_STATIC_DIR" envDefault:"static"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
