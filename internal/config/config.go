// Package config loads engine configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
)

// Config holds the runtime configuration for the VN stage engine.
type Config struct {
	// RedisAddr is the endpoint of the Redis instance backing the sprite
	// inventory cache and the character roster.
	RedisAddr string `env:"VN_REDIS_ADDR" envDefault:"localhost:6379"`

	// AssetRoot is the directory holding per-character sprite folders
	// (<AssetRoot>/<characterID>/<emotion>.png).
	AssetRoot string `env:"VN_ASSET_ROOT" envDefault:"assets/sprites"`

	// AssetBaseURL, when set, is used to materialize sprite URLs instead of
	// file:// paths.
	AssetBaseURL string `env:"VN_ASSET_BASE_URL"`

	// PlaceholderURL is the built-in fallback portrait, used only when a
	// character has neither sprites nor a static portrait image.
	PlaceholderURL string `env:"VN_PLACEHOLDER_URL" envDefault:"assets/placeholder.png"`

	// DefaultEmotion is the class-default emotion tag for solo and group
	// members alike.
	DefaultEmotion string `env:"VN_DEFAULT_EMOTION" envDefault:"neutral"`

	// FadeDwell is the fixed duration of each fade phase.
	FadeDwell time.Duration `env:"VN_FADE_DWELL" envDefault:"300ms"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}
	if c.AssetRoot == "" {
		vb.RequiredField("AssetRoot")
	}
	if c.PlaceholderURL == "" {
		vb.RequiredField("PlaceholderURL")
	}
	if c.DefaultEmotion == "" {
		vb.RequiredField("DefaultEmotion")
	}
	if c.FadeDwell <= 0 {
		vb.InvalidField("FadeDwell", "must be positive")
	}

	return vb.Build()
}
