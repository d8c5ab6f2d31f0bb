package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. Settings only
// the server needs are checked by ValidateServer.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("rate_limit.max must be > 0 (got %d)", c.RateLimit.Max)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be > 0 (got %s)", c.RateLimit.Window)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if strings.TrimSpace(c.Local.Path) == "" {
		return fmt.Errorf("local.path must not be empty")
	}

	return nil
}

// ValidateServer checks the settings required to run the API server and the
// database commands.
func (c *Config) ValidateServer() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	switch g.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderAnthropic, ProviderGemini, g.Provider)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", g.Timeout)
	}
	return nil
}
