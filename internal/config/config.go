package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	DatabaseURL    string
	DeviceID       string
	DefaultLocale  language.Tag
	TimePattern    string
	StaleSyncAfter time.Duration
	Environment    string

	// Optional Discord alert delivery; disabled when the token is
	// empty.
	DiscordToken   string
	AlertChannelID string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment
		// (Docker, CI, etc.).
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DeviceID:       os.Getenv("DEVICE_ID"),
		TimePattern:    os.Getenv("TIME_PATTERN"),
		Environment:    os.Getenv("ENVIRONMENT"),
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		AlertChannelID: os.Getenv("ALERT_CHANNEL_ID"),
	}

	locale := os.Getenv("DEFAULT_LOCALE")
	if locale == "" {
		locale = "en"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("config: DEFAULT_LOCALE %q: %w", locale, err)
	}
	cfg.DefaultLocale = tag

	staleAfter := os.Getenv("STALE_SYNC_AFTER")
	if staleAfter == "" {
		staleAfter = "2h"
	}
	cfg.StaleSyncAfter, err = time.ParseDuration(staleAfter)
	if err != nil {
		return nil, fmt.Errorf("config: STALE_SYNC_AFTER %q: %w", staleAfter, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Strict reports whether developer errors (missing keys, arity
// mismatches) should hard-fail. Production degrades gracefully
// instead.
func (c *Config) Strict() bool {
	return c.Environment != "production"
}

// validate applies all rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DeviceID) == "" {
		c.DeviceID = "dev-bracelet"
	}

	if strings.TrimSpace(c.Environment) == "" {
		c.Environment = "development"
	}

	if strings.TrimSpace(c.TimePattern) == "" {
		c.TimePattern = "h:mma"
	}

	if c.StaleSyncAfter <= 0 {
		return fmt.Errorf("config: STALE_SYNC_AFTER must be positive")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/cycletext?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.DiscordToken != "" {
		if strings.TrimSpace(c.AlertChannelID) == "" {
			return fmt.Errorf("config: ALERT_CHANNEL_ID is required when DISCORD_TOKEN is set")
		}
		for _, r := range c.AlertChannelID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: ALERT_CHANNEL_ID must be a Discord channel ID (digits only)")
			}
		}
	}

	return nil
}
