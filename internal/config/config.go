// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LINE Bot Configuration
	LineChannelToken  string
	LineChannelSecret string

	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Timetable source
	TimetablePath string // path to the timetable workbook

	// Observability
	BetterStackToken    string // log shipping (empty = disabled)
	BetterStackEndpoint string
	SentryToken         string // error tracking (empty = disabled)
	SentryHost          string
	SentryEnvironment   string

	// Bot Configuration (embedded)
	Bot BotConfig
}

// BotConfig holds webhook and LINE API constraints.
type BotConfig struct {
	WebhookTimeout      time.Duration // budget for processing one webhook batch
	ReplyRateRPS        float64       // global reply API rate limit
	MaxMessagesPerReply int           // LINE API limit: 5
	MaxEventsPerWebhook int
	MinReplyTokenLength int
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LineChannelToken:  getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
		LineChannelSecret: getEnv("LINE_CHANNEL_SECRET", ""),

		Port:            getEnv("PORT", "10000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		TimetablePath: getEnv("TIMETABLE_PATH", "TimeTable.xlsx"),

		BetterStackToken:    getEnv("BETTERSTACK_TOKEN", ""),
		BetterStackEndpoint: getEnv("BETTERSTACK_ENDPOINT", ""),
		SentryToken:         getEnv("SENTRY_TOKEN", ""),
		SentryHost:          getEnv("SENTRY_HOST", "errors.betterstack.com"),
		SentryEnvironment:   getEnv("SENTRY_ENVIRONMENT", "production"),

		Bot: BotConfig{
			WebhookTimeout:      getDurationEnv("WEBHOOK_TIMEOUT", 60*time.Second),
			ReplyRateRPS:        getFloatEnv("REPLY_RATE_RPS", 100.0),
			MaxMessagesPerReply: 5,
			MaxEventsPerWebhook: getIntEnv("MAX_EVENTS_PER_WEBHOOK", 100),
			MinReplyTokenLength: 10,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks required configuration. A missing LINE credential is
// the one condition that must abort startup before serving requests.
func (c *Config) Validate() error {
	var errs []error

	if c.LineChannelToken == "" {
		errs = append(errs, errors.New("LINE_CHANNEL_ACCESS_TOKEN is required"))
	}
	if c.LineChannelSecret == "" {
		errs = append(errs, errors.New("LINE_CHANNEL_SECRET is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.TimetablePath == "" {
		errs = append(errs, errors.New("TIMETABLE_PATH is required"))
	}
	if c.Bot.WebhookTimeout <= 0 {
		errs = append(errs, fmt.Errorf("WEBHOOK_TIMEOUT must be positive, got %v", c.Bot.WebhookTimeout))
	}
	if c.Bot.ReplyRateRPS <= 0 {
		errs = append(errs, fmt.Errorf("REPLY_RATE_RPS must be positive, got %v", c.Bot.ReplyRateRPS))
	}
	if c.Bot.MaxEventsPerWebhook <= 0 {
		errs = append(errs, fmt.Errorf("MAX_EVENTS_PER_WEBHOOK must be positive, got %d", c.Bot.MaxEventsPerWebhook))
	}

	return errors.Join(errs...)
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
