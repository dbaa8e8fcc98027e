// Package sentry wraps Sentry SDK initialization for Better Stack
// error tracking. Disabled entirely when no token is configured.
package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds error-tracking configuration.
type Config struct {
	// Token is the Better Stack Errors application token.
	Token string

	// Host is the ingesting host (e.g. "errors.betterstack.com").
	Host string

	// Environment identifies the deployment environment.
	Environment string

	// Release identifies the application release version.
	Release string
}

// Initialize sets up the Sentry SDK. A missing token disables error
// tracking and returns nil.
func Initialize(cfg Config) error {
	if cfg.Token == "" {
		return nil
	}
	if cfg.Host == "" {
		return fmt.Errorf("sentry host is required when token is provided")
	}

	// Better Stack DSN shape: the project ID (/1) is required by the
	// SDK but ignored by the backend.
	dsn := fmt.Sprintf("https://%s@%s/1", cfg.Token, cfg.Host)

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		AttachStacktrace: true,
	})
}

// Flush waits for buffered events to be sent. Returns true when all
// events were delivered within the timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
