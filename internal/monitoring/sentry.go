// Package monitoring wires optional Sentry error reporting. It is a
// no-op unless a DSN is configured.
package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

var enabled bool

// Init starts the Sentry client. An empty DSN disables reporting.
func Init(dsn string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return fmt.Errorf("initializing sentry: %w", err)
	}
	enabled = true
	return nil
}

// CaptureError reports an error when monitoring is enabled.
func CaptureError(err error) {
	if enabled && err != nil {
		sentry.CaptureException(err)
	}
}

// Flush drains pending events before process exit.
func Flush() {
	if enabled {
		sentry.Flush(2 * time.Second)
	}
}
