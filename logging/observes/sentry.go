package observes

import (
	"github.com/getsentry/sentry-go"
	"github.com/ncobase/dashboard/config"
)

// NewSentry initializes the global Sentry client. It is a no-op when no DSN
// is configured, so Recovery can always report through the current hub.
func NewSentry(c *config.Sentry, name, release string) error {
	// if not exist sentry config, skip initialization
	if c == nil || c.Dsn == "" {
		return nil
	}
	if c.Release != "" {
		release = c.Release
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              c.Dsn,
		AttachStacktrace: true,
		SampleRate:       c.SampleRate,
		TracesSampleRate: c.SampleRate,
		ServerName:       name,
		Release:          release,
		Environment:      c.Environment,
	})
}
