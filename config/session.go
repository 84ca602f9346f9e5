package config

import (
	"time"

	"github.com/spf13/viper"
)

// Session session config struct
type Session struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	// SweepInterval is how often idle sessions are evicted.
	SweepInterval time.Duration
}

func getSessionConfig(v *viper.Viper) *Session {
	return &Session{
		CookieName:    getStringOrDefault(v, "session.cookie_name", "dashboard_session"),
		TTL:           getDurationOrDefault(v, "session.ttl", 12*time.Hour),
		Secure:        getBoolOrDefault(v, "session.secure", false),
		SweepInterval: getDurationOrDefault(v, "session.sweep_interval", 10*time.Minute),
	}
}
