package config

import (
	"time"

	"github.com/spf13/viper"
)

// Sentry config struct
type Sentry struct {
	Dsn         string
	Environment string
	Release     string
	SampleRate  float64
}

// getSentryConfig get sentry config
func getSentryConfig(v *viper.Viper) *Sentry {
	return &Sentry{
		Dsn:         v.GetString("observes.sentry.dsn"),
		Environment: v.GetString("observes.sentry.environment"),
		Release:     v.GetString("observes.sentry.release"),
		SampleRate:  getFloat64OrDefault(v, "observes.sentry.sample_rate", 1.0),
	}
}

// Tracer config struct for OpenTelemetry
type Tracer struct {
	Endpoint     string // OTLP gRPC endpoint
	ServiceName  string
	Environment  string
	SamplingRate float64 // 0.0 to 1.0
	BatchTimeout time.Duration
}

// getTracerConfig get tracer config with defaults
func getTracerConfig(v *viper.Viper) *Tracer {
	return &Tracer{
		Endpoint:     v.GetString("observes.tracer.endpoint"),
		ServiceName:  getStringOrDefault(v, "observes.tracer.service_name", getStringOrDefault(v, "app_name", "dashboard")),
		Environment:  v.GetString("observes.tracer.environment"),
		SamplingRate: getFloat64OrDefault(v, "observes.tracer.sampling_rate", 1.0),
		BatchTimeout: getDurationOrDefault(v, "observes.tracer.batch_timeout", 5*time.Second),
	}
}

// Observes config struct
type Observes struct {
	Sentry *Sentry
	Tracer *Tracer
}

// get Observes config
func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: getSentryConfig(v),
		Tracer: getTracerConfig(v),
	}
}
