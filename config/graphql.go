package config

import (
	"time"

	"github.com/spf13/viper"
)

// GraphQL backend client config struct
type GraphQL struct {
	Endpoint string
	Timeout  time.Duration
	Breaker  *Breaker
}

// Breaker circuit breaker config struct
type Breaker struct {
	Enabled     bool
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// Failures is the number of consecutive failures that opens the breaker.
	Failures uint32
}

// getGraphQLConfig returns the graphql config.
// The endpoint defaults to the backend's /graphql path.
func getGraphQLConfig(v *viper.Viper, backendDomain string) *GraphQL {
	return &GraphQL{
		Endpoint: getStringOrDefault(v, "graphql.endpoint", backendDomain+"/graphql"),
		Timeout:  getDurationOrDefault(v, "graphql.timeout", 10*time.Second),
		Breaker: &Breaker{
			Enabled:     getBoolOrDefault(v, "graphql.breaker.enabled", false),
			MaxRequests: getUint32OrDefault(v, "graphql.breaker.max_requests", 1),
			Interval:    getDurationOrDefault(v, "graphql.breaker.interval", time.Minute),
			Timeout:     getDurationOrDefault(v, "graphql.breaker.timeout", 30*time.Second),
			Failures:    getUint32OrDefault(v, "graphql.breaker.failures", 5),
		},
	}
}
