// Package config loads the dashboard configuration with Viper.
//
// Values come from an optional YAML file and the process environment; the
// environment wins. Nested keys map to upper-case variables with dots replaced
// by underscores, so server.port is read from SERVER_PORT.
//
// Two values are required:
//
//	backend_domain:   https://api.proza.example    # BACKEND_DOMAIN
//	dashboard_domain: https://admin.proza.example  # DASHBOARD_DOMAIN
//
// Everything else has a default:
//
//	server:
//	  host: 0.0.0.0
//	  port: 3000
//	  run_mode: release
//	graphql:
//	  endpoint: https://api.proza.example/graphql
//	  timeout: 10s
//	  breaker:
//	    enabled: false
//	display:
//	  time_zone: Local
//	  time_layout: "1/2/2006, 3:04:05 PM"
//	session:
//	  cookie_name: dashboard_session
//	  ttl: 12h
//	data:
//	  redis:
//	    addr: ""            # empty keeps the query cache in memory
//	  cache:
//	    ttl: 30m
//	logger:
//	  level: 4
//	  format: text
//	  output: stdout
//	observes:
//	  sentry:
//	    dsn: ""
//	  tracer:
//	    endpoint: ""
//
// The returned *Config is treated as immutable and passed explicitly to the
// components that need it.
package config
