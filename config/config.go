package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the dashboard configuration.
//
// It is built once at start-up by LoadConfig and handed to every
// collaborator explicitly; nothing reads it through a package global.
type Config struct {
	AppName         string `validate:"required"`
	RunMode         string `validate:"omitempty,oneof=debug release test"`
	Host            string
	Port            int    `validate:"gte=0,lte=65535"`
	BackendDomain   string `validate:"required,url"`
	DashboardDomain string `validate:"required,url"`
	GraphQL         *GraphQL
	Display         *Display
	Session         *Session
	Logger          *Logger
	Data            *Data
	Observes        *Observes
	Viper           *viper.Viper `validate:"-"`
}

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig loads the configuration from the file, overlaid by environment variables.
//
// The file is optional: when configPath is empty and no config.yaml is found in the
// usual places, the configuration comes from the environment alone.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/dashboard")
		v.AddConfigPath("$HOME/.dashboard")
		v.AddConfigPath(".")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		AppName:         getStringOrDefault(v, "app_name", "dashboard"),
		RunMode:         getStringOrDefault(v, "server.run_mode", "release"),
		Host:            getStringOrDefault(v, "server.host", "0.0.0.0"),
		Port:            getIntOrDefault(v, "server.port", 3000),
		BackendDomain:   strings.TrimSuffix(v.GetString("backend_domain"), "/"),
		DashboardDomain: v.GetString("dashboard_domain"),
		Display:         getDisplayConfig(v),
		Session:         getSessionConfig(v),
		Logger:          getLoggerConfig(v),
		Data:            getDataConfig(v),
		Observes:        getObservesConfig(v),
		Viper:           v,
	}
	cfg.GraphQL = getGraphQLConfig(v, cfg.BackendDomain)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the required values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
