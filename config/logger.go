package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Logger logger config struct
type Logger struct {
	Level         int
	Format        string
	Output        string
	OutputFile    string
	IndexName     string
	Elasticsearch *Elasticsearch
}

// Elasticsearch log shipping config struct
type Elasticsearch struct {
	Addresses []string
	Username  string
	Password  string
}

func getLoggerConfig(v *viper.Viper) *Logger {
	indexName := strings.ToLower(getStringOrDefault(v, "app_name", "dashboard") + "-log")
	if v.GetString("logger.index_name") != "" {
		indexName = v.GetString("logger.index_name")
	}
	return &Logger{
		Level:      getIntOrDefault(v, "logger.level", 4),
		Format:     getStringOrDefault(v, "logger.format", "text"),
		Output:     getStringOrDefault(v, "logger.output", "stdout"),
		OutputFile: v.GetString("logger.output_file"),
		IndexName:  indexName,
		Elasticsearch: &Elasticsearch{
			Addresses: v.GetStringSlice("logger.elasticsearch.addresses"),
			Username:  v.GetString("logger.elasticsearch.username"),
			Password:  v.GetString("logger.elasticsearch.password"),
		},
	}
}
