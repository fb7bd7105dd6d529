package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds the process configuration, parsed from environment variables.
type config struct {
	// HTTPAddr is the listen address for the API and visualizer UI.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	// ServiceName labels telemetry exported by this process.
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"campo-magnetico-api"`
	// OTLPLogs tees zap output to the OTLP log endpoint when true.
	OTLPLogs bool `env:"OTLP_LOGS_ENABLED" envDefault:"false"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
