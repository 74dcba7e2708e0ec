package config

import (
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/shared/env"
)

type Config struct {
	Port      string
	LogLevel  string
	ModelPath string
}

// Load reads the service configuration from the environment.
func Load() *Config {
	env.Load()

	return &Config{
		Port:      env.Get("PORT", "8000"),
		LogLevel:  env.Get("LOG_LEVEL", "info"),
		ModelPath: env.Get("MODEL_PATH", "xgb_attrition_pipeline.model"),
	}
}
