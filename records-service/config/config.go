package config

import (
	"fmt"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/shared/env"
)

type Config struct {
	Port        string
	LogLevel    string
	SupabaseURL string
	SupabaseKey string
}

// Load reads the service configuration from the environment.
func Load() (*Config, error) {
	env.Load()

	cfg := &Config{
		Port:        env.Get("PORT", "8001"),
		LogLevel:    env.Get("LOG_LEVEL", "info"),
		SupabaseURL: env.Get("SUPABASE_URL", ""),
		SupabaseKey: env.Get("SUPABASE_KEY", ""),
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_KEY is required")
	}

	return cfg, nil
}
