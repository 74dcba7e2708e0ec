package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file if one is present. Missing files are not an
// error; in deployed environments variables come from the process env.
func Load() {
	_ = godotenv.Load()
}

func Get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
