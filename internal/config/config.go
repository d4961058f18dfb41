package config

import (
	"os"

	"github.com/joho/godotenv"
)

// defaultPort is used when PORT is unset, matching common PaaS conventions.
const defaultPort = "8080"

// Config holds runtime configuration. Every field has a default; nothing in
// this service requires an environment variable to be present.
type Config struct {
	Port string // HTTP port to listen on
}

// Load reads configuration from the environment, first loading a .env file
// if one exists in the working directory. A missing .env file is not an
// error; explicit environment variables always win because godotenv never
// overrides values that are already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", defaultPort),
	}
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
