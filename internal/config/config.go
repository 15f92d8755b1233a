package config

import "os"

// Config carries all environment-supplied settings. It is loaded once at
// startup and handed to components through their constructors; nothing else
// in the codebase reads the environment directly.
type Config struct {
	AppPort string

	DatabaseURL string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	SessionSecret string
}

func Load() Config {
	cfg := Config{
		AppPort: os.Getenv("APP_PORT"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
