package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// OpenRouter (OpenAI-compatible) settings for the career analyzer.
	// An empty API key is allowed: every LLM call has a deterministic
	// local fallback, so the service stays usable offline.
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "anthropic/claude-3.5-sonnet"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "NextObjective"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
