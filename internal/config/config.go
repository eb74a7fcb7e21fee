package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI (quiz + video features). Empty key = fallback mode.
	GeminiAPIKey         string
	GeminiModel          string
	GeminiConcurrentReqs int

	// Groq (Bobby chatbot, OpenAI-compatible API). Empty key = fallback mode.
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	// Conversation document store. Empty URL = in-memory only.
	RedisURL string

	// Result cache / transcript registry. Empty URL = caching disabled.
	DatabaseURL string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		GroqAPIKey:           getEnvOrDefault("GROQ_API_KEY", ""),
		GroqModel:            getEnvOrDefault("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL:          getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		RedisURL:             getEnvOrDefault("REDIS_URL", ""),
		DatabaseURL:          getEnvOrDefault("DATABASE_URL", ""),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "*"),
	}

	// Placeholder keys from .env templates count as unset
	if cfg.GeminiAPIKey == "your_gemini_api_key_here" {
		cfg.GeminiAPIKey = ""
	}
	if cfg.GroqAPIKey == "your_groq_api_key_here" {
		cfg.GroqAPIKey = ""
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
