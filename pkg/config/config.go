package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	// Generation backend (OpenAI-compatible endpoint)
	GenAIBaseURL    string
	GenAIAPIKey     string
	GenAIModel      string
	GenAITimeoutSec int64

	// Natural key reserved for the offline simulator channel
	SimulatorWhatsapp string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		FirebaseProject:   getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:       getEnv("ENVIRONMENT", "development"),
		GenAIBaseURL:      getEnv("GENAI_BASE_URL", ""),
		GenAIAPIKey:       getEnv("GENAI_API_KEY", ""),
		GenAIModel:        getEnv("GENAI_MODEL", "gemini-3-pro-preview"),
		GenAITimeoutSec:   getEnvAsInt64("GENAI_TIMEOUT_SECONDS", 60),
		SimulatorWhatsapp: getEnv("SIMULATOR_WHATSAPP", "+234000SIMULATOR"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
