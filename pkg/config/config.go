package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string

	JWTSecret string
	JWTExpiry int64

	GeminiAPIKey string
	GeminiModel  string

	RapidAPIKey  string
	RapidAPIHost string
	HMCountry    string
	HMLang       string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:       getEnvAsInt64("JWT_EXPIRY", 7*24*60*60), // 7 days
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		RapidAPIKey:     getEnv("RAPIDAPI_KEY", ""),
		RapidAPIHost:    getEnv("RAPIDAPI_HOST", "apidojo-hm-hennes-mauritz-v1.p.rapidapi.com"),
		HMCountry:       getEnv("HM_COUNTRY", "us"),
		HMLang:          getEnv("HM_LANG", "en"),
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
