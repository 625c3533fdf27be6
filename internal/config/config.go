package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port                string
	BaseURL             string
	ClientURL           string
	Environment         string
	LogFilePath         string
	PipelineLogFilePath string
	CorsAllowedOrigins  string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini   string
	JwtSecret      string
	FinalizedTopic string
}

type AIConfig struct {
	Provider       string // "gemini" or "ollama"
	OllamaBaseURL  string
	PrimaryModel   string
	FallbackModels []string
	MaxAttempts    int
	Backoffs       []time.Duration
	MinExchanges   int
	ChunkDelay     time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                getEnv("APP_PORT", "3000"),
			BaseURL:             getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:           getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:         getEnv("GO_ENV", "development"),
			LogFilePath:         getEnv("LOG_FILE_PATH", "app.log"),
			PipelineLogFilePath: getEnv("LLM_LOG_FILE_PATH", "llm.log"),
			CorsAllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JwtSecret:      getEnv("JWT_SECRET", ""),
			FinalizedTopic: getEnv("SPEC_FINALIZED_TOPIC_NAME", "SPEC_FINALIZED"),
		},
		Ai: AIConfig{
			Provider:       getEnv("LLM_PROVIDER", "gemini"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			PrimaryModel:   getEnv("LLM_PRIMARY_MODEL", "gemini-2.5-flash"),
			FallbackModels: getEnvAsList("LLM_FALLBACK_MODELS", "gemini-2.5-flash-lite,gemini-2.0-flash"),
			MaxAttempts:    getEnvAsInt("LLM_MAX_ATTEMPTS", 3),
			Backoffs:       getEnvAsDurations("LLM_BACKOFFS_MS", "400,900,1800"),
			MinExchanges:   getEnvAsInt("IDEATOR_MIN_EXCHANGES", 3),
			ChunkDelay:     time.Duration(getEnvAsInt("IDEATOR_CHUNK_DELAY_MS", 10)) * time.Millisecond,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func getEnvAsDurations(key, fallback string) []time.Duration {
	var durations []time.Duration
	for _, part := range getEnvAsList(key, fallback) {
		ms, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		durations = append(durations, time.Duration(ms)*time.Millisecond)
	}
	return durations
}
