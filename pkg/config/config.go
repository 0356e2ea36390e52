package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	FrontendURL string

	JWTSecret       string
	JWTAccessExpiry time.Duration
	SessionTTL      time.Duration

	GoogleClientID         string
	GoogleClientSecret     string
	GoogleLoginRedirectURI string
	GoogleDocsRedirectURI  string
	GoogleTimeout          time.Duration

	AIProvider    string
	OllamaBaseURL string
	OllamaModel   string
	GeminiApiKey  string
	AITimeout     time.Duration

	TranscribeURL     string
	TranscribeTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	sessionTTL := 168 * time.Hour // 7 days
	if exp := os.Getenv("SESSION_TTL"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			sessionTTL = parsed
		}
	}

	aiTimeout := 120 * time.Second
	if exp := os.Getenv("AI_TIMEOUT"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			aiTimeout = parsed
		}
	}

	googleTimeout := 30 * time.Second
	if exp := os.Getenv("GOOGLE_TIMEOUT"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			googleTimeout = parsed
		}
	}

	transcribeTimeout := 300 * time.Second
	if exp := os.Getenv("TRANSCRIBE_TIMEOUT"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			transcribeTimeout = parsed
		}
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry: accessExpiry,
		SessionTTL:      sessionTTL,

		GoogleClientID:         getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:     getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleLoginRedirectURI: getEnv("GOOGLE_LOGIN_REDIRECT_URI", "http://localhost:8080/auth/google/callback"),
		GoogleDocsRedirectURI:  getEnv("GOOGLE_DOCS_REDIRECT_URI", "http://localhost:8080/oauth2callback"),
		GoogleTimeout:          googleTimeout,

		AIProvider:    getEnv("AI_PROVIDER", "auto"),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "gemma2"),
		GeminiApiKey:  getEnv("GEMINI_API_KEY", ""),
		AITimeout:     aiTimeout,

		TranscribeURL:     getEnv("TRANSCRIBE_URL", ""),
		TranscribeTimeout: transcribeTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
