package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Topic resolution modes for message creation. "lenient" silently drops topic
// ids that do not resolve within the group, "strict" rejects the message.
const (
	TopicResolutionLenient = "lenient"
	TopicResolutionStrict  = "strict"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret          string
	TokenTTLHours      int
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type ChatConfig struct {
	DefaultGroupName  string
	TopicResolution   string
	DefaultTopicColor string
	RecentWindowLimit int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			TokenTTLHours:      getEnvAsInt("JWT_TTL_HOURS", 72),
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		},
		Chat: ChatConfig{
			DefaultGroupName:  getEnv("CHAT_DEFAULT_GROUP_NAME", "General"),
			TopicResolution:   getEnv("CHAT_TOPIC_RESOLUTION", TopicResolutionLenient),
			DefaultTopicColor: getEnv("CHAT_DEFAULT_TOPIC_COLOR", "#FFFFFF"),
			RecentWindowLimit: getEnvAsInt("CHAT_RECENT_WINDOW_LIMIT", 50),
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
