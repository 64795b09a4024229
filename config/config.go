package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Monitor MonitorConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

// APIConfig points at the remote portfolio backend. The dashboard is a thin
// client over it and owns no data of its own.
type APIConfig struct {
	BaseURL string
}

type SessionConfig struct {
	TokenKey     string
	ThemeKey     string
	TTL          time.Duration
	DefaultTheme string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MonitorConfig struct {
	CronSpec string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "https://portofolio-backend-beta.vercel.app"),
		},
		Session: SessionConfig{
			TokenKey:     getEnv("TOKEN_KEY", "jwt_token"),
			ThemeKey:     getEnv("THEME_KEY", "theme"),
			TTL:          getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			DefaultTheme: getEnv("DEFAULT_THEME", "light"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Monitor: MonitorConfig{
			CronSpec: getEnv("HEALTH_CRON", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	if c.Session.TokenKey == "" {
		return fmt.Errorf("TOKEN_KEY is required")
	}

	if c.Session.ThemeKey == "" {
		return fmt.Errorf("THEME_KEY is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
