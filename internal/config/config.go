package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Публичный адрес, от которого строится ссылка для пострадавшего /loc/:id
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// Номер экстренной службы для SMS-фолбэка
	EmergencyNumber string `env:"EMERGENCY_NUMBER" envDefault:"118"`

	// Таймауты рукопожатия геолокации
	LocateWriteTimeout time.Duration `env:"LOCATE_WRITE_TIMEOUT" envDefault:"15s"`
	DeviceFixTimeout   time.Duration `env:"DEVICE_FIX_TIMEOUT" envDefault:"30s"`

	// Dispatch Webhook Config
	DispatchWebhookURL string        `env:"DISPATCH_WEBHOOK_URL"`
	DispatchSecret     string        `env:"DISPATCH_WEBHOOK_SECRET"`
	DispatchTimeout    time.Duration `env:"DISPATCH_WEBHOOK_TIMEOUT" envDefault:"5s"`
	DispatchMaxRetries int           `env:"DISPATCH_WEBHOOK_MAX_RETRIES" envDefault:"3"`
	DispatchBaseDelay  time.Duration `env:"DISPATCH_WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// История запросов в консоли диспетчера
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"20"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		PublicBaseURL:          getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		EmergencyNumber:        getEnv("EMERGENCY_NUMBER", "118"),
		LocateWriteTimeout:     getEnvAsDuration("LOCATE_WRITE_TIMEOUT", 15*time.Second),
		DeviceFixTimeout:       getEnvAsDuration("DEVICE_FIX_TIMEOUT", 30*time.Second),
		DispatchWebhookURL:     os.Getenv("DISPATCH_WEBHOOK_URL"),
		DispatchSecret:         os.Getenv("DISPATCH_WEBHOOK_SECRET"),
		DispatchTimeout:        getEnvAsDuration("DISPATCH_WEBHOOK_TIMEOUT", 5*time.Second),
		DispatchMaxRetries:     getEnvAsInt("DISPATCH_WEBHOOK_MAX_RETRIES", 3),
		DispatchBaseDelay:      getEnvAsDuration("DISPATCH_WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		HistoryLimit:           getEnvAsInt("HISTORY_LIMIT", 20),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Публичный адрес храним без завершающего слэша, чтобы ссылка /loc/:id склеивалась корректно
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
