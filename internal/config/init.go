package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Settings collects everything the binary reads from the environment.
type Settings struct {
	AppPort        string
	AppEnv         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	EventStream    string
	EventMaxLen    int64
	BatchSize      int
	OutboxSize     int
	ReadDelay      time.Duration
	SuggestedLimit int
	SeedFile       string
	ViewerID       int64
}

// Init loads .env (if present) and reads Settings with defaults.
func Init() *Settings {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads Settings from the process environment only.
func FromEnv() *Settings {
	return &Settings{
		AppPort:        getEnv("APP_PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getInt("REDIS_DB", 0),
		EventStream:    getEnv("EVENT_STREAM", "manshurat:events"),
		EventMaxLen:    int64(getInt("EVENT_MAXLEN", 10000)),
		BatchSize:      getInt("BATCH_SIZE", 100),
		OutboxSize:     getInt("OUTBOX_SIZE", 1024),
		ReadDelay:      getDuration("READ_DELAY", 500*time.Millisecond),
		SuggestedLimit: getInt("SUGGESTED_LIMIT", 5),
		SeedFile:       os.Getenv("SEED_FILE"),
		ViewerID:       int64(getInt("VIEWER_ID", 1)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		Logger.Warn("Invalid integer setting, using default", zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		Logger.Warn("Invalid duration setting, using default", zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return v
}
