package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

var Logger = zap.NewNop()

// InitLogger builds the process logger. APP_ENV=production switches to the
// JSON production config.
func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("✅ Zap logger initialized")
}
