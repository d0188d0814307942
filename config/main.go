package config

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func Load() {
	if err := godotenv.Load(); err != nil {
		zap.S().Debugf("no .env file loaded: %v", err)
	}
	LoadEnv()
	if err := LoadPlatformConfigs(); err != nil {
		zap.S().Fatalf("failed to load platform configs: %v", err)
	}
}
