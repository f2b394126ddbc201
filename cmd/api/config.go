package main

import (
	"log"
	"os"

	"smartystreets-api/pkg/config"
	"smartystreets-api/pkg/logger"

	"github.com/joho/godotenv"
)

const defaultConfigPath = "configs/config.yaml"

// LoadConfiguration reads .env, then the YAML config, and starts the global
// logger at the configured level.
func LoadConfiguration() *config.Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: path=%s, error=%v", path, err)
	}

	logger.InitLogger(os.Stdout, cfg.Log.Level)
	logger.GlobalLogger.Printf("Configuration loaded: env=%s, path=%s, log_level=%s", cfg.Env, path, cfg.Log.Level)
	return cfg
}
