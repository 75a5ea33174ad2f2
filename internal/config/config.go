package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Web Server
	Bind string

	// Redis
	RedisAddr     string
	RedisPassword string

	// Dice seed, for reproducible games; zero seeds from the wall clock
	DiceSeed int64
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		Bind:          getEnvDefault("WEB_BIND", "0.0.0.0:8080"),
		RedisAddr:     getEnvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if seed := os.Getenv("DICE_SEED"); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("DICE_SEED must be an integer: %w", err)
		}
		cfg.DiceSeed = parsed
	}

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
