package main

import (
	"context"
	"log"
	"time"

	"github.com/moneylane/moneylane/internal/common/clock"
	"github.com/moneylane/moneylane/internal/common/uuid"
	"github.com/moneylane/moneylane/internal/config"
	"github.com/moneylane/moneylane/internal/dice"
	"github.com/moneylane/moneylane/internal/handlers/api"
	"github.com/moneylane/moneylane/internal/repositories/archive"
	gameService "github.com/moneylane/moneylane/internal/services/game"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	archiveRepo, err := archive.NewRedis(&archive.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create archive repository: %v", err)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.DiceSeed,
	})

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		ArchiveRepo:   archiveRepo,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		DiceRoller:    diceRoller,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Start the API server
	server := api.New(cfg, gameSvc)
	if err := server.Start(); err != nil {
		log.Fatalf("API server exited: %v", err)
	}
}
