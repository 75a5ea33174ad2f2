package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moneylane/moneylane/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix  = "game_result:"
	resultsByTimeKey = "game_results_by_time"
)

// ErrResultNotFound is returned when an archived result is not found
var ErrResultNotFound = errors.New("game result not found")

// Config holds configuration for the Redis archive repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed archive repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult persists a game result to Redis
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	result := input.Result

	if result.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	// Marshal the result to JSON
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal game result: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the result
	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, result.ID)
	pipe.Set(ctx, resultKey, resultJSON, 0) // No expiration for now

	// Index the result by finish time
	pipe.ZAdd(ctx, resultsByTimeKey, redis.Z{
		Score:  float64(result.FinishedAt.Unix()),
		Member: result.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	return nil
}

// GetResult retrieves a game result by session token from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, input.SessionID)
	resultJSON, err := r.client.Get(ctx, resultKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get game result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game result: %w", err)
	}

	return &GetResultOutput{Result: &result}, nil
}

// ListRecentResults retrieves the most recently finished games from Redis
func (r *redisRepository) ListRecentResults(ctx context.Context, input *ListRecentResultsInput) (*ListRecentResultsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	// Most recent first
	ids, err := r.client.ZRevRange(ctx, resultsByTimeKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListRecentResultsOutput{
			Results: []*models.GameResult{},
		}, nil
	}

	// Get all results in parallel using a pipeline
	pipe := r.client.Pipeline()
	resultCommands := make([]*redis.StringCmd, len(ids))

	for i, id := range ids {
		resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, id)
		resultCommands[i] = pipe.Get(ctx, resultKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get game results: %w", err)
	}

	results := make([]*models.GameResult, 0, len(ids))
	for i, cmd := range resultCommands {
		resultJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Result was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get game result %s: %w", ids[i], err)
		}

		var result models.GameResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game result %s: %w", ids[i], err)
		}

		results = append(results, &result)
	}

	return &ListRecentResultsOutput{Results: results}, nil
}
