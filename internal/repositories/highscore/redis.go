package highscore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key used when RedisConfig.Key is empty
const DefaultRedisKey = "yahtzee:highscores"

// RedisConfig holds configuration for the Redis high-score repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Key holding the ledger text; defaults to DefaultRedisKey
	Key string
}

// redisRepository implements the Repository interface using Redis.
// The ledger is kept under a single string key in the same line format as the file store.
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed high-score repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = DefaultRedisKey
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    key,
	}, nil
}

// LoadEntries retrieves the ledger from Redis
func (r *redisRepository) LoadEntries(ctx context.Context) ([]*models.HighScoreEntry, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get high scores: %w", err)
	}

	entries, err := decodeEntries(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode high scores: %w", err)
	}

	return entries, nil
}

// SaveEntries replaces the ledger in Redis
func (r *redisRepository) SaveEntries(ctx context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	var buf bytes.Buffer
	if err := encodeEntries(&buf, input.Entries); err != nil {
		return fmt.Errorf("failed to encode high scores: %w", err)
	}

	// No expiration, the ledger outlives every game
	if err := r.client.Set(ctx, r.key, buf.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}

	return nil
}
