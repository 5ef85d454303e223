package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

const optionsCacheKey = "recipes:options"

// OptionsCacheRepository caches the recipe editor lookup lists in Redis.
type OptionsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewOptionsCacheRepository creates a cache repository with the given TTL.
func NewOptionsCacheRepository(client *redis.Client, expiration time.Duration) *OptionsCacheRepository {
	return &OptionsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached options, or nil on a cache miss.
func (r *OptionsCacheRepository) Get(ctx context.Context) (*models.Options, error) {
	val, err := r.client.Get(ctx, optionsCacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read options cache", "key", optionsCacheKey, "error", err)
		return nil, err
	}

	var options models.Options
	if err := json.Unmarshal([]byte(val), &options); err != nil {
		logger.Log.Errorw("failed to decode cached options", "key", optionsCacheKey, "error", err)
		return nil, err
	}

	return &options, nil
}

// Set caches the options with the repository's TTL.
func (r *OptionsCacheRepository) Set(ctx context.Context, options models.Options) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, optionsCacheKey, data, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to write options cache", "key", optionsCacheKey, "error", err)
	}
	return err
}
