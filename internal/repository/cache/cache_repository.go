package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
)

// CategoriesKey - ключ списка категорий
const CategoriesKey = "categories:all"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return NewCacheRepositoryFromClient(redis.Client(), redis.logger)
}

// NewCacheRepositoryFromClient wraps an existing client (tests, shared connections)
func NewCacheRepositoryFromClient(client *redis.Client, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetCategories получает список категорий из кеша
func (r *cacheRepository) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	data, err := r.Get(ctx, CategoriesKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var categories []*domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		r.logger.Error("Failed to unmarshal categories from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}

	return categories, nil
}

// SetCategories сохраняет список категорий в кеше
func (r *cacheRepository) SetCategories(ctx context.Context, categories []*domain.Category, ttl time.Duration) error {
	data, err := json.Marshal(categories)
	if err != nil {
		r.logger.Error("Failed to marshal categories", zap.Error(err))
		return fmt.Errorf("marshal categories: %w", err)
	}

	return r.Set(ctx, CategoriesKey, data, ttl)
}

// InvalidateCategories сбрасывает кеш категорий после изменения справочника
func (r *cacheRepository) InvalidateCategories(ctx context.Context) error {
	return r.Delete(ctx, CategoriesKey)
}
