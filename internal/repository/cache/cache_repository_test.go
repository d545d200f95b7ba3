package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, cache.CategoriesKey)
	return client
}

func TestCacheRepository_Categories(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepositoryFromClient(client, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, cache.CategoriesKey)

	// Cache miss
	got, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	categories := []*domain.Category{
		{ID: 1, Name: "Hotels", Icon: "bed"},
		{ID: 2, Name: "Restaurants", Icon: "utensils"},
	}
	require.NoError(t, repo.SetCategories(ctx, categories, time.Minute))

	got, err = repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)

	ttl, err := client.TTL(ctx, cache.CategoriesKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.InvalidateCategories(ctx))
	got, err = repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
