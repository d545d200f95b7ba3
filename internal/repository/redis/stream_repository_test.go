package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	redisRepo "github.com/tourism-directory/internal/repository/redis"
)

const (
	testImportStream = "test:stream:places:import"
	testDoneStream   = "test:stream:places:imported"
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

	client.Del(ctx, testImportStream, testDoneStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testImportStream, testDoneStream)
		client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 0, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testImportStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testImportStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testImportStream, "test-group"))
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 0, zap.NewNop())
	ctx := context.Background()

	event := &domain.PlaceImportDoneEvent{
		RequestID:       uuid.New(),
		ExternalPlaceID: "ext-42",
		BusinessID:      7,
		Created:         true,
	}
	require.NoError(t, repo.PublishToStream(ctx, testDoneStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testDoneStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	data, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.PlaceImportDoneEvent
	require.NoError(t, json.Unmarshal([]byte(data), &received))
	assert.Equal(t, event.RequestID, received.RequestID)
	assert.Equal(t, int64(7), received.BusinessID)
	assert.True(t, received.Created)
}

func TestStreamRepository_ConsumeBatchAndAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 0, zap.NewNop())
	ctx := context.Background()
	group := "test-batch-group"

	require.NoError(t, repo.CreateConsumerGroup(ctx, testImportStream, group))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.PublishToStream(ctx, testImportStream, &domain.PlaceImportEvent{
			RequestID: uuid.New(), ExternalPlaceID: "ext", Name: "Place", Category: "Hotels",
		}))
	}

	batch, err := repo.ConsumeBatch(ctx, testImportStream, group, "consumer-1", 2)
	require.NoError(t, err)
	require.Len(t, batch, 2)

	var event domain.PlaceImportEvent
	require.NoError(t, json.Unmarshal([]byte(batch[0].Data), &event))
	assert.Equal(t, "Place", event.Name)

	pending, err := client.XPending(ctx, testImportStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)

	require.NoError(t, repo.AckMessages(ctx, testImportStream, group, []string{batch[0].ID, batch[1].ID}))

	pending, err = client.XPending(ctx, testImportStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	rest, err := repo.ConsumeBatch(ctx, testImportStream, group, "consumer-1", 10)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	empty, err := repo.ConsumeBatch(ctx, testImportStream, group, "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
