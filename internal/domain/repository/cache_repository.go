package repository

import (
	"context"
	"time"

	"github.com/tourism-directory/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetCategories получает список категорий из кеша, nil при промахе
	GetCategories(ctx context.Context) ([]*domain.Category, error)

	// SetCategories сохраняет список категорий
	SetCategories(ctx context.Context, categories []*domain.Category, ttl time.Duration) error

	// InvalidateCategories сбрасывает кеш категорий
	InvalidateCategories(ctx context.Context) error
}
