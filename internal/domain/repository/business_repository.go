package repository

import (
	"context"
	"time"

	"github.com/tourism-directory/internal/domain"
)

// BusinessRepository определяет методы для работы с заведениями
type BusinessRepository interface {
	// GetByID возвращает заведение по ID
	GetByID(ctx context.Context, id int64) (*domain.Business, error)

	// GetForUpdate как GetByID, но блокирует строку до конца транзакции
	GetForUpdate(ctx context.Context, id int64) (*domain.Business, error)

	// GetByExternalPlaceID возвращает заведение по ID внешнего источника, nil если нет
	GetByExternalPlaceID(ctx context.Context, externalPlaceID string) (*domain.Business, error)

	// List возвращает все заведения в порядке добавления
	List(ctx context.Context) ([]*domain.Business, error)

	// ListByOwner возвращает заведения владельца
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Business, error)

	// Create сохраняет заведение, заполняет ID и временные метки
	Create(ctx context.Context, b *domain.Business) error

	// Update перезаписывает каталожные поля заведения. OwnerID и Claimed не пишутся:
	// они меняются только через SetOwner и в b возвращаются текущие значения из хранилища
	Update(ctx context.Context, b *domain.Business) error

	// SetOwner помечает заведение как подтверждённое владельцем
	SetOwner(ctx context.Context, id, ownerID int64, at time.Time) error

	// Count возвращает количество заведений
	Count(ctx context.Context) (int, error)
}

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	// GetByName ищет категорию без учёта регистра
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Count(ctx context.Context) (int, error)
}
