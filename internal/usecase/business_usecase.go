package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/search"
	"github.com/tourism-directory/internal/usecase/dto"
)

type BusinessUseCase struct {
	tx         repository.Transactor
	businesses repository.BusinessRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	logger     *zap.Logger
	now        Clock
}

func NewBusinessUseCase(
	tx repository.Transactor,
	businesses repository.BusinessRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	logger *zap.Logger,
	now Clock,
) *BusinessUseCase {
	return &BusinessUseCase{
		tx:         tx,
		businesses: businesses,
		categories: categories,
		users:      users,
		logger:     logger,
		now:        clockOrDefault(now),
	}
}

// Search фильтрует весь каталог в памяти; при гео-поиске выдача отсортирована по расстоянию
func (uc *BusinessUseCase) Search(ctx context.Context, f search.Filter) ([]dto.BusinessResult, error) {
	all, err := uc.businesses.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to load businesses for search", zap.Error(err))
		return nil, err
	}

	matches := search.Apply(all, f)
	results := make([]dto.BusinessResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.BusinessResult{Business: m.Business, DistanceKm: m.DistanceKm})
	}
	return results, nil
}

func (uc *BusinessUseCase) Get(ctx context.Context, id int64) (*domain.Business, error) {
	return uc.businesses.GetByID(ctx, id)
}

func (uc *BusinessUseCase) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Business, error) {
	return uc.businesses.ListByOwner(ctx, ownerID)
}

// Create сохраняет заведение; если указан владелец, заведение сразу подтверждено
func (uc *BusinessUseCase) Create(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error) {
	if _, err := uc.categories.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if req.ExternalPlaceID != nil {
		existing, err := uc.businesses.GetByExternalPlaceID(ctx, *req.ExternalPlaceID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fieldError("external_place_id", "unique", "external_place_id is already used by another business")
		}
	}

	b := &domain.Business{
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		City:            req.City,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
		CategoryID:      req.CategoryID,
		Rating:          req.Rating,
		PriceLevel:      req.PriceLevel,
		Website:         req.Website,
		Phone:           req.Phone,
		Images:          req.Images,
		Tags:            req.Tags,
		Amenities:       req.Amenities,
		ExternalPlaceID: req.ExternalPlaceID,
		CreatedAt:       uc.now(),
	}
	if req.OwnerID != nil {
		if _, err := uc.users.GetByID(ctx, *req.OwnerID); err != nil {
			return nil, err
		}
		b.Claim(*req.OwnerID)
	}

	if err := uc.businesses.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update меняет только переданные поля; владелец меняется только через заявку
func (uc *BusinessUseCase) Update(ctx context.Context, id int64, req dto.UpdateBusinessRequest) (*domain.Business, error) {
	var b *domain.Business
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if b, err = uc.businesses.GetForUpdate(ctx, id); err != nil {
			return err
		}
		return uc.applyUpdate(ctx, b, req)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// applyUpdate переносит заданные поля req в b и сохраняет каталожные поля
func (uc *BusinessUseCase) applyUpdate(ctx context.Context, b *domain.Business, req dto.UpdateBusinessRequest) error {

	if req.CategoryID != nil && *req.CategoryID != b.CategoryID {
		if _, err := uc.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return err
		}
		b.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.City != nil {
		b.City = *req.City
	}
	if req.Latitude != nil {
		b.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		b.Longitude = *req.Longitude
	}
	if req.Rating != nil {
		b.Rating = req.Rating
	}
	if req.PriceLevel != nil {
		b.PriceLevel = req.PriceLevel
	}
	if req.Website != nil {
		b.Website = req.Website
	}
	if req.Phone != nil {
		b.Phone = req.Phone
	}
	if req.Images != nil {
		b.Images = req.Images
	}
	if req.Tags != nil {
		b.Tags = req.Tags
	}
	if req.Amenities != nil {
		b.Amenities = req.Amenities
	}
	b.UpdatedAt = uc.now()

	return uc.businesses.Update(ctx, b)
}

// CategoryUseCase - справочник категорий с кешем в Redis
type CategoryUseCase struct {
	categories repository.CategoryRepository
	cache      repository.CacheRepository
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewCategoryUseCase - cache может быть nil, тогда список всегда читается из БД
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categories: categories,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*domain.Category, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetCategories(ctx)
		if err != nil {
			uc.logger.Warn("Categories cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetCategories(ctx, categories, uc.cacheTTL); err != nil {
			uc.logger.Warn("Categories cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	c := &domain.Category{Name: req.Name, Icon: req.Icon}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateCategories(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate categories cache", zap.Error(err))
		}
	}
	return c, nil
}

// ensureCategory - ошибка валидации для неизвестной категории из внешнего источника
func ensureCategory(ctx context.Context, categories repository.CategoryRepository, name string) (*domain.Category, error) {
	c, err := categories.GetByName(ctx, name)
	if errors.Is(err, errors.ErrCategoryNotFound) {
		return nil, fieldError("category", "exists", "unknown category "+name)
	}
	return c, err
}
