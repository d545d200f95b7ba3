package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/pkg/validator"
)

// ImportUseCase - загрузка заведений из внешнего источника с дедупликацией
// по external_place_id
type ImportUseCase struct {
	tx         repository.Transactor
	businesses repository.BusinessRepository
	categories repository.CategoryRepository
	logger     *zap.Logger
	now        Clock
}

func NewImportUseCase(
	tx repository.Transactor,
	businesses repository.BusinessRepository,
	categories repository.CategoryRepository,
	logger *zap.Logger,
	now Clock,
) *ImportUseCase {
	return &ImportUseCase{
		tx:         tx,
		businesses: businesses,
		categories: categories,
		logger:     logger,
		now:        clockOrDefault(now),
	}
}

// ImportPlace creates the business or refreshes the catalog fields of the one
// already imported under the same external id. Ownership is never changed.
// created reports whether a new business was inserted.
func (uc *ImportUseCase) ImportPlace(ctx context.Context, ev domain.PlaceImportEvent) (b *domain.Business, created bool, err error) {
	if err := validatePlace(ev); err != nil {
		return nil, false, err
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		category, err := ensureCategory(ctx, uc.categories, ev.Category)
		if err != nil {
			return err
		}

		b, err = uc.businesses.GetByExternalPlaceID(ctx, ev.ExternalPlaceID)
		if err != nil {
			return err
		}

		now := uc.now()
		if b == nil {
			created = true
			externalID := ev.ExternalPlaceID
			b = &domain.Business{ExternalPlaceID: &externalID, CreatedAt: now}
			applyPlace(b, ev, category.ID)
			return uc.businesses.Create(ctx, b)
		}

		applyPlace(b, ev, category.ID)
		b.UpdatedAt = now
		return uc.businesses.Update(ctx, b)
	})
	if err != nil {
		uc.logger.Error("Failed to import place",
			zap.String("external_place_id", ev.ExternalPlaceID),
			zap.Error(err))
		return nil, false, err
	}

	uc.logger.Info("Place imported",
		zap.String("external_place_id", ev.ExternalPlaceID),
		zap.Int64("business_id", b.ID),
		zap.Bool("created", created))
	return b, created, nil
}

func validatePlace(ev domain.PlaceImportEvent) error {
	var fields []validator.FieldError
	if strings.TrimSpace(ev.ExternalPlaceID) == "" {
		fields = append(fields, validator.FieldError{Field: "external_place_id", Tag: "required", Message: "external_place_id is required"})
	}
	if strings.TrimSpace(ev.Name) == "" {
		fields = append(fields, validator.FieldError{Field: "name", Tag: "required", Message: "name is required"})
	}
	if strings.TrimSpace(ev.Category) == "" {
		fields = append(fields, validator.FieldError{Field: "category", Tag: "required", Message: "category is required"})
	}
	if !utils.ValidateCoordinates(ev.Latitude, ev.Longitude) {
		fields = append(fields, validator.FieldError{Field: "latitude", Tag: "range", Message: "coordinates are out of range"})
	}
	if ev.Rating != nil && (*ev.Rating < 0 || *ev.Rating > 5) {
		fields = append(fields, validator.FieldError{Field: "rating", Tag: "range", Message: "rating must be between 0 and 5"})
	}
	if len(fields) > 0 {
		return validator.NewValidationError(fields...)
	}
	return nil
}

func applyPlace(b *domain.Business, ev domain.PlaceImportEvent, categoryID int64) {
	b.Name = strings.TrimSpace(ev.Name)
	b.Description = ev.Description
	b.Address = ev.Address
	b.City = ev.City
	b.Latitude = ev.Latitude
	b.Longitude = ev.Longitude
	b.CategoryID = categoryID
	b.Rating = ev.Rating
	b.PriceLevel = ev.PriceLevel
	b.Website = ev.Website
	b.Phone = ev.Phone
	b.Images = ev.Images
	b.Tags = ev.Tags
	b.Amenities = ev.Amenities
}
