package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/usecase/dto"
)

func (uc *ItineraryUseCase) ListDays(ctx context.Context, itineraryID int64) ([]*domain.ItineraryDay, error) {
	if _, err := uc.itineraries.GetByID(ctx, itineraryID); err != nil {
		return nil, err
	}
	return uc.days.ListByItinerary(ctx, itineraryID)
}

func (uc *ItineraryUseCase) GetDay(ctx context.Context, id int64) (*domain.ItineraryDay, error) {
	return uc.days.GetByID(ctx, id)
}

// CreateDay adds a day; its number is the offset from the itinerary start plus one.
func (uc *ItineraryUseCase) CreateDay(ctx context.Context, itineraryID int64, req dto.CreateDayRequest) (*domain.ItineraryDay, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	day := &domain.ItineraryDay{
		ItineraryID: itineraryID,
		Date:        date,
		Notes:       req.Notes,
	}
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		it, err := uc.itineraries.GetByID(ctx, itineraryID)
		if err != nil {
			return err
		}
		if !it.Contains(date) {
			return errors.ErrDayOutOfRange
		}

		now := uc.now()
		day.DayNumber = it.DayNumber(date)
		day.CreatedAt = now
		if err := uc.days.Create(ctx, day); err != nil {
			return err
		}
		return uc.itineraries.Touch(ctx, itineraryID, now)
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (uc *ItineraryUseCase) UpdateDay(ctx context.Context, id int64, req dto.UpdateDayRequest) (*domain.ItineraryDay, error) {
	var day *domain.ItineraryDay
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if day, err = uc.days.GetByID(ctx, id); err != nil {
			return err
		}

		if req.Date != nil {
			date, err := parseDate("date", *req.Date)
			if err != nil {
				return err
			}
			it, err := uc.itineraries.GetByID(ctx, day.ItineraryID)
			if err != nil {
				return err
			}
			if !it.Contains(date) {
				return errors.ErrDayOutOfRange
			}
			day.Date = date
			day.DayNumber = it.DayNumber(date)
		}
		if req.Notes != nil {
			day.Notes = req.Notes
		}

		if err := uc.days.Update(ctx, day); err != nil {
			return err
		}
		return uc.itineraries.Touch(ctx, day.ItineraryID, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

// DeleteDay removes the day's items, then the day, then touches the itinerary.
func (uc *ItineraryUseCase) DeleteDay(ctx context.Context, id int64) error {
	return uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		day, err := uc.days.GetByID(ctx, id)
		if err != nil {
			return err
		}

		removed, err := uc.items.DeleteByDay(ctx, id)
		if err != nil {
			uc.logger.Error("Failed to delete day items", zap.Int64("day_id", id), zap.Error(err))
			return err
		}
		if err := uc.days.Delete(ctx, id); err != nil {
			return err
		}

		uc.logger.Debug("Itinerary day deleted",
			zap.Int64("day_id", id),
			zap.Int64("items_removed", removed))
		return uc.itineraries.Touch(ctx, day.ItineraryID, uc.now())
	})
}
