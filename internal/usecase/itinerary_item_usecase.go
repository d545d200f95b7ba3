package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/usecase/dto"
)

// ListItems возвращает пункты дня по времени начала, без времени - в конце
func (uc *ItineraryUseCase) ListItems(ctx context.Context, dayID int64) ([]*domain.ItineraryItem, error) {
	if _, err := uc.days.GetByID(ctx, dayID); err != nil {
		return nil, err
	}
	items, err := uc.items.ListByDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	domain.SortItems(items)
	return items, nil
}

func (uc *ItineraryUseCase) GetItem(ctx context.Context, id int64) (*domain.ItineraryItem, error) {
	return uc.items.GetByID(ctx, id)
}

func (uc *ItineraryUseCase) CreateItem(ctx context.Context, dayID int64, req dto.CreateItemRequest) (*domain.ItineraryItem, error) {
	start, err := normalizeTime("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := normalizeTime("end_time", req.EndTime)
	if err != nil {
		return nil, err
	}

	item := &domain.ItineraryItem{
		DayID:       dayID,
		BusinessID:  req.BusinessID,
		Type:        domain.ItemType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    req.Location,
		Cost:        req.Cost,
		Reservation: req.ReservationConfirmation,
		Details:     details(req.Details),
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		day, err := uc.days.GetByID(ctx, dayID)
		if err != nil {
			return err
		}
		if err := uc.checkBusiness(ctx, item.BusinessID); err != nil {
			return err
		}

		now := uc.now()
		item.CreatedAt = now
		if err := uc.items.Create(ctx, item); err != nil {
			return err
		}
		return uc.itineraries.Touch(ctx, day.ItineraryID, now)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *ItineraryUseCase) UpdateItem(ctx context.Context, id int64, req dto.UpdateItemRequest) (*domain.ItineraryItem, error) {
	start, err := normalizeTime("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := normalizeTime("end_time", req.EndTime)
	if err != nil {
		return nil, err
	}

	var item *domain.ItineraryItem
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if item, err = uc.items.GetByID(ctx, id); err != nil {
			return err
		}

		if req.BusinessID != nil {
			if err := uc.checkBusiness(ctx, req.BusinessID); err != nil {
				return err
			}
			item.BusinessID = req.BusinessID
		}
		if req.Type != nil {
			item.Type = domain.ItemType(*req.Type)
		}
		if req.Title != nil {
			item.Title = *req.Title
		}
		if req.Description != nil {
			item.Description = req.Description
		}
		// "" снимает время, отсутствующее поле оставляет как есть
		if req.StartTime != nil {
			item.StartTime = start
		}
		if req.EndTime != nil {
			item.EndTime = end
		}
		if req.Location != nil {
			item.Location = req.Location
		}
		if req.Cost != nil {
			item.Cost = req.Cost
		}
		if req.ReservationConfirmation != nil {
			item.Reservation = req.ReservationConfirmation
		}
		if req.Details != nil {
			item.Details = details(req.Details)
		}

		now := uc.now()
		item.UpdatedAt = now
		if err := uc.items.Update(ctx, item); err != nil {
			return err
		}
		return uc.touchDay(ctx, item.DayID, now)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *ItineraryUseCase) DeleteItem(ctx context.Context, id int64) error {
	return uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		item, err := uc.items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := uc.items.Delete(ctx, id); err != nil {
			return err
		}
		return uc.touchDay(ctx, item.DayID, uc.now())
	})
}

// touchDay - item -> day -> itinerary
func (uc *ItineraryUseCase) touchDay(ctx context.Context, dayID int64, at time.Time) error {
	day, err := uc.days.GetByID(ctx, dayID)
	if err != nil {
		return err
	}
	return uc.itineraries.Touch(ctx, day.ItineraryID, at)
}

func (uc *ItineraryUseCase) checkBusiness(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	_, err := uc.businesses.GetByID(ctx, *id)
	return err
}

// details drops a JSON null so that it is stored as NULL
func details(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
