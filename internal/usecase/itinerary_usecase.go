package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/usecase/dto"
)

// ItineraryUseCase keeps the itinerary aggregate consistent. Every mutation of
// a day, item or collaborator runs in one transaction together with the touch
// of the parent itinerary's updated_at; deletions cascade children first.
type ItineraryUseCase struct {
	tx            repository.Transactor
	itineraries   repository.ItineraryRepository
	days          repository.ItineraryDayRepository
	items         repository.ItineraryItemRepository
	collaborators repository.CollaboratorRepository
	bookings      repository.TransportBookingRepository
	businesses    repository.BusinessRepository
	users         repository.UserRepository
	logger        *zap.Logger
	now           Clock
}

func NewItineraryUseCase(
	tx repository.Transactor,
	itineraries repository.ItineraryRepository,
	days repository.ItineraryDayRepository,
	items repository.ItineraryItemRepository,
	collaborators repository.CollaboratorRepository,
	bookings repository.TransportBookingRepository,
	businesses repository.BusinessRepository,
	users repository.UserRepository,
	logger *zap.Logger,
	now Clock,
) *ItineraryUseCase {
	return &ItineraryUseCase{
		tx:            tx,
		itineraries:   itineraries,
		days:          days,
		items:         items,
		collaborators: collaborators,
		bookings:      bookings,
		businesses:    businesses,
		users:         users,
		logger:        logger,
		now:           clockOrDefault(now),
	}
}

func (uc *ItineraryUseCase) Create(ctx context.Context, req dto.CreateItineraryRequest) (*domain.Itinerary, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start.Time) {
		return nil, errors.ErrInvalidDateRange
	}

	if _, err := uc.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	it := &domain.Itinerary{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		IsPublic:    req.IsPublic,
		CoverImage:  req.CoverImage,
		TotalBudget: req.TotalBudget,
		CreatedAt:   uc.now(),
	}
	if err := uc.itineraries.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (uc *ItineraryUseCase) Get(ctx context.Context, id int64) (*domain.Itinerary, error) {
	return uc.itineraries.GetByID(ctx, id)
}

func (uc *ItineraryUseCase) ListPublic(ctx context.Context) ([]*domain.Itinerary, error) {
	return uc.itineraries.ListPublic(ctx)
}

func (uc *ItineraryUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.Itinerary, error) {
	return uc.itineraries.ListByUser(ctx, userID)
}

// Update applies the given fields. When the dates move, day numbers are
// recomputed and a day left outside the new range rejects the whole update.
func (uc *ItineraryUseCase) Update(ctx context.Context, id int64, req dto.UpdateItineraryRequest) (*domain.Itinerary, error) {
	var it *domain.Itinerary
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		it, err = uc.itineraries.GetByID(ctx, id)
		if err != nil {
			return err
		}

		datesChanged := false
		if req.StartDate != nil {
			if it.StartDate, err = parseDate("start_date", *req.StartDate); err != nil {
				return err
			}
			datesChanged = true
		}
		if req.EndDate != nil {
			if it.EndDate, err = parseDate("end_date", *req.EndDate); err != nil {
				return err
			}
			datesChanged = true
		}
		if it.EndDate.Before(it.StartDate.Time) {
			return errors.ErrInvalidDateRange
		}

		if req.Title != nil {
			it.Title = *req.Title
		}
		if req.Description != nil {
			it.Description = req.Description
		}
		if req.IsPublic != nil {
			it.IsPublic = *req.IsPublic
		}
		if req.CoverImage != nil {
			it.CoverImage = req.CoverImage
		}
		if req.TotalBudget != nil {
			it.TotalBudget = req.TotalBudget
		}
		it.UpdatedAt = uc.now()

		if datesChanged {
			if err := uc.renumberDays(ctx, it); err != nil {
				return err
			}
		}
		return uc.itineraries.Update(ctx, it)
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (uc *ItineraryUseCase) renumberDays(ctx context.Context, it *domain.Itinerary) error {
	days, err := uc.days.ListByItinerary(ctx, it.ID)
	if err != nil {
		return err
	}
	for _, d := range days {
		if !it.Contains(d.Date) {
			return errors.ErrDayOutOfRange.WithDetails(map[string]interface{}{
				"day_id": d.ID,
				"date":   d.Date.String(),
			})
		}
		if n := it.DayNumber(d.Date); n != d.DayNumber {
			d.DayNumber = n
			if err := uc.days.Update(ctx, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes the itinerary with its whole aggregate: items of every day,
// the days, collaborators, then the itinerary row. Linked transport bookings
// are detached and stay with their user.
func (uc *ItineraryUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.itineraries.GetByID(ctx, id); err != nil {
			return err
		}

		days, err := uc.days.ListByItinerary(ctx, id)
		if err != nil {
			return err
		}
		for _, d := range days {
			if _, err := uc.items.DeleteByDay(ctx, d.ID); err != nil {
				return err
			}
			if err := uc.days.Delete(ctx, d.ID); err != nil {
				return err
			}
		}

		if _, err := uc.collaborators.DeleteByItinerary(ctx, id); err != nil {
			return err
		}
		if _, err := uc.bookings.DetachFromItinerary(ctx, id); err != nil {
			return err
		}
		return uc.itineraries.Delete(ctx, id)
	})
	if err != nil {
		uc.logger.Error("Failed to delete itinerary", zap.Int64("itinerary_id", id), zap.Error(err))
		return err
	}

	uc.logger.Info("Itinerary deleted", zap.Int64("itinerary_id", id))
	return nil
}

// Details собирает маршрут целиком: дни по порядку, пункты по времени начала,
// участники и привязанные бронирования
func (uc *ItineraryUseCase) Details(ctx context.Context, id int64) (*dto.ItineraryDetails, error) {
	it, err := uc.itineraries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	days, err := uc.days.ListByItinerary(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &dto.ItineraryDetails{
		Itinerary: it,
		Days:      make([]dto.DayWithItems, 0, len(days)),
	}
	for _, d := range days {
		items, err := uc.items.ListByDay(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		domain.SortItems(items)
		details.Days = append(details.Days, dto.DayWithItems{ItineraryDay: d, Items: items})
	}

	if details.Collaborators, err = uc.collaborators.ListByItinerary(ctx, id); err != nil {
		return nil, err
	}
	if details.TransportBookings, err = uc.bookings.ListByItinerary(ctx, id); err != nil {
		return nil, err
	}
	return details, nil
}
