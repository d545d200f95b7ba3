package repository

import (
	"context"
	"time"

	"github.com/tourism-directory/internal/domain"
)

// ItineraryRepository определяет методы для работы с маршрутами
type ItineraryRepository interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	GetByID(ctx context.Context, id int64) (*domain.Itinerary, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Itinerary, error)
	ListPublic(ctx context.Context) ([]*domain.Itinerary, error)
	Update(ctx context.Context, it *domain.Itinerary) error
	Delete(ctx context.Context, id int64) error

	// Touch выставляет updated_at маршрута, не меняя остальные поля
	Touch(ctx context.Context, id int64, at time.Time) error
}

type ItineraryDayRepository interface {
	Create(ctx context.Context, d *domain.ItineraryDay) error
	GetByID(ctx context.Context, id int64) (*domain.ItineraryDay, error)
	// ListByItinerary возвращает дни по возрастанию day_number
	ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.ItineraryDay, error)
	Update(ctx context.Context, d *domain.ItineraryDay) error
	Delete(ctx context.Context, id int64) error
}

type ItineraryItemRepository interface {
	Create(ctx context.Context, it *domain.ItineraryItem) error
	GetByID(ctx context.Context, id int64) (*domain.ItineraryItem, error)
	// ListByDay возвращает пункты дня в порядке добавления
	ListByDay(ctx context.Context, dayID int64) ([]*domain.ItineraryItem, error)
	Update(ctx context.Context, it *domain.ItineraryItem) error
	Delete(ctx context.Context, id int64) error
	// DeleteByDay удаляет все пункты дня, возвращает количество удалённых
	DeleteByDay(ctx context.Context, dayID int64) (int64, error)
}

type CollaboratorRepository interface {
	Create(ctx context.Context, c *domain.Collaborator) error
	// Get возвращает участника по составному ключу, nil если нет
	Get(ctx context.Context, itineraryID int64, email string) (*domain.Collaborator, error)
	ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.Collaborator, error)
	Update(ctx context.Context, c *domain.Collaborator) error
	Delete(ctx context.Context, itineraryID int64, email string) error
	DeleteByItinerary(ctx context.Context, itineraryID int64) (int64, error)
}

// TransportBookingRepository определяет методы для работы с бронированиями транспорта
type TransportBookingRepository interface {
	Create(ctx context.Context, b *domain.TransportBooking) error
	GetByID(ctx context.Context, id int64) (*domain.TransportBooking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.TransportBooking, error)
	ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.TransportBooking, error)
	// Update не пишет status: b.Status получает текущее сохранённое значение
	Update(ctx context.Context, b *domain.TransportBooking) error
	// UpdateStatus записывает b.Status, confirmation_code и updated_at, только если
	// статус в базе всё ещё from. Иначе ErrInvalidStatusTransition.
	UpdateStatus(ctx context.Context, b *domain.TransportBooking, from domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error

	// DetachFromItinerary снимает привязку бронирований к маршруту
	DetachFromItinerary(ctx context.Context, itineraryID int64) (int64, error)
}
