package usecase

import (
	"context"
	"time"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/validator"
)

// TimeLayout - время суток в пунктах маршрута и бронированиях
const TimeLayout = "15:04"

// Clock возвращает текущее время; в тестах подменяется
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

func clockOrDefault(now Clock) Clock {
	if now == nil {
		return utcNow
	}
	return now
}

func fieldError(field, tag, msg string) error {
	return validator.NewValidationError(validator.FieldError{Field: field, Tag: tag, Message: msg})
}

// parseDate разбирает "2006-01-02" и сообщает ошибку с именем поля
func parseDate(field, value string) (domain.Date, error) {
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, fieldError(field, "datetime", field+" must match format "+domain.DateLayout)
	}
	return d, nil
}

// normalizeTime приводит "9:30" к "09:30", чтобы строки сортировались как время
func normalizeTime(field string, value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(TimeLayout, *value)
	if err != nil {
		return nil, fieldError(field, "datetime", field+" must match format "+TimeLayout)
	}
	s := t.Format(TimeLayout)
	return &s, nil
}

// touch advances the itinerary's updated_at; nil id means an unattached booking.
func touch(ctx context.Context, itineraries repository.ItineraryRepository, id *int64, at time.Time) error {
	if id == nil {
		return nil
	}
	return itineraries.Touch(ctx, *id, at)
}
