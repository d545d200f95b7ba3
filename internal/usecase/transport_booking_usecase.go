package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/usecase/dto"
)

// TransportBookingUseCase - бронирования транспорта. Бронирование, привязанное
// к маршруту, при каждом изменении обновляет updated_at этого маршрута.
type TransportBookingUseCase struct {
	tx          repository.Transactor
	bookings    repository.TransportBookingRepository
	itineraries repository.ItineraryRepository
	users       repository.UserRepository
	logger      *zap.Logger
	now         Clock
}

func NewTransportBookingUseCase(
	tx repository.Transactor,
	bookings repository.TransportBookingRepository,
	itineraries repository.ItineraryRepository,
	users repository.UserRepository,
	logger *zap.Logger,
	now Clock,
) *TransportBookingUseCase {
	return &TransportBookingUseCase{
		tx:          tx,
		bookings:    bookings,
		itineraries: itineraries,
		users:       users,
		logger:      logger,
		now:         clockOrDefault(now),
	}
}

// NewConfirmationCode - "TB-" и 8 hex символов случайного UUID
func NewConfirmationCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TB-" + strings.ToUpper(id[:8])
}

func (uc *TransportBookingUseCase) Create(ctx context.Context, req dto.CreateTransportBookingRequest) (*domain.TransportBooking, error) {
	date, err := parseDate("booking_date", req.BookingDate)
	if err != nil {
		return nil, err
	}
	pickup, err := normalizeTime("pickup_time", req.PickupTime)
	if err != nil {
		return nil, err
	}

	b := &domain.TransportBooking{
		UserID:           req.UserID,
		ItineraryID:      req.ItineraryID,
		ServiceType:      domain.ServiceType(req.ServiceType),
		ProviderName:     req.ProviderName,
		ProviderContact:  req.ProviderContact,
		BookingDate:      date,
		PickupTime:       pickup,
		PickupLocation:   req.PickupLocation,
		DropoffLocation:  req.DropoffLocation,
		Passengers:       req.Passengers,
		SpecialRequests:  req.SpecialRequests,
		ConfirmationCode: req.ConfirmationCode,
		Status:           domain.BookingPending,
		Cost:             req.Cost,
		PaymentStatus:    domain.PaymentUnpaid,
	}
	if b.Passengers == 0 {
		b.Passengers = 1
	}
	if req.PaymentStatus != "" {
		b.PaymentStatus = domain.PaymentStatus(req.PaymentStatus)
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.users.GetByID(ctx, b.UserID); err != nil {
			return err
		}
		if b.ItineraryID != nil {
			if _, err := uc.itineraries.GetByID(ctx, *b.ItineraryID); err != nil {
				return err
			}
		}

		now := uc.now()
		b.CreatedAt = now
		if err := uc.bookings.Create(ctx, b); err != nil {
			return err
		}
		return touch(ctx, uc.itineraries, b.ItineraryID, now)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateForItinerary - создание из-под маршрута, itinerary_id берётся из пути
func (uc *TransportBookingUseCase) CreateForItinerary(ctx context.Context, itineraryID int64, req dto.CreateTransportBookingRequest) (*domain.TransportBooking, error) {
	req.ItineraryID = &itineraryID
	return uc.Create(ctx, req)
}

func (uc *TransportBookingUseCase) Get(ctx context.Context, id int64) (*domain.TransportBooking, error) {
	return uc.bookings.GetByID(ctx, id)
}

func (uc *TransportBookingUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.TransportBooking, error) {
	return uc.bookings.ListByUser(ctx, userID)
}

func (uc *TransportBookingUseCase) ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.TransportBooking, error) {
	if _, err := uc.itineraries.GetByID(ctx, itineraryID); err != nil {
		return nil, err
	}
	return uc.bookings.ListByItinerary(ctx, itineraryID)
}

// Update changes everything but the status. Moving the booking to another
// itinerary touches both the old and the new one.
func (uc *TransportBookingUseCase) Update(ctx context.Context, id int64, req dto.UpdateTransportBookingRequest) (*domain.TransportBooking, error) {
	pickup, err := normalizeTime("pickup_time", req.PickupTime)
	if err != nil {
		return nil, err
	}

	var b *domain.TransportBooking
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if b, err = uc.bookings.GetByID(ctx, id); err != nil {
			return err
		}
		previous := b.ItineraryID

		if req.ItineraryID != nil {
			if _, err := uc.itineraries.GetByID(ctx, *req.ItineraryID); err != nil {
				return err
			}
			b.ItineraryID = req.ItineraryID
		}
		if req.BookingDate != nil {
			if b.BookingDate, err = parseDate("booking_date", *req.BookingDate); err != nil {
				return err
			}
		}
		if req.ServiceType != nil {
			b.ServiceType = domain.ServiceType(*req.ServiceType)
		}
		if req.ProviderName != nil {
			b.ProviderName = req.ProviderName
		}
		if req.ProviderContact != nil {
			b.ProviderContact = req.ProviderContact
		}
		if req.PickupTime != nil {
			b.PickupTime = pickup
		}
		if req.PickupLocation != nil {
			b.PickupLocation = *req.PickupLocation
		}
		if req.DropoffLocation != nil {
			b.DropoffLocation = req.DropoffLocation
		}
		if req.Passengers != nil {
			b.Passengers = *req.Passengers
		}
		if req.SpecialRequests != nil {
			b.SpecialRequests = req.SpecialRequests
		}
		if req.ConfirmationCode != nil {
			b.ConfirmationCode = req.ConfirmationCode
		}
		if req.Cost != nil {
			b.Cost = req.Cost
		}
		if req.PaymentStatus != nil {
			b.PaymentStatus = domain.PaymentStatus(*req.PaymentStatus)
		}

		now := uc.now()
		b.UpdatedAt = now
		if err := uc.bookings.Update(ctx, b); err != nil {
			return err
		}
		if previous != nil && (b.ItineraryID == nil || *previous != *b.ItineraryID) {
			if err := touch(ctx, uc.itineraries, previous, now); err != nil {
				return err
			}
		}
		return touch(ctx, uc.itineraries, b.ItineraryID, now)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus applies one step of the booking state machine. Confirming a
// booking without a confirmation code generates one.
func (uc *TransportBookingUseCase) UpdateStatus(ctx context.Context, id int64, req dto.UpdateBookingStatusRequest) (*domain.TransportBooking, error) {
	target := domain.BookingStatus(req.Status)

	var b *domain.TransportBooking
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if b, err = uc.bookings.GetByID(ctx, id); err != nil {
			return err
		}
		if !b.Status.CanTransitionTo(target) {
			return errors.ErrInvalidStatusTransition.WithDetails(map[string]interface{}{
				"from": b.Status,
				"to":   target,
			})
		}

		from := b.Status
		b.Status = target
		if target == domain.BookingConfirmed && (b.ConfirmationCode == nil || *b.ConfirmationCode == "") {
			code := NewConfirmationCode()
			b.ConfirmationCode = &code
		}

		now := uc.now()
		b.UpdatedAt = now
		if err := uc.bookings.UpdateStatus(ctx, b, from); err != nil {
			return err
		}
		return touch(ctx, uc.itineraries, b.ItineraryID, now)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Transport booking status changed",
		zap.Int64("booking_id", id),
		zap.String("status", string(target)))
	return b, nil
}

func (uc *TransportBookingUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := uc.bookings.Delete(ctx, id); err != nil {
			return err
		}
		return touch(ctx, uc.itineraries, b.ItineraryID, uc.now())
	})
}
