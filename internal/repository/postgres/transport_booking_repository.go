package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

const bookingColumns = `
	id, user_id, itinerary_id, service_type, provider_name, provider_contact,
	booking_date, pickup_time, pickup_location, dropoff_location, passengers,
	special_requests, confirmation_code, status, cost, payment_status,
	created_at, updated_at`

type transportBookingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTransportBookingRepository(db *DB) repository.TransportBookingRepository {
	return &transportBookingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *transportBookingRepository) Create(ctx context.Context, b *domain.TransportBooking) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO transport_bookings (
			user_id, itinerary_id, service_type, provider_name, provider_contact,
			booking_date, pickup_time, pickup_location, dropoff_location, passengers,
			special_requests, confirmation_code, status, cost, payment_status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		RETURNING id`,
		b.UserID, b.ItineraryID, b.ServiceType, b.ProviderName, b.ProviderContact,
		b.BookingDate, b.PickupTime, b.PickupLocation, b.DropoffLocation, b.Passengers,
		b.SpecialRequests, b.ConfirmationCode, b.Status, b.Cost, b.PaymentStatus,
		b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		r.logger.Error("Failed to create transport booking", zap.Int64("user_id", b.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	b.UpdatedAt = b.CreatedAt
	return nil
}

func (r *transportBookingRepository) GetByID(ctx context.Context, id int64) (*domain.TransportBooking, error) {
	var b domain.TransportBooking
	err := conn(ctx, r.db).GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM transport_bookings WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBookingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get transport booking", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &b, nil
}

func (r *transportBookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.TransportBooking, error) {
	var list []*domain.TransportBooking
	err := conn(ctx, r.db).SelectContext(ctx, &list,
		`SELECT `+bookingColumns+` FROM transport_bookings WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		r.logger.Error("Failed to list transport bookings by user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return list, nil
}

func (r *transportBookingRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.TransportBooking, error) {
	var list []*domain.TransportBooking
	err := conn(ctx, r.db).SelectContext(ctx, &list,
		`SELECT `+bookingColumns+` FROM transport_bookings WHERE itinerary_id = $1 ORDER BY id`, itineraryID)
	if err != nil {
		r.logger.Error("Failed to list transport bookings by itinerary",
			zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return list, nil
}

func (r *transportBookingRepository) Update(ctx context.Context, b *domain.TransportBooking) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		UPDATE transport_bookings SET
			itinerary_id = $2, service_type = $3, provider_name = $4, provider_contact = $5,
			booking_date = $6, pickup_time = $7, pickup_location = $8, dropoff_location = $9,
			passengers = $10, special_requests = $11, confirmation_code = $12,
			cost = $13, payment_status = $14, updated_at = $15
		WHERE id = $1
		RETURNING status`,
		b.ID, b.ItineraryID, b.ServiceType, b.ProviderName, b.ProviderContact,
		b.BookingDate, b.PickupTime, b.PickupLocation, b.DropoffLocation,
		b.Passengers, b.SpecialRequests, b.ConfirmationCode,
		b.Cost, b.PaymentStatus, b.UpdatedAt,
	).Scan(&b.Status)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrBookingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update transport booking", zap.Int64("id", b.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// UpdateStatus - условный UPDATE по ожидаемому статусу, как у claimRepository.Resolve
func (r *transportBookingRepository) UpdateStatus(ctx context.Context, b *domain.TransportBooking, from domain.BookingStatus) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE transport_bookings SET status = $3, confirmation_code = $4, updated_at = $5
		WHERE id = $1 AND status = $2`,
		b.ID, from, b.Status, b.ConfirmationCode, b.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to update transport booking status", zap.Int64("id", b.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		current, err := r.GetByID(ctx, b.ID)
		if err != nil {
			return err
		}
		return errors.ErrInvalidStatusTransition.WithDetails(map[string]interface{}{
			"from": current.Status,
			"to":   b.Status,
		})
	}
	return nil
}

func (r *transportBookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM transport_bookings WHERE id = $1`, id)
	return affected(r.logger, res, err, "delete transport booking", id, errors.ErrBookingNotFound)
}

func (r *transportBookingRepository) DetachFromItinerary(ctx context.Context, itineraryID int64) (int64, error) {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE transport_bookings SET itinerary_id = NULL WHERE itinerary_id = $1`, itineraryID)
	if err != nil {
		r.logger.Error("Failed to detach transport bookings",
			zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return n, nil
}
