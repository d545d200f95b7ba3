package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/usecase/dto"
)

func bookingRequest(userID int64) dto.CreateTransportBookingRequest {
	return dto.CreateTransportBookingRequest{
		UserID:         userID,
		ServiceType:    "shuttle",
		BookingDate:    "2025-07-10",
		PickupLocation: "JKIA",
	}
}

func TestTransportBookingUseCase_CreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	it := env.itinerary(t)
	before := env.updatedAt(t, it.ID)

	req := bookingRequest(it.UserID)
	req.PickupTime = utils.Ptr("7:05")
	b, err := env.bookings.CreateForItinerary(env.ctx, it.ID, req)
	require.NoError(t, err)

	assert.Equal(t, 1, b.Passengers)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
	assert.Equal(t, "07:05", *b.PickupTime)
	require.NotNil(t, b.ItineraryID)
	assert.Equal(t, it.ID, *b.ItineraryID)
	assert.True(t, env.updatedAt(t, it.ID).After(before))
}

func TestTransportBookingUseCase_PersonalBooking(t *testing.T) {
	env := newTestEnv(t)
	it := env.itinerary(t)
	before := env.updatedAt(t, it.ID)

	b, err := env.bookings.Create(env.ctx, bookingRequest(it.UserID))
	require.NoError(t, err)
	assert.Nil(t, b.ItineraryID)
	assert.Equal(t, before, env.updatedAt(t, it.ID))

	list, err := env.bookings.ListByUser(env.ctx, it.UserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTransportBookingUseCase_CreateForMissingItinerary(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "traveller")

	_, err := env.bookings.CreateForItinerary(env.ctx, 404, bookingRequest(u.ID))
	requireCode(t, err, errors.ErrItineraryNotFound)

	list, err := env.bookings.ListByUser(env.ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransportBookingUseCase_UpdateMovesItinerary(t *testing.T) {
	env := newTestEnv(t)
	from := env.itinerary(t)
	to := env.itinerary(t)

	b, err := env.bookings.CreateForItinerary(env.ctx, from.ID, bookingRequest(from.UserID))
	require.NoError(t, err)
	fromBefore, toBefore := env.updatedAt(t, from.ID), env.updatedAt(t, to.ID)

	updated, err := env.bookings.Update(env.ctx, b.ID, dto.UpdateTransportBookingRequest{
		ItineraryID: &to.ID,
		Passengers:  utils.Ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Passengers)
	assert.Equal(t, to.ID, *updated.ItineraryID)
	assert.Equal(t, domain.BookingPending, updated.Status)

	assert.True(t, env.updatedAt(t, from.ID).After(fromBefore))
	assert.True(t, env.updatedAt(t, to.ID).After(toBefore))
}

func TestTransportBookingUseCase_DeleteTouchesItinerary(t *testing.T) {
	env := newTestEnv(t)
	it := env.itinerary(t)
	b, err := env.bookings.CreateForItinerary(env.ctx, it.ID, bookingRequest(it.UserID))
	require.NoError(t, err)
	before := env.updatedAt(t, it.ID)

	require.NoError(t, env.bookings.Delete(env.ctx, b.ID))
	assert.True(t, env.updatedAt(t, it.ID).After(before))

	_, err = env.bookings.Get(env.ctx, b.ID)
	requireCode(t, err, errors.ErrBookingNotFound)
}

func TestTransportBookingUseCase_StatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	it := env.itinerary(t)
	b, err := env.bookings.CreateForItinerary(env.ctx, it.ID, bookingRequest(it.UserID))
	require.NoError(t, err)

	set := func(status string) (*domain.TransportBooking, error) {
		return env.bookings.UpdateStatus(env.ctx, b.ID, dto.UpdateBookingStatusRequest{Status: status})
	}

	_, err = set("completed")
	requireCode(t, err, errors.ErrInvalidStatusTransition)

	before := env.updatedAt(t, it.ID)
	confirmed, err := set("confirmed")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmationCode)
	assert.Regexp(t, `^TB-[0-9A-F]{8}$`, *confirmed.ConfirmationCode)
	assert.True(t, env.updatedAt(t, it.ID).After(before))

	completed, err := set("completed")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, completed.Status)
	assert.Equal(t, *confirmed.ConfirmationCode, *completed.ConfirmationCode)

	_, err = set("cancelled")
	requireCode(t, err, errors.ErrInvalidStatusTransition)
}

func TestTransportBookingUseCase_ConfirmKeepsSuppliedCode(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "traveller")
	req := bookingRequest(u.ID)
	req.ConfirmationCode = utils.Ptr("UBER-123")

	b, err := env.bookings.Create(env.ctx, req)
	require.NoError(t, err)

	confirmed, err := env.bookings.UpdateStatus(env.ctx, b.ID, dto.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "UBER-123", *confirmed.ConfirmationCode)

	cancelled, err := env.bookings.UpdateStatus(env.ctx, b.ID, dto.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
}

// interleavedBookings runs afterRead once, right after the first read has
// returned its snapshot, to simulate a status change committed in between.
type interleavedBookings struct {
	repository.TransportBookingRepository
	afterRead func(ctx context.Context)
}

func (r *interleavedBookings) GetByID(ctx context.Context, id int64) (*domain.TransportBooking, error) {
	b, err := r.TransportBookingRepository.GetByID(ctx, id)
	if r.afterRead != nil {
		r.afterRead(ctx)
		r.afterRead = nil
	}
	return b, err
}

// setStatus commits a status change straight through the store
func (e *testEnv) setStatus(t *testing.T, ctx context.Context, id int64, from, to domain.BookingStatus) {
	t.Helper()
	b, err := e.store.Bookings().GetByID(ctx, id)
	require.NoError(t, err)
	b.Status = to
	b.UpdatedAt = e.clock.Now()
	require.NoError(t, e.store.Bookings().UpdateStatus(ctx, b, from))
}

func (e *testEnv) bookingUseCase(bookings repository.TransportBookingRepository) *usecase.TransportBookingUseCase {
	return usecase.NewTransportBookingUseCase(
		e.store.Transactor(), bookings, e.store.Itineraries(), e.store.Users(), zap.NewNop(), e.clock.Now,
	)
}

func TestTransportBookingUseCase_StaleStatusCannotOverwrite(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "traveller")
	b, err := env.bookings.Create(env.ctx, bookingRequest(u.ID))
	require.NoError(t, err)
	_, err = env.bookings.UpdateStatus(env.ctx, b.ID, dto.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	// Пока запрос держит снимок confirmed, поездка завершается
	uc := env.bookingUseCase(&interleavedBookings{
		TransportBookingRepository: env.store.Bookings(),
		afterRead: func(ctx context.Context) {
			env.setStatus(t, ctx, b.ID, domain.BookingConfirmed, domain.BookingCompleted)
		},
	})

	_, err = uc.UpdateStatus(env.ctx, b.ID, dto.UpdateBookingStatusRequest{Status: "cancelled"})
	requireCode(t, err, errors.ErrInvalidStatusTransition)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.BookingCompleted, appErr.Details["from"])

	got, err := env.bookings.Get(env.ctx, b.ID)
	require.NoError(t, err)
	assert.NotEqual(t, domain.BookingCancelled, got.Status)
}

func TestTransportBookingUseCase_UpdateKeepsConcurrentStatus(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "traveller")
	b, err := env.bookings.Create(env.ctx, bookingRequest(u.ID))
	require.NoError(t, err)

	uc := env.bookingUseCase(&interleavedBookings{
		TransportBookingRepository: env.store.Bookings(),
		afterRead: func(ctx context.Context) {
			env.setStatus(t, ctx, b.ID, domain.BookingPending, domain.BookingCancelled)
		},
	})

	updated, err := uc.Update(env.ctx, b.ID, dto.UpdateTransportBookingRequest{Passengers: utils.Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Passengers)
	assert.Equal(t, domain.BookingCancelled, updated.Status)

	got, err := env.bookings.Get(env.ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	assert.Equal(t, 3, got.Passengers)
}

func TestNewConfirmationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := usecase.NewConfirmationCode()
		assert.Regexp(t, `^TB-[0-9A-F]{8}$`, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45)
}
