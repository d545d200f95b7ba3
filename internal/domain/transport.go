package domain

import "time"

type ServiceType string

const (
	ServiceDriver          ServiceType = "driver"
	ServiceTaxi            ServiceType = "taxi"
	ServiceShuttle         ServiceType = "shuttle"
	ServiceCarRental       ServiceType = "car_rental"
	ServicePublicTransport ServiceType = "public_transport"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// bookingTransitions - допустимые переходы статуса бронирования
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether from -> to is an allowed booking status change.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type TransportBooking struct {
	ID               int64         `json:"id" db:"id"`
	UserID           int64         `json:"user_id" db:"user_id"`
	ItineraryID      *int64        `json:"itinerary_id,omitempty" db:"itinerary_id"`
	ServiceType      ServiceType   `json:"service_type" db:"service_type"`
	ProviderName     *string       `json:"provider_name,omitempty" db:"provider_name"`
	ProviderContact  *string       `json:"provider_contact,omitempty" db:"provider_contact"`
	BookingDate      Date          `json:"booking_date" db:"booking_date"`
	PickupTime       *string       `json:"pickup_time,omitempty" db:"pickup_time"`
	PickupLocation   string        `json:"pickup_location" db:"pickup_location"`
	DropoffLocation  *string       `json:"dropoff_location,omitempty" db:"dropoff_location"`
	Passengers       int           `json:"passengers" db:"passengers"`
	SpecialRequests  *string       `json:"special_requests,omitempty" db:"special_requests"`
	ConfirmationCode *string       `json:"confirmation_code,omitempty" db:"confirmation_code"`
	Status           BookingStatus `json:"status" db:"status"`
	Cost             *float64      `json:"cost,omitempty" db:"cost"`
	PaymentStatus    PaymentStatus `json:"payment_status" db:"payment_status"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}
