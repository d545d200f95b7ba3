package dto

import "encoding/json"

// CreateBusinessRequest - запрос на создание заведения
type CreateBusinessRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     string   `json:"description" validate:"max=5000"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Latitude        *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	CategoryID      int64    `json:"category_id" validate:"required,min=1"`
	OwnerID         *int64   `json:"owner_id" validate:"omitempty,min=1"`
	Rating          *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	PriceLevel      *int     `json:"price_level" validate:"omitempty,min=0"`
	Website         *string  `json:"website" validate:"omitempty,url"`
	Phone           *string  `json:"phone" validate:"omitempty,max=50"`
	Images          []string `json:"images" validate:"omitempty,dive,url"`
	Tags            []string `json:"tags" validate:"omitempty,dive,min=1"`
	Amenities       []string `json:"amenities" validate:"omitempty,dive,min=1"`
	ExternalPlaceID *string  `json:"external_place_id"`
}

// UpdateBusinessRequest - частичное обновление; отсутствующие поля не меняются
type UpdateBusinessRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	CategoryID  *int64   `json:"category_id" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	PriceLevel  *int     `json:"price_level" validate:"omitempty,min=0"`
	Website     *string  `json:"website" validate:"omitempty,url"`
	Phone       *string  `json:"phone" validate:"omitempty,max=50"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags" validate:"omitempty,dive,min=1"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,min=1"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Icon string `json:"icon" validate:"max=100"`
}

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Role     string  `json:"role" validate:"omitempty,oneof=tourist business_owner admin"`
}

// CreateClaimRequest - заявка на владение заведением
type CreateClaimRequest struct {
	BusinessID  int64   `json:"business_id" validate:"required,min=1"`
	UserID      int64   `json:"user_id" validate:"required,min=1"`
	DocumentURL *string `json:"document_url" validate:"omitempty,url"`
}

// ResolveClaimRequest - решение по заявке
type ResolveClaimRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type CreateItineraryRequest struct {
	UserID      int64    `json:"user_id" validate:"required,min=1"`
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description *string  `json:"description"`
	StartDate   string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsPublic    bool     `json:"is_public"`
	CoverImage  *string  `json:"cover_image" validate:"omitempty,url"`
	TotalBudget *float64 `json:"total_budget" validate:"omitempty,min=0"`
}

type UpdateItineraryRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsPublic    *bool    `json:"is_public"`
	CoverImage  *string  `json:"cover_image" validate:"omitempty,url"`
	TotalBudget *float64 `json:"total_budget" validate:"omitempty,min=0"`
}

type CreateDayRequest struct {
	Date  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Notes *string `json:"notes"`
}

type UpdateDayRequest struct {
	Date  *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes *string `json:"notes"`
}

// CreateItemRequest - пункт дня; время в формате "HH:MM"
type CreateItemRequest struct {
	BusinessID              *int64          `json:"business_id" validate:"omitempty,min=1"`
	Type                    string          `json:"type" validate:"required,oneof=activity accommodation transportation custom"`
	Title                   string          `json:"title" validate:"required,min=1,max=200"`
	Description             *string         `json:"description"`
	StartTime               *string         `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime                 *string         `json:"end_time" validate:"omitempty,datetime=15:04"`
	Location                *string         `json:"location"`
	Cost                    *float64        `json:"cost" validate:"omitempty,min=0"`
	ReservationConfirmation *string         `json:"reservation_confirmation"`
	Details                 json.RawMessage `json:"details" swaggertype:"object"`
}

type UpdateItemRequest struct {
	BusinessID              *int64          `json:"business_id" validate:"omitempty,min=1"`
	Type                    *string         `json:"type" validate:"omitempty,oneof=activity accommodation transportation custom"`
	Title                   *string         `json:"title" validate:"omitempty,min=1,max=200"`
	Description             *string         `json:"description"`
	StartTime               *string         `json:"start_time" validate:"omitnil,eq=|datetime=15:04"` // "" снимает время
	EndTime                 *string         `json:"end_time" validate:"omitnil,eq=|datetime=15:04"`
	Location                *string         `json:"location"`
	Cost                    *float64        `json:"cost" validate:"omitempty,min=0"`
	ReservationConfirmation *string         `json:"reservation_confirmation"`
	Details                 json.RawMessage `json:"details" swaggertype:"object"`
}

type AddCollaboratorRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Name         *string `json:"name"`
	AccessLevel  string  `json:"access_level" validate:"omitempty,oneof=view edit"`
	InviteStatus string  `json:"invite_status" validate:"omitempty,oneof=pending accepted"`
}

type UpdateCollaboratorRequest struct {
	Name         *string `json:"name"`
	AccessLevel  *string `json:"access_level" validate:"omitempty,oneof=view edit"`
	InviteStatus *string `json:"invite_status" validate:"omitempty,oneof=pending accepted"`
}

type CreateTransportBookingRequest struct {
	UserID           int64    `json:"user_id" validate:"required,min=1"`
	ItineraryID      *int64   `json:"itinerary_id" validate:"omitempty,min=1"`
	ServiceType      string   `json:"service_type" validate:"required,oneof=driver taxi shuttle car_rental public_transport"`
	ProviderName     *string  `json:"provider_name"`
	ProviderContact  *string  `json:"provider_contact"`
	BookingDate      string   `json:"booking_date" validate:"required,datetime=2006-01-02"`
	PickupTime       *string  `json:"pickup_time" validate:"omitempty,datetime=15:04"`
	PickupLocation   string   `json:"pickup_location" validate:"required,min=1"`
	DropoffLocation  *string  `json:"dropoff_location"`
	Passengers       int      `json:"passengers" validate:"omitempty,min=1,max=100"`
	SpecialRequests  *string  `json:"special_requests"`
	ConfirmationCode *string  `json:"confirmation_code"`
	Cost             *float64 `json:"cost" validate:"omitempty,min=0"`
	PaymentStatus    string   `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
}

// UpdateTransportBookingRequest - статус меняется только через UpdateBookingStatusRequest
type UpdateTransportBookingRequest struct {
	ItineraryID      *int64   `json:"itinerary_id" validate:"omitempty,min=1"`
	ServiceType      *string  `json:"service_type" validate:"omitempty,oneof=driver taxi shuttle car_rental public_transport"`
	ProviderName     *string  `json:"provider_name"`
	ProviderContact  *string  `json:"provider_contact"`
	BookingDate      *string  `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	PickupTime       *string  `json:"pickup_time" validate:"omitnil,eq=|datetime=15:04"`
	PickupLocation   *string  `json:"pickup_location" validate:"omitempty,min=1"`
	DropoffLocation  *string  `json:"dropoff_location"`
	Passengers       *int     `json:"passengers" validate:"omitempty,min=1,max=100"`
	SpecialRequests  *string  `json:"special_requests"`
	ConfirmationCode *string  `json:"confirmation_code"`
	Cost             *float64 `json:"cost" validate:"omitempty,min=0"`
	PaymentStatus    *string  `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
