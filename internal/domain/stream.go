package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamPlacesImport   = "stream:places:import"
	StreamPlacesImported = "stream:places:imported"
)

// PlaceImportEvent - входящее событие импорта заведения из внешнего источника
type PlaceImportEvent struct {
	RequestID       uuid.UUID `json:"request_id"`
	ExternalPlaceID string    `json:"external_place_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Category        string    `json:"category"`
	Rating          *float64  `json:"rating,omitempty"`
	PriceLevel      *int      `json:"price_level,omitempty"`
	Website         *string   `json:"website,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Images          []string  `json:"images,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	Amenities       []string  `json:"amenities,omitempty"`
}

// PlaceImportDoneEvent - результат импорта
type PlaceImportDoneEvent struct {
	RequestID       uuid.UUID `json:"request_id"`
	ExternalPlaceID string    `json:"external_place_id"`
	BusinessID      int64     `json:"business_id,omitempty"`
	Created         bool      `json:"created"`
	Error           string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
