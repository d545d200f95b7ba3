package domain

import "time"

// Business - заведение каталога (отель, ресторан, достопримечательность)
type Business struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Address         string    `json:"address" db:"address"`
	City            string    `json:"city" db:"city"`
	Latitude        float64   `json:"latitude" db:"latitude"`
	Longitude       float64   `json:"longitude" db:"longitude"`
	CategoryID      int64     `json:"category_id" db:"category_id"`
	OwnerID         *int64    `json:"owner_id,omitempty" db:"owner_id"`
	Claimed         bool      `json:"claimed" db:"claimed"`
	Rating          *float64  `json:"rating,omitempty" db:"rating"`
	PriceLevel      *int      `json:"price_level,omitempty" db:"price_level"`
	Website         *string   `json:"website,omitempty" db:"website"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	Images          []string  `json:"images" db:"images"`
	Tags            []string  `json:"tags" db:"tags"`
	Amenities       []string  `json:"amenities" db:"amenities"`
	ExternalPlaceID *string   `json:"external_place_id,omitempty" db:"external_place_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Claim marks the business as owned by userID.
func (b *Business) Claim(userID int64) {
	b.Claimed = true
	b.OwnerID = &userID
}

// Category - справочник категорий, заполняется при старте
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Icon string `json:"icon" db:"icon"`
}
