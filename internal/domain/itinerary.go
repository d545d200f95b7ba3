package domain

import (
	"encoding/json"
	"sort"
	"time"
)

type Itinerary struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	StartDate   Date      `json:"start_date" db:"start_date"`
	EndDate     Date      `json:"end_date" db:"end_date"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	CoverImage  *string   `json:"cover_image,omitempty" db:"cover_image"`
	TotalBudget *float64  `json:"total_budget,omitempty" db:"total_budget"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Contains reports whether date falls within the itinerary dates (inclusive).
func (i *Itinerary) Contains(date Date) bool {
	return !date.Before(i.StartDate.Time) && !date.After(i.EndDate.Time)
}

// DayNumber - номер дня, считается от даты начала поездки, начиная с 1
func (i *Itinerary) DayNumber(date Date) int {
	return date.DaysSince(i.StartDate) + 1
}

type ItineraryDay struct {
	ID          int64     `json:"id" db:"id"`
	ItineraryID int64     `json:"itinerary_id" db:"itinerary_id"`
	DayNumber   int       `json:"day_number" db:"day_number"`
	Date        Date      `json:"date" db:"date"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ItemType string

const (
	ItemActivity       ItemType = "activity"
	ItemAccommodation  ItemType = "accommodation"
	ItemTransportation ItemType = "transportation"
	ItemCustom         ItemType = "custom"
)

type ItineraryItem struct {
	ID          int64           `json:"id" db:"id"`
	DayID       int64           `json:"day_id" db:"day_id"`
	BusinessID  *int64          `json:"business_id,omitempty" db:"business_id"`
	Type        ItemType        `json:"type" db:"type"`
	Title       string          `json:"title" db:"title"`
	Description *string         `json:"description,omitempty" db:"description"`
	StartTime   *string         `json:"start_time,omitempty" db:"start_time"`
	EndTime     *string         `json:"end_time,omitempty" db:"end_time"`
	Location    *string         `json:"location,omitempty" db:"location"`
	Cost        *float64        `json:"cost,omitempty" db:"cost"`
	Reservation *string         `json:"reservation_confirmation,omitempty" db:"reservation_confirmation"`
	Details     json.RawMessage `json:"details,omitempty" db:"-"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// SortItems orders items by start time ascending; items without a start time go last.
// Items with equal keys keep their relative order.
func SortItems(items []*ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].StartTime, items[j].StartTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			// "HH:MM" сравнивается лексикографически
			return *a < *b
		}
	})
}

type AccessLevel string

const (
	AccessView AccessLevel = "view"
	AccessEdit AccessLevel = "edit"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
)

// Collaborator - участник чужого маршрута; ключ (itinerary_id, email)
type Collaborator struct {
	ItineraryID  int64        `json:"itinerary_id" db:"itinerary_id"`
	Email        string       `json:"email" db:"email"`
	Name         *string      `json:"name,omitempty" db:"name"`
	AccessLevel  AccessLevel  `json:"access_level" db:"access_level"`
	InviteStatus InviteStatus `json:"invite_status" db:"invite_status"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}
