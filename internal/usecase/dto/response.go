package dto

import "github.com/tourism-directory/internal/domain"

// BusinessResult - заведение в выдаче поиска; distance_km только при гео-поиске
type BusinessResult struct {
	*domain.Business
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// DayWithItems - день с пунктами, отсортированными по времени начала
type DayWithItems struct {
	*domain.ItineraryDay
	Items []*domain.ItineraryItem `json:"items"`
}

// ItineraryDetails - маршрут целиком
type ItineraryDetails struct {
	*domain.Itinerary
	Days              []DayWithItems             `json:"days"`
	Collaborators     []*domain.Collaborator     `json:"collaborators"`
	TransportBookings []*domain.TransportBooking `json:"transport_bookings"`
}

// DayRoute - пешеходный маршрут между заведениями дня
type DayRoute struct {
	DayID           int64             `json:"day_id"`
	Legs            []domain.RouteLeg `json:"legs"`
	TotalDistanceKm float64           `json:"total_distance_km"`
}

// SeedResult - результат загрузки демо-данных
type SeedResult struct {
	Seeded     bool `json:"seeded"`
	Categories int  `json:"categories"`
	Businesses int  `json:"businesses"`
}

// HealthResponse - состояние зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
