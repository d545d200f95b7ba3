package domain

// Coordinate - координата для Mapbox Matrix API
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MatrixResponse - ответ Mapbox Directions Matrix API.
// Ячейка nil, если Mapbox не нашёл маршрут между точками.
type MatrixResponse struct {
	Code         string       `json:"code"`
	Distances    [][]*float64 `json:"distances"` // meters
	Durations    [][]*float64 `json:"durations"` // seconds
	Sources      []Location   `json:"sources"`
	Destinations []Location   `json:"destinations"`
}

type Location struct {
	Name     string    `json:"name"`
	Location []float64 `json:"location"`
}

const (
	RouteSourceMapbox    = "mapbox"
	RouteSourceHaversine = "haversine"
)

// RouteLeg - переход между двумя последовательными пунктами дня
type RouteLeg struct {
	FromItemID  int64    `json:"from_item_id"`
	ToItemID    int64    `json:"to_item_id"`
	DistanceKm  float64  `json:"distance_km"`
	DurationSec *float64 `json:"duration_sec,omitempty"`
	Source      string   `json:"source"`
}
