package usecase

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/infrastructure/mapbox"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase/dto"
)

// RouteUseCase строит пешеходный маршрут между заведениями дня
type RouteUseCase struct {
	days       repository.ItineraryDayRepository
	items      repository.ItineraryItemRepository
	businesses repository.BusinessRepository
	routing    repository.RoutingRepository
	logger     *zap.Logger
}

// NewRouteUseCase - routing может быть nil (нет токена Mapbox), тогда считаем по прямой
func NewRouteUseCase(
	days repository.ItineraryDayRepository,
	items repository.ItineraryItemRepository,
	businesses repository.BusinessRepository,
	routing repository.RoutingRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		days:       days,
		items:      items,
		businesses: businesses,
		routing:    routing,
		logger:     logger,
	}
}

type routeStop struct {
	itemID int64
	point  domain.Coordinate
}

// DayRoute returns legs between consecutive items of the day that reference a
// business, in the day's item order.
func (uc *RouteUseCase) DayRoute(ctx context.Context, dayID int64) (*dto.DayRoute, error) {
	if _, err := uc.days.GetByID(ctx, dayID); err != nil {
		return nil, err
	}

	items, err := uc.items.ListByDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	domain.SortItems(items)

	stops := make([]routeStop, 0, len(items))
	for _, it := range items {
		if it.BusinessID == nil {
			continue
		}
		b, err := uc.businesses.GetByID(ctx, *it.BusinessID)
		if err != nil {
			return nil, err
		}
		stops = append(stops, routeStop{
			itemID: it.ID,
			point:  domain.Coordinate{Lat: b.Latitude, Lon: b.Longitude},
		})
	}

	route := &dto.DayRoute{DayID: dayID, Legs: []domain.RouteLeg{}}
	if len(stops) < 2 {
		return route, nil
	}

	legs, ok := uc.walkingLegs(ctx, stops)
	if !ok {
		legs = straightLegs(stops)
	}
	route.Legs = legs
	for _, l := range legs {
		route.TotalDistanceKm += l.DistanceKm
	}
	route.TotalDistanceKm = round3(route.TotalDistanceKm)
	return route, nil
}

// walkingLegs запрашивает у Mapbox матрицу stops[:n-1] x stops[1:];
// расстояние i-го перехода лежит на диагонали
func (uc *RouteUseCase) walkingLegs(ctx context.Context, stops []routeStop) ([]domain.RouteLeg, bool) {
	n := len(stops)
	if uc.routing == nil || 2*(n-1) > mapbox.MaxMatrixPoints {
		return nil, false
	}

	origins := make([]domain.Coordinate, 0, n-1)
	destinations := make([]domain.Coordinate, 0, n-1)
	for i := 0; i < n-1; i++ {
		origins = append(origins, stops[i].point)
		destinations = append(destinations, stops[i+1].point)
	}

	matrix, err := uc.routing.GetWalkingMatrix(ctx, origins, destinations)
	if err != nil {
		uc.logger.Warn("Walking matrix unavailable, falling back to haversine", zap.Error(err))
		return nil, false
	}

	legs := make([]domain.RouteLeg, 0, n-1)
	for i := 0; i < n-1; i++ {
		if i >= len(matrix.Distances[i]) {
			uc.logger.Warn("Walking matrix is incomplete, falling back to haversine", zap.Int("row", i))
			return nil, false
		}
		distance := matrix.Distances[i][i]
		if distance == nil {
			uc.logger.Debug("No walking route for leg, using haversine",
				zap.Int64("from_item_id", stops[i].itemID),
				zap.Int64("to_item_id", stops[i+1].itemID))
			legs = append(legs, straightLeg(stops[i], stops[i+1]))
			continue
		}
		leg := domain.RouteLeg{
			FromItemID: stops[i].itemID,
			ToItemID:   stops[i+1].itemID,
			DistanceKm: round3(*distance / 1000),
			Source:     domain.RouteSourceMapbox,
		}
		if i < len(matrix.Durations) && i < len(matrix.Durations[i]) && matrix.Durations[i][i] != nil {
			d := *matrix.Durations[i][i]
			leg.DurationSec = &d
		}
		legs = append(legs, leg)
	}
	return legs, true
}

func straightLegs(stops []routeStop) []domain.RouteLeg {
	legs := make([]domain.RouteLeg, 0, len(stops)-1)
	for i := 0; i+1 < len(stops); i++ {
		legs = append(legs, straightLeg(stops[i], stops[i+1]))
	}
	return legs
}

func straightLeg(from, to routeStop) domain.RouteLeg {
	a, b := from.point, to.point
	return domain.RouteLeg{
		FromItemID: from.itemID,
		ToItemID:   to.itemID,
		DistanceKm: round3(utils.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)),
		Source:     domain.RouteSourceHaversine,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
