package repository

import (
	"context"

	"github.com/tourism-directory/internal/domain"
)

// RoutingRepository - источник пешеходных расстояний между точками (Mapbox)
type RoutingRepository interface {
	GetWalkingMatrix(ctx context.Context, origins, destinations []domain.Coordinate) (*domain.MatrixResponse, error)
}
