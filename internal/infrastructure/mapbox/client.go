package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/config"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
)

// MaxMatrixPoints - лимит координат в одном запросе Matrix API
const MaxMatrixPoints = 25

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	logger      *zap.Logger
}

// NewMapboxClient создает клиент Mapbox Matrix API для пешеходных маршрутов дня
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		profile:     cfg.WalkingProfile,
		logger:      logger,
	}
}

// GetWalkingMatrix возвращает матрицу пешеходных расстояний (м) и времени (с)
// от каждой точки origins до каждой точки destinations
func (c *client) GetWalkingMatrix(
	ctx context.Context,
	origins []domain.Coordinate,
	destinations []domain.Coordinate,
) (*domain.MatrixResponse, error) {
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, fmt.Errorf("origins and destinations cannot be empty")
	}
	if len(origins)+len(destinations) > MaxMatrixPoints {
		return nil, fmt.Errorf("total coordinates exceed Mapbox limit of %d points", MaxMatrixPoints)
	}

	// сначала origins, потом destinations; в запросе они различаются индексами
	coords := make([]string, 0, len(origins)+len(destinations))
	for _, p := range append(append([]domain.Coordinate{}, origins...), destinations...) {
		coords = append(coords,
			strconv.FormatFloat(p.Lon, 'f', 6, 64)+","+strconv.FormatFloat(p.Lat, 'f', 6, 64))
	}

	query := url.Values{}
	query.Set("sources", indices(0, len(origins)))
	query.Set("destinations", indices(len(origins), len(destinations)))
	query.Set("annotations", "distance,duration")
	query.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/directions-matrix/v1/%s/%s?%s",
		c.baseURL, c.profile, strings.Join(coords, ";"), query.Encode())

	c.logger.Debug("Calling Mapbox Matrix API",
		zap.Int("origins_count", len(origins)),
		zap.Int("destinations_count", len(destinations)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Mapbox request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d", resp.StatusCode)
	}

	var matrix domain.MatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if matrix.Code != "Ok" {
		return nil, fmt.Errorf("mapbox API returned code: %s", matrix.Code)
	}
	if len(matrix.Distances) != len(origins) {
		return nil, fmt.Errorf("mapbox API returned %d distance rows, want %d", len(matrix.Distances), len(origins))
	}

	return &matrix, nil
}

// indices строит "from;from+1;...;from+n-1"
func indices(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(from + i)
	}
	return strings.Join(parts, ";")
}
