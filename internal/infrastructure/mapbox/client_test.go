package mapbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/config"
	"github.com/tourism-directory/internal/domain"
)

func testConfig(baseURL string) *config.MapboxConfig {
	return &config.MapboxConfig{
		AccessToken:    "test_token",
		BaseURL:        baseURL,
		WalkingProfile: "mapbox/walking",
		RequestTimeout: 5,
	}
}

func TestClient_GetWalkingMatrix(t *testing.T) {
	logger := zap.NewNop()

	origins := []domain.Coordinate{
		{Lat: -1.2921, Lon: 36.8219},
		{Lat: -1.2864, Lon: 36.8172},
	}
	destinations := []domain.Coordinate{
		{Lat: -1.2864, Lon: 36.8172},
		{Lat: -1.3733, Lon: 36.8580},
	}

	t.Run("successful request", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string][]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"code":"Ok",` +
				`"distances":[[820,10500],[0,10700]],` +
				`"durations":[[600,7600],[0,7700]]}`))
		}))
		defer server.Close()

		client := NewMapboxClient(testConfig(server.URL), logger)

		result, err := client.GetWalkingMatrix(context.Background(), origins, destinations)
		require.NoError(t, err)
		assert.Equal(t, "Ok", result.Code)
		assert.Equal(t, 820.0, *result.Distances[0][0])
		assert.Equal(t, 10700.0, *result.Distances[1][1])

		assert.Equal(t,
			"/directions-matrix/v1/mapbox/walking/36.821900,-1.292100;36.817200,-1.286400;36.817200,-1.286400;36.858000,-1.373300",
			gotPath)
		assert.Equal(t, []string{"0;1"}, gotQuery["sources"])
		assert.Equal(t, []string{"2;3"}, gotQuery["destinations"])
		assert.Equal(t, []string{"test_token"}, gotQuery["access_token"])
	})

	t.Run("unroutable cells decode as nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"code":"Ok",` +
				`"distances":[[null,10500],[0,10700]],` +
				`"durations":[[null,7600],[0,null]]}`))
		}))
		defer server.Close()

		client := NewMapboxClient(testConfig(server.URL), logger)

		result, err := client.GetWalkingMatrix(context.Background(), origins, destinations)
		require.NoError(t, err)
		assert.Nil(t, result.Distances[0][0])
		assert.Nil(t, result.Durations[0][0])
		assert.Nil(t, result.Durations[1][1])
		require.NotNil(t, result.Distances[1][0])
		assert.Equal(t, 0.0, *result.Distances[1][0])
	})

	t.Run("empty origins", func(t *testing.T) {
		client := NewMapboxClient(testConfig("https://api.mapbox.com"), logger)

		result, err := client.GetWalkingMatrix(context.Background(), nil, destinations)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("exceeds mapbox limit", func(t *testing.T) {
		client := NewMapboxClient(testConfig("https://api.mapbox.com"), logger)

		many := make([]domain.Coordinate, 13)
		result, err := client.GetWalkingMatrix(context.Background(), many, many)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "exceed Mapbox limit")
	})

	t.Run("non-OK status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Not Authorized - Invalid Token"}`))
		}))
		defer server.Close()

		client := NewMapboxClient(testConfig(server.URL), logger)

		result, err := client.GetWalkingMatrix(context.Background(), origins, destinations)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("non-OK code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(domain.MatrixResponse{Code: "NoRoute"})
		}))
		defer server.Close()

		client := NewMapboxClient(testConfig(server.URL), logger)

		_, err := client.GetWalkingMatrix(context.Background(), origins, destinations)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "NoRoute")
	})
}
