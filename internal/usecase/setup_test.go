package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/repository/memory"
	"github.com/tourism-directory/internal/usecase"
)

// stepClock advances by one minute on every call so that each mutation
// gets a strictly later timestamp.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Minute)
	return c.t
}

type testEnv struct {
	ctx   context.Context
	store *memory.Store
	clock *stepClock
	seq   int

	itineraries *usecase.ItineraryUseCase
	bookings    *usecase.TransportBookingUseCase
	businesses  *usecase.BusinessUseCase
	claims      *usecase.ClaimUseCase
	users       *usecase.UserUseCase
	imports     *usecase.ImportUseCase
	seed        *usecase.SeedUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := memory.NewStore()
	clock := newStepClock()
	logger := zap.NewNop()

	return &testEnv{
		ctx:   context.Background(),
		store: s,
		clock: clock,
		itineraries: usecase.NewItineraryUseCase(
			s.Transactor(), s.Itineraries(), s.Days(), s.Items(), s.Collaborators(),
			s.Bookings(), s.Businesses(), s.Users(), logger, clock.Now,
		),
		bookings: usecase.NewTransportBookingUseCase(
			s.Transactor(), s.Bookings(), s.Itineraries(), s.Users(), logger, clock.Now,
		),
		businesses: usecase.NewBusinessUseCase(
			s.Transactor(), s.Businesses(), s.Categories(), s.Users(), logger, clock.Now,
		),
		claims: usecase.NewClaimUseCase(
			s.Transactor(), s.Claims(), s.Businesses(), s.Users(), logger, clock.Now,
		),
		users:   usecase.NewUserUseCase(s.Users(), logger, clock.Now),
		imports: usecase.NewImportUseCase(s.Transactor(), s.Businesses(), s.Categories(), logger, clock.Now),
		seed: usecase.NewSeedUseCase(
			s.Transactor(), s.Categories(), s.Businesses(), s.Users(), s.Itineraries(),
			s.Days(), s.Items(), logger, clock.Now,
		),
	}
}

func (e *testEnv) user(t *testing.T, username string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, Email: username + "@example.com", PasswordHash: "x", Role: domain.RoleTourist}
	require.NoError(t, e.store.Users().Create(e.ctx, u))
	return u
}

func (e *testEnv) category(t *testing.T, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name}
	require.NoError(t, e.store.Categories().Create(e.ctx, c))
	return c
}

func (e *testEnv) business(t *testing.T, name string, categoryID int64, lat, lon float64) *domain.Business {
	t.Helper()
	b := &domain.Business{Name: name, CategoryID: categoryID, Latitude: lat, Longitude: lon}
	require.NoError(t, e.store.Businesses().Create(e.ctx, b))
	return b
}

// itinerary creates a trip from 2025-07-10 to 2025-07-15 owned by a fresh user.
func (e *testEnv) itinerary(t *testing.T) *domain.Itinerary {
	t.Helper()
	e.seq++
	start, _ := domain.ParseDate("2025-07-10")
	end, _ := domain.ParseDate("2025-07-15")
	it := &domain.Itinerary{
		UserID:    e.user(t, fmt.Sprintf("owner%d", e.seq)).ID,
		Title:     "Kenya trip",
		StartDate: start,
		EndDate:   end,
		CreatedAt: e.clock.Now(),
	}
	require.NoError(t, e.store.Itineraries().Create(e.ctx, it))
	return it
}

func (e *testEnv) updatedAt(t *testing.T, itineraryID int64) time.Time {
	t.Helper()
	it, err := e.store.Itineraries().GetByID(e.ctx, itineraryID)
	require.NoError(t, err)
	return it.UpdatedAt
}

func requireCode(t *testing.T, err error, want *errors.AppError) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := errors.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, want.Code, appErr.Code)
}

// MockCacheRepository - мок кеша категорий
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCacheRepository) SetCategories(ctx context.Context, categories []*domain.Category, ttl time.Duration) error {
	args := m.Called(ctx, categories, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateCategories(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockRoutingRepository - мок Mapbox Matrix API
type MockRoutingRepository struct {
	mock.Mock
}

func (m *MockRoutingRepository) GetWalkingMatrix(ctx context.Context, origins, destinations []domain.Coordinate) (*domain.MatrixResponse, error) {
	args := m.Called(ctx, origins, destinations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatrixResponse), args.Error(1)
}
