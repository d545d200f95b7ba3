package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/search"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/usecase/dto"
)

func createBusinessRequest(categoryID int64, name string) dto.CreateBusinessRequest {
	return dto.CreateBusinessRequest{
		Name:       name,
		Latitude:   utils.Ptr(-1.2921),
		Longitude:  utils.Ptr(36.8219),
		CategoryID: categoryID,
	}
}

func TestBusinessUseCase_SearchExamples(t *testing.T) {
	env := newTestEnv(t)
	env.category(t, "Hotels")
	restaurants := env.category(t, "Restaurants")

	req := createBusinessRequest(restaurants.ID, "Boma Restaurant")
	req.Rating = utils.Ptr(4.6)
	req.PriceLevel = utils.Ptr(45)
	boma, err := env.businesses.Create(env.ctx, req)
	require.NoError(t, err)
	require.Equal(t, int64(2), boma.CategoryID)

	results, err := env.businesses.Search(env.ctx, search.Filter{
		MinRating:  utils.Ptr(4.5),
		CategoryID: utils.Ptr(int64(2)),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, boma.ID, results[0].ID)
	assert.Nil(t, results[0].DistanceKm)

	results, err = env.businesses.Search(env.ctx, search.Filter{MinRating: utils.Ptr(4.7)})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = env.businesses.Search(env.ctx, search.Filter{
		Near: &search.GeoPoint{Lat: -1.2864, Lon: 36.8172, RadiusKm: search.DefaultRadiusKm},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].DistanceKm)
	assert.InDelta(t, 0.82, *results[0].DistanceKm, 0.01)
}

func TestBusinessUseCase_SearchStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.store.FailOn("businesses.List", errors.ErrDatabaseError)

	_, err := env.businesses.Search(env.ctx, search.Filter{})
	requireCode(t, err, errors.ErrDatabaseError)
}

func TestBusinessUseCase_Create(t *testing.T) {
	env := newTestEnv(t)
	cat := env.category(t, "Hotels")
	owner := env.user(t, "owner")

	t.Run("with owner is claimed", func(t *testing.T) {
		req := createBusinessRequest(cat.ID, "Lodge")
		req.OwnerID = &owner.ID
		b, err := env.businesses.Create(env.ctx, req)
		require.NoError(t, err)
		assert.True(t, b.Claimed)
		assert.Equal(t, owner.ID, *b.OwnerID)
	})

	t.Run("without owner is unclaimed", func(t *testing.T) {
		b, err := env.businesses.Create(env.ctx, createBusinessRequest(cat.ID, "Camp"))
		require.NoError(t, err)
		assert.False(t, b.Claimed)
		assert.Nil(t, b.OwnerID)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := env.businesses.Create(env.ctx, createBusinessRequest(99, "Nowhere"))
		requireCode(t, err, errors.ErrCategoryNotFound)
	})

	t.Run("unknown owner", func(t *testing.T) {
		req := createBusinessRequest(cat.ID, "Ghost")
		req.OwnerID = utils.Ptr(int64(99))
		_, err := env.businesses.Create(env.ctx, req)
		requireCode(t, err, errors.ErrUserNotFound)
	})

	t.Run("duplicate external id", func(t *testing.T) {
		req := createBusinessRequest(cat.ID, "Imported")
		req.ExternalPlaceID = utils.Ptr("osm:1")
		_, err := env.businesses.Create(env.ctx, req)
		require.NoError(t, err)

		_, err = env.businesses.Create(env.ctx, req)
		requireCode(t, err, errors.ErrValidation)
	})
}

func TestBusinessUseCase_Update(t *testing.T) {
	env := newTestEnv(t)
	cat := env.category(t, "Hotels")
	b, err := env.businesses.Create(env.ctx, createBusinessRequest(cat.ID, "Lodge"))
	require.NoError(t, err)

	updated, err := env.businesses.Update(env.ctx, b.ID, dto.UpdateBusinessRequest{
		Rating:    utils.Ptr(4.2),
		Amenities: []string{"wifi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Lodge", updated.Name)
	assert.Equal(t, 4.2, *updated.Rating)
	assert.Equal(t, []string{"wifi"}, updated.Amenities)
	assert.True(t, updated.UpdatedAt.After(b.CreatedAt))

	_, err = env.businesses.Update(env.ctx, b.ID, dto.UpdateBusinessRequest{CategoryID: utils.Ptr(int64(77))})
	requireCode(t, err, errors.ErrCategoryNotFound)

	_, err = env.businesses.Update(env.ctx, 404, dto.UpdateBusinessRequest{})
	requireCode(t, err, errors.ErrBusinessNotFound)
}

func TestCategoryUseCase_List(t *testing.T) {
	env := newTestEnv(t)
	env.category(t, "Hotels")
	ttl := 10 * time.Minute

	t.Run("cache hit", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cached := []*domain.Category{{ID: 7, Name: "Cached"}}
		cache.On("GetCategories", env.ctx).Return(cached, nil)

		uc := usecase.NewCategoryUseCase(env.store.Categories(), cache, ttl, zap.NewNop())
		got, err := uc.List(env.ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
		cache.AssertNotCalled(t, "SetCategories", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("GetCategories", env.ctx).Return(nil, nil)
		cache.On("SetCategories", env.ctx, mock.AnythingOfType("[]*domain.Category"), ttl).Return(nil)

		uc := usecase.NewCategoryUseCase(env.store.Categories(), cache, ttl, zap.NewNop())
		got, err := uc.List(env.ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Hotels", got[0].Name)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to store", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("GetCategories", env.ctx).Return(nil, errors.ErrCacheError)
		cache.On("SetCategories", env.ctx, mock.Anything, ttl).Return(errors.ErrCacheError)

		uc := usecase.NewCategoryUseCase(env.store.Categories(), cache, ttl, zap.NewNop())
		got, err := uc.List(env.ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no cache", func(t *testing.T) {
		uc := usecase.NewCategoryUseCase(env.store.Categories(), nil, ttl, zap.NewNop())
		got, err := uc.List(env.ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestCategoryUseCase_CreateInvalidatesCache(t *testing.T) {
	env := newTestEnv(t)
	cache := &MockCacheRepository{}
	cache.On("InvalidateCategories", env.ctx).Return(nil).Once()

	uc := usecase.NewCategoryUseCase(env.store.Categories(), cache, time.Minute, zap.NewNop())
	c, err := uc.Create(env.ctx, dto.CreateCategoryRequest{Name: "Tours", Icon: "map"})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	cache.AssertExpectations(t)

	_, err = uc.Create(env.ctx, dto.CreateCategoryRequest{Name: "tours"})
	requireCode(t, err, errors.ErrCategoryExists)
	cache.AssertNumberOfCalls(t, "InvalidateCategories", 1)
}

func TestUserUseCase_Create(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.users.Create(env.ctx, dto.CreateUserRequest{
		Username: "wanjiru",
		Email:    " Wanjiru@Example.COM ",
		Password: "safari-2025",
	})
	require.NoError(t, err)
	assert.Equal(t, "wanjiru@example.com", u.Email)
	assert.Equal(t, domain.RoleTourist, u.Role)
	assert.NotEqual(t, "safari-2025", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("safari-2025")))

	t.Run("duplicate email", func(t *testing.T) {
		_, err := env.users.Create(env.ctx, dto.CreateUserRequest{
			Username: "other", Email: "wanjiru@example.com", Password: "secret1",
		})
		requireCode(t, err, errors.ErrUserExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := env.users.Create(env.ctx, dto.CreateUserRequest{
			Username: "wanjiru", Email: "new@example.com", Password: "secret1",
		})
		requireCode(t, err, errors.ErrUserExists)
	})

	t.Run("explicit role", func(t *testing.T) {
		owner, err := env.users.Create(env.ctx, dto.CreateUserRequest{
			Username: "hotelier", Email: "hotelier@example.com", Password: "secret1", Role: "business_owner",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleBusinessOwner, owner.Role)

		got, err := env.users.Get(env.ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "hotelier", got.Username)
	})
}
