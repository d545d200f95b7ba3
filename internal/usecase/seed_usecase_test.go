package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/search"
)

func TestSeedUseCase_SeedsOnce(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.seed.Seed(env.ctx)
	require.NoError(t, err)
	assert.True(t, first.Seeded)
	assert.Equal(t, 5, first.Categories)
	assert.Equal(t, 7, first.Businesses)

	second, err := env.seed.Seed(env.ctx)
	require.NoError(t, err)
	assert.False(t, second.Seeded)
	assert.Equal(t, 5, second.Categories)
	assert.Equal(t, 7, second.Businesses)

	results, err := env.businesses.Search(env.ctx, search.Filter{
		MinRating:  utils.Ptr(4.5),
		CategoryID: utils.Ptr(int64(2)),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Boma Restaurant", results[0].Name)

	public, err := env.itineraries.ListPublic(env.ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)

	details, err := env.itineraries.Details(env.ctx, public[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, details.Days)
	items := details.Days[0].Items
	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, *items[i-1].StartTime, *items[i].StartTime)
	}
}

func TestSeedUseCase_SkipsNonEmptyCatalog(t *testing.T) {
	env := newTestEnv(t)
	env.category(t, "Custom")

	res, err := env.seed.Seed(env.ctx)
	require.NoError(t, err)
	assert.False(t, res.Seeded)
	assert.Equal(t, 1, res.Categories)
	assert.Zero(t, res.Businesses)
}

func TestSeedUseCase_RollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	env.store.FailOn("itineraries.Create", errors.ErrDatabaseError)

	_, err := env.seed.Seed(env.ctx)
	requireCode(t, err, errors.ErrDatabaseError)

	categories, err := env.store.Categories().Count(env.ctx)
	require.NoError(t, err)
	assert.Zero(t, categories)
}
