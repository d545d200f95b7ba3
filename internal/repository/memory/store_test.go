package memory

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-directory/internal/domain"
)

func TestTransactor_RollsBackOnError(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	cats := store.Categories()

	require.NoError(t, cats.Create(ctx, &domain.Category{Name: "Hotels"}))

	boom := stderrors.New("boom")
	err := store.Transactor().WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, cats.Create(ctx, &domain.Category{Name: "Tours"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := cats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// sequence restored too
	c := &domain.Category{Name: "Restaurants"}
	require.NoError(t, cats.Create(ctx, c))
	assert.Equal(t, int64(2), c.ID)
}

func TestTransactor_NestedJoinsOuter(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	tx := store.Transactor()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return store.Categories().Create(ctx, &domain.Category{Name: "Hotels"})
		})
	})
	require.NoError(t, err)

	n, _ := store.Categories().Count(ctx)
	assert.Equal(t, 1, n)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	b := &domain.Business{Name: "Boma"}
	require.NoError(t, store.Businesses().Create(ctx, b))
	b.Name = "changed after create"

	got, err := store.Businesses().GetByID(ctx, b.ID)
	require.NoError(t, err)
	got.Name = "changed after get"

	again, _ := store.Businesses().GetByID(ctx, b.ID)
	assert.Equal(t, "Boma", again.Name)
}

func TestStore_FailOn(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	boom := stderrors.New("boom")

	store.FailOn("days.Delete", boom)
	assert.ErrorIs(t, store.Days().Delete(ctx, 1), boom)

	store.FailOn("days.Delete", nil)
	assert.Error(t, store.Days().Delete(ctx, 1))
	assert.NotErrorIs(t, store.Days().Delete(ctx, 1), boom)
}

func TestDays_ListOrderedByDayNumber(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, n := range []int{3, 1, 2} {
		require.NoError(t, store.Days().Create(ctx, &domain.ItineraryDay{ItineraryID: 7, DayNumber: n}))
	}

	days, err := store.Days().ListByItinerary(ctx, 7)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{days[0].DayNumber, days[1].DayNumber, days[2].DayNumber})
}
