package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
)

func placeEvent() domain.PlaceImportEvent {
	return domain.PlaceImportEvent{
		RequestID:       uuid.New(),
		ExternalPlaceID: "gplaces:ChIJ-boma",
		Name:            " Boma Restaurant ",
		Latitude:        -1.2921,
		Longitude:       36.8219,
		Category:        "restaurants",
		Rating:          utils.Ptr(4.6),
		Amenities:       []string{"wifi"},
	}
}

func TestImportUseCase_CreateThenUpdate(t *testing.T) {
	env := newTestEnv(t)
	cat := env.category(t, "Restaurants")
	owner := env.user(t, "owner")

	b, created, err := env.imports.ImportPlace(env.ctx, placeEvent())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Boma Restaurant", b.Name)
	assert.Equal(t, cat.ID, b.CategoryID)
	assert.False(t, b.Claimed)

	require.NoError(t, env.store.Businesses().SetOwner(env.ctx, b.ID, owner.ID, env.clock.Now()))

	ev := placeEvent()
	ev.Rating = utils.Ptr(4.8)
	ev.Amenities = []string{"wifi", "parking"}
	again, created, err := env.imports.ImportPlace(env.ctx, ev)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, b.ID, again.ID)

	stored, err := env.store.Businesses().GetByID(env.ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.8, *stored.Rating)
	assert.Equal(t, []string{"wifi", "parking"}, stored.Amenities)
	assert.True(t, stored.Claimed)
	require.NotNil(t, stored.OwnerID)
	assert.Equal(t, owner.ID, *stored.OwnerID)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))

	count, err := env.store.Businesses().Count(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportUseCase_Rejects(t *testing.T) {
	env := newTestEnv(t)
	env.category(t, "Restaurants")

	tests := []struct {
		name   string
		modify func(ev *domain.PlaceImportEvent)
	}{
		{"unknown category", func(ev *domain.PlaceImportEvent) { ev.Category = "Casinos" }},
		{"missing external id", func(ev *domain.PlaceImportEvent) { ev.ExternalPlaceID = "  " }},
		{"missing name", func(ev *domain.PlaceImportEvent) { ev.Name = "" }},
		{"bad coordinates", func(ev *domain.PlaceImportEvent) { ev.Latitude = 91 }},
		{"rating out of range", func(ev *domain.PlaceImportEvent) { ev.Rating = utils.Ptr(5.5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := placeEvent()
			tt.modify(&ev)
			_, _, err := env.imports.ImportPlace(env.ctx, ev)
			requireCode(t, err, errors.ErrValidation)
		})
	}

	count, err := env.store.Businesses().Count(env.ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportUseCase_StoreFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	env.category(t, "Restaurants")
	env.store.FailOn("businesses.Create", errors.ErrDatabaseError)

	_, _, err := env.imports.ImportPlace(env.ctx, placeEvent())
	requireCode(t, err, errors.ErrDatabaseError)

	existing, err := env.store.Businesses().GetByExternalPlaceID(env.ctx, placeEvent().ExternalPlaceID)
	require.NoError(t, err)
	assert.Nil(t, existing)
}
