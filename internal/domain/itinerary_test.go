package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestItinerary_DayNumber(t *testing.T) {
	it := &Itinerary{
		StartDate: mustDate(t, "2025-07-10"),
		EndDate:   mustDate(t, "2025-07-20"),
	}

	assert.Equal(t, 1, it.DayNumber(mustDate(t, "2025-07-10")))
	assert.Equal(t, 4, it.DayNumber(mustDate(t, "2025-07-13")))
	assert.Equal(t, 11, it.DayNumber(mustDate(t, "2025-07-20")))
	// across a month boundary
	it.StartDate = mustDate(t, "2025-02-27")
	assert.Equal(t, 3, it.DayNumber(mustDate(t, "2025-03-01")))
}

func TestItinerary_Contains(t *testing.T) {
	it := &Itinerary{
		StartDate: mustDate(t, "2025-07-10"),
		EndDate:   mustDate(t, "2025-07-12"),
	}

	assert.True(t, it.Contains(mustDate(t, "2025-07-10")))
	assert.True(t, it.Contains(mustDate(t, "2025-07-12")))
	assert.False(t, it.Contains(mustDate(t, "2025-07-09")))
	assert.False(t, it.Contains(mustDate(t, "2025-07-13")))
}

func TestSortItems(t *testing.T) {
	s := func(v string) *string { return &v }
	items := []*ItineraryItem{
		{ID: 1, StartTime: nil},
		{ID: 2, StartTime: s("14:00")},
		{ID: 3, StartTime: s("08:30")},
		{ID: 4, StartTime: nil},
		{ID: 5, StartTime: s("08:30")},
	}

	SortItems(items)

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []int64{3, 5, 2, 1, 4}, ids)
}

func TestDate_JSON(t *testing.T) {
	d := mustDate(t, "2025-07-13")

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-13"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"13/07/2025"`), &back))
}
