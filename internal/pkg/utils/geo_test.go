package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(-1.2921, 36.8219, -1.2921, 36.8219))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		// 2*pi*6371/360
		assert.InDelta(t, 111.195, HaversineDistance(0, 0, 1, 0), 0.001)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineDistance(-1.2921, 36.8219, -4.0435, 39.6682)
		b := HaversineDistance(-4.0435, 39.6682, -1.2921, 36.8219)
		assert.InDelta(t, a, b, 1e-9)
	})

	t.Run("nairobi to mombasa", func(t *testing.T) {
		assert.InDelta(t, 440, HaversineDistance(-1.2921, 36.8219, -4.0435, 39.6682), 5)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(10))
	assert.False(t, ValidateRadius(0))
	assert.False(t, ValidateRadius(-1))
	assert.False(t, ValidateRadius(20001))
}
