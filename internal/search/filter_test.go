package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/utils"
)

func catalog() []*domain.Business {
	return []*domain.Business{
		{
			ID: 1, Name: "Boma Restaurant", Description: "Nyama choma and local dishes",
			CategoryID: 2, Rating: utils.Ptr(4.6), PriceLevel: utils.Ptr(45),
			Latitude: -1.2921, Longitude: 36.8219,
			Amenities: []string{"wifi", "parking"}, Tags: []string{"wheelchair"},
		},
		{
			ID: 2, Name: "Safari Lodge", Description: "Luxury tented camp near the park",
			CategoryID: 1, Rating: utils.Ptr(4.8), PriceLevel: utils.Ptr(300),
			Latitude: -1.3733, Longitude: 36.8580,
			Amenities: []string{"pool", "spa"}, Tags: []string{"family"},
		},
		{
			ID: 3, Name: "Giraffe Centre", Description: "Feed giraffes by hand",
			CategoryID: 3, Rating: nil, PriceLevel: utils.Ptr(15),
			Latitude: -1.3766, Longitude: 36.7446,
			Amenities: nil, Tags: []string{"Wheelchair", "kids"},
		},
		{
			ID: 4, Name: "Coast Grill", Description: "Seafood by the RESTAURANT strip",
			CategoryID: 2, Rating: utils.Ptr(3.9), PriceLevel: nil,
			Latitude: -4.0435, Longitude: 39.6682,
			Amenities: []string{"WiFi"},
		},
	}
}

func ids(results []Result) []int64 {
	out := make([]int64, len(results))
	for i, r := range results {
		out[i] = r.Business.ID
	}
	return out
}

func TestApply_EmptyFilterKeepsNaturalOrder(t *testing.T) {
	results := Apply(catalog(), Filter{})

	assert.Equal(t, []int64{1, 2, 3, 4}, ids(results))
	for _, r := range results {
		assert.Nil(t, r.DistanceKm)
	}
}

func TestApply_Keyword(t *testing.T) {
	t.Run("matches name case-insensitively", func(t *testing.T) {
		assert.Equal(t, []int64{1}, ids(Apply(catalog(), Filter{Keyword: utils.Ptr("boma")})))
	})

	t.Run("matches description", func(t *testing.T) {
		assert.Equal(t, []int64{1, 4}, ids(Apply(catalog(), Filter{Keyword: utils.Ptr("restaurant")})))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Apply(catalog(), Filter{Keyword: utils.Ptr("ski resort")}))
	})
}

func TestApply_CategoryAndRating(t *testing.T) {
	// Boma Restaurant: rating 4.6, price level 45, category 2
	t.Run("rating 4.5 in category 2 includes Boma", func(t *testing.T) {
		results := Apply(catalog(), Filter{MinRating: utils.Ptr(4.5), CategoryID: utils.Ptr(int64(2))})
		assert.Equal(t, []int64{1}, ids(results))
	})

	t.Run("rating 4.7 excludes Boma", func(t *testing.T) {
		results := Apply(catalog(), Filter{MinRating: utils.Ptr(4.7)})
		assert.Equal(t, []int64{2}, ids(results))
	})

	t.Run("rating threshold is inclusive", func(t *testing.T) {
		results := Apply(catalog(), Filter{MinRating: utils.Ptr(4.6)})
		assert.Equal(t, []int64{1, 2}, ids(results))
	})

	t.Run("missing rating never matches", func(t *testing.T) {
		results := Apply(catalog(), Filter{MinRating: utils.Ptr(0.0)})
		assert.NotContains(t, ids(results), int64(3))
	})
}

func TestApply_PriceLevel(t *testing.T) {
	results := Apply(catalog(), Filter{PriceLevels: []int{15, 45}})
	assert.Equal(t, []int64{1, 3}, ids(results))

	// business without price level never matches a price filter
	results = Apply(catalog(), Filter{PriceLevels: []int{0}})
	assert.Empty(t, results)
}

func TestApply_AmenitiesUseAnyOfSemantics(t *testing.T) {
	results := Apply(catalog(), Filter{Amenities: []string{"spa", "wifi"}})
	assert.Equal(t, []int64{1, 2, 4}, ids(results))

	results = Apply(catalog(), Filter{Amenities: []string{"sauna"}})
	assert.Empty(t, results)
}

func TestApply_AccessibilityMatchesTags(t *testing.T) {
	results := Apply(catalog(), Filter{Accessibility: []string{"wheelchair"}})
	assert.Equal(t, []int64{1, 3}, ids(results))
}

func TestApply_CombinesPredicatesWithAnd(t *testing.T) {
	results := Apply(catalog(), Filter{
		CategoryID: utils.Ptr(int64(2)),
		Amenities:  []string{"wifi"},
		MinRating:  utils.Ptr(4.0),
	})
	assert.Equal(t, []int64{1}, ids(results))
}

func TestApply_NearMe(t *testing.T) {
	nairobi := GeoPoint{Lat: -1.2864, Lon: 36.8172}

	t.Run("default radius is 10km", func(t *testing.T) {
		results := Apply(catalog(), Filter{Near: &nairobi})

		require.Equal(t, []int64{1}, ids(results))
		require.NotNil(t, results[0].DistanceKm)
		assert.InDelta(t, 0.82, *results[0].DistanceKm, 0.01)
	})

	t.Run("results sorted by distance", func(t *testing.T) {
		p := nairobi
		p.RadiusKm = 15
		results := Apply(catalog(), Filter{Near: &p})

		require.Equal(t, []int64{1, 2, 3}, ids(results))
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, *results[i-1].DistanceKm, *results[i].DistanceKm)
		}
	})

	t.Run("boundary distance is included", func(t *testing.T) {
		b := catalog()[1]
		exact := Distance(nairobi, b)

		p := nairobi
		p.RadiusKm = exact
		assert.Contains(t, ids(Apply([]*domain.Business{b}, Filter{Near: &p})), b.ID)

		p.RadiusKm = exact - 1e-6
		assert.Empty(t, Apply([]*domain.Business{b}, Filter{Near: &p}))
	})

	t.Run("large radius reaches the coast", func(t *testing.T) {
		p := nairobi
		p.RadiusKm = 500
		results := Apply(catalog(), Filter{Near: &p})
		assert.Equal(t, int64(4), results[len(results)-1].Business.ID)
	})

	t.Run("equal distances keep natural order", func(t *testing.T) {
		same := []*domain.Business{
			{ID: 10, Latitude: 0, Longitude: 0.01},
			{ID: 11, Latitude: 0, Longitude: -0.01},
			{ID: 12, Latitude: 0, Longitude: 0.001},
		}
		results := Apply(same, Filter{Near: &GeoPoint{Lat: 0, Lon: 0, RadiusKm: 5}})
		assert.Equal(t, []int64{12, 10, 11}, ids(results))
	})
}

// Every returned business satisfies each predicate, every excluded one fails at least one,
// and geo results are non-decreasing by distance.
func TestApply_RandomizedProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	amenityPool := []string{"wifi", "pool", "spa", "parking", "bar"}
	tagPool := []string{"wheelchair", "family", "braille", "kids"}

	pick := func(pool []string) []string {
		var out []string
		for _, v := range pool {
			if rng.Intn(3) == 0 {
				out = append(out, v)
			}
		}
		return out
	}

	businesses := make([]*domain.Business, 200)
	for i := range businesses {
		b := &domain.Business{
			ID:         int64(i + 1),
			Name:       []string{"Lodge", "Cafe", "Museum", "Grill"}[rng.Intn(4)],
			CategoryID: int64(rng.Intn(3) + 1),
			Latitude:   -1.3 + rng.Float64()*0.4,
			Longitude:  36.7 + rng.Float64()*0.4,
			Amenities:  pick(amenityPool),
			Tags:       pick(tagPool),
		}
		if rng.Intn(4) != 0 {
			b.Rating = utils.Ptr(float64(rng.Intn(51)) / 10)
		}
		if rng.Intn(4) != 0 {
			b.PriceLevel = utils.Ptr(rng.Intn(4) + 1)
		}
		businesses[i] = b
	}

	for n := 0; n < 100; n++ {
		f := Filter{}
		if rng.Intn(2) == 0 {
			f.CategoryID = utils.Ptr(int64(rng.Intn(3) + 1))
		}
		if rng.Intn(2) == 0 {
			f.MinRating = utils.Ptr(float64(rng.Intn(51)) / 10)
		}
		if rng.Intn(2) == 0 {
			f.PriceLevels = []int{rng.Intn(4) + 1, rng.Intn(4) + 1}
		}
		if rng.Intn(2) == 0 {
			f.Amenities = pick(amenityPool)
		}
		if rng.Intn(2) == 0 {
			f.Accessibility = pick(tagPool)
		}
		if rng.Intn(2) == 0 {
			f.Near = &GeoPoint{Lat: -1.1, Lon: 36.9, RadiusKm: 5 + rng.Float64()*20}
		}

		results := Apply(businesses, f)
		matched := make(map[int64]bool, len(results))
		for _, r := range results {
			matched[r.Business.ID] = true
		}

		for _, b := range businesses {
			assert.Equal(t, satisfies(b, f), matched[b.ID], "business %d filter #%d", b.ID, n)
		}

		if f.Near != nil {
			for i := 1; i < len(results); i++ {
				assert.LessOrEqual(t, *results[i-1].DistanceKm, *results[i].DistanceKm)
			}
		} else {
			for i := 1; i < len(results); i++ {
				assert.Less(t, results[i-1].Business.ID, results[i].Business.ID)
			}
		}
	}
}

// satisfies is a direct restatement of the predicates, used as the oracle.
func satisfies(b *domain.Business, f Filter) bool {
	if f.CategoryID != nil && b.CategoryID != *f.CategoryID {
		return false
	}
	if f.MinRating != nil && (b.Rating == nil || *b.Rating < *f.MinRating) {
		return false
	}
	if len(f.PriceLevels) > 0 {
		if b.PriceLevel == nil {
			return false
		}
		found := false
		for _, l := range f.PriceLevels {
			found = found || l == *b.PriceLevel
		}
		if !found {
			return false
		}
	}
	anyOf := func(have, wanted []string) bool {
		for _, w := range wanted {
			for _, h := range have {
				if h == w {
					return true
				}
			}
		}
		return false
	}
	if len(f.Amenities) > 0 && !anyOf(b.Amenities, f.Amenities) {
		return false
	}
	if len(f.Accessibility) > 0 && !anyOf(b.Tags, f.Accessibility) {
		return false
	}
	if f.Near != nil && utils.HaversineDistance(f.Near.Lat, f.Near.Lon, b.Latitude, b.Longitude) > f.Near.RadiusKm {
		return false
	}
	return true
}
