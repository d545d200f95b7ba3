// Package search filters and ranks the business catalog.
//
// Every predicate present in a Filter must hold for a business to match
// (AND across predicate kinds). List-valued predicates (price levels,
// amenities, accessibility) match when the business has at least one of the
// requested values. With a geo point set, results are additionally ordered by
// ascending distance; otherwise the input order is preserved.
package search

import (
	"sort"
	"strings"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/utils"
)

// DefaultRadiusKm is used when a geo filter has no radius.
const DefaultRadiusKm = 10.0

// GeoPoint - центр поиска "рядом со мной"
type GeoPoint struct {
	Lat      float64
	Lon      float64
	RadiusKm float64
}

// Filter holds the optional search predicates. Nil/empty fields are not applied.
type Filter struct {
	Keyword       *string
	CategoryID    *int64
	PriceLevels   []int
	MinRating     *float64
	Amenities     []string
	Accessibility []string
	Near          *GeoPoint
}

// IsEmpty reports whether no predicate is set.
func (f Filter) IsEmpty() bool {
	return f.Keyword == nil && f.CategoryID == nil && len(f.PriceLevels) == 0 &&
		f.MinRating == nil && len(f.Amenities) == 0 && len(f.Accessibility) == 0 &&
		f.Near == nil
}

// Result - найденное заведение; DistanceKm заполнен только при гео-поиске
type Result struct {
	Business   *domain.Business
	DistanceKm *float64
}

// Apply returns the businesses that satisfy every predicate of f.
func Apply(businesses []*domain.Business, f Filter) []Result {
	var keyword string
	if f.Keyword != nil {
		keyword = strings.ToLower(*f.Keyword)
	}

	results := make([]Result, 0, len(businesses))
	for _, b := range businesses {
		if f.Keyword != nil && !matchesKeyword(b, keyword) {
			continue
		}
		if f.CategoryID != nil && b.CategoryID != *f.CategoryID {
			continue
		}
		if len(f.PriceLevels) > 0 && !matchesPriceLevel(b, f.PriceLevels) {
			continue
		}
		// заведение без рейтинга никогда не проходит фильтр по рейтингу
		if f.MinRating != nil && (b.Rating == nil || *b.Rating < *f.MinRating) {
			continue
		}
		if len(f.Amenities) > 0 && !containsAny(b.Amenities, f.Amenities) {
			continue
		}
		if len(f.Accessibility) > 0 && !containsAny(b.Tags, f.Accessibility) {
			continue
		}

		r := Result{Business: b}
		if f.Near != nil {
			d := Distance(*f.Near, b)
			if d > radius(*f.Near) {
				continue
			}
			r.DistanceKm = &d
		}
		results = append(results, r)
	}

	if f.Near != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	}

	return results
}

// Distance returns the haversine distance in km from the point to the business.
func Distance(p GeoPoint, b *domain.Business) float64 {
	return utils.HaversineDistance(p.Lat, p.Lon, b.Latitude, b.Longitude)
}

func radius(p GeoPoint) float64 {
	if p.RadiusKm <= 0 {
		return DefaultRadiusKm
	}
	return p.RadiusKm
}

func matchesKeyword(b *domain.Business, keyword string) bool {
	return strings.Contains(strings.ToLower(b.Name), keyword) ||
		strings.Contains(strings.ToLower(b.Description), keyword)
}

func matchesPriceLevel(b *domain.Business, levels []int) bool {
	if b.PriceLevel == nil {
		return false
	}
	for _, l := range levels {
		if *b.PriceLevel == l {
			return true
		}
	}
	return false
}

// containsAny - хотя бы одно из wanted есть в have (без учёта регистра)
func containsAny(have, wanted []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
