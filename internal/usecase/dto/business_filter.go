package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/pkg/validator"
	"github.com/tourism-directory/internal/search"
)

// Query parameters of GET /api/businesses
const (
	ParamKeyword       = "keyword"
	ParamCategoryID    = "categoryId"
	ParamPriceLevel    = "priceLevel"
	ParamRating        = "rating"
	ParamAmenities     = "amenities"
	ParamAccessibility = "accessibility"
	ParamNearMe        = "nearMe"
	ParamLatitude      = "latitude"
	ParamLongitude     = "longitude"
	ParamRadius        = "radius"
)

// ParseBusinessFilter converts raw query parameters into a typed search.Filter.
// Values that do not parse or are out of range are reported together as a
// VALIDATION_ERROR; nothing is coerced or silently dropped.
//
// List parameters accept repeated keys and comma-separated values. The geo
// predicate is active with nearMe=true (latitude and longitude then required)
// or when both coordinates are given; nearMe=false disables it.
func ParseBusinessFilter(q url.Values, defaultRadiusKm float64) (search.Filter, error) {
	p := &filterParser{q: q}
	var f search.Filter

	if kw := strings.TrimSpace(q.Get(ParamKeyword)); kw != "" {
		f.Keyword = &kw
	}

	if v, ok := p.value(ParamCategoryID); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			p.fail(ParamCategoryID, "integer", "categoryId must be a positive integer")
		} else {
			f.CategoryID = &id
		}
	}

	for _, v := range p.list(ParamPriceLevel) {
		level, err := strconv.Atoi(v)
		if err != nil || level < 0 {
			p.fail(ParamPriceLevel, "integer", "priceLevel must be a list of non-negative integers")
			break
		}
		f.PriceLevels = append(f.PriceLevels, level)
	}

	if v, ok := p.value(ParamRating); ok {
		if r, valid := p.float(ParamRating, v, 0, 5); valid {
			f.MinRating = &r
		}
	}

	f.Amenities = p.list(ParamAmenities)
	f.Accessibility = p.list(ParamAccessibility)

	f.Near = p.near(defaultRadiusKm)

	if len(p.errs) > 0 {
		return search.Filter{}, validator.NewValidationError(p.errs...)
	}
	return f, nil
}

type filterParser struct {
	q    url.Values
	errs []validator.FieldError
}

func (p *filterParser) fail(field, tag, msg string) {
	p.errs = append(p.errs, validator.FieldError{Field: field, Tag: tag, Message: msg})
}

// value returns the trimmed parameter; empty counts as absent
func (p *filterParser) value(key string) (string, bool) {
	v := strings.TrimSpace(p.q.Get(key))
	return v, v != ""
}

func (p *filterParser) list(key string) []string {
	var out []string
	for _, raw := range p.q[key] {
		out = append(out, utils.SplitList(raw)...)
	}
	return out
}

func (p *filterParser) float(key, v string, min, max float64) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, "number", key+" must be a number")
		return 0, false
	}
	if f < min || f > max {
		p.fail(key, "range", key+" must be between "+
			strconv.FormatFloat(min, 'f', -1, 64)+" and "+strconv.FormatFloat(max, 'f', -1, 64))
		return 0, false
	}
	return f, true
}

// near returns nil when the geo predicate is inactive or invalid
func (p *filterParser) near(defaultRadiusKm float64) *search.GeoPoint {
	nearMe, nearMeSet := false, false
	if v, ok := p.value(ParamNearMe); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(ParamNearMe, "boolean", "nearMe must be true or false")
			return nil
		}
		nearMe, nearMeSet = b, true
	}

	latRaw, hasLat := p.value(ParamLatitude)
	lonRaw, hasLon := p.value(ParamLongitude)
	radiusRaw, hasRadius := p.value(ParamRadius)

	before := len(p.errs)
	var lat, lon float64
	if hasLat {
		lat, _ = p.float(ParamLatitude, latRaw, -90, 90)
	}
	if hasLon {
		lon, _ = p.float(ParamLongitude, lonRaw, -180, 180)
	}
	radius := defaultRadiusKm
	if hasRadius {
		r, err := strconv.ParseFloat(radiusRaw, 64)
		if err != nil || !utils.ValidateRadius(r) {
			p.fail(ParamRadius, "range", "radius must be a number greater than 0 and at most 20000")
		} else {
			radius = r
		}
	}

	active := nearMe || (!nearMeSet && hasLat && hasLon)
	if !active {
		if !nearMeSet && hasLat != hasLon {
			p.fail(ParamLatitude, "required_with", "latitude and longitude must be given together")
		}
		return nil
	}
	if !hasLat || !hasLon {
		p.fail(ParamNearMe, "required_with", "nearMe requires latitude and longitude")
		return nil
	}
	if len(p.errs) > before {
		return nil
	}

	return &search.GeoPoint{Lat: lat, Lon: lon, RadiusKm: radius}
}
