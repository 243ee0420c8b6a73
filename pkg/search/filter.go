package search

import (
	"math"
	"time"
)

// Filter is a metadata predicate applied to search results.
type Filter interface {
	// Match reports whether the given metadata passes the filter.
	Match(metadata map[string]interface{}) bool
}

// filterFunc adapts a plain predicate to the Filter interface; every
// builder below returns one.
type filterFunc func(metadata map[string]interface{}) bool

func (f filterFunc) Match(metadata map[string]interface{}) bool {
	return f(metadata)
}

// GeoPoint is a geographic coordinate stored in metadata.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Eq matches documents whose field equals value.
func Eq(field string, value interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		return exists && equals(fieldValue, value)
	})
}

// Ne matches documents whose field exists and differs from value.
func Ne(field string, value interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		return exists && !equals(fieldValue, value)
	})
}

// Gt matches documents whose field compares greater than value.
func Gt(field string, value interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		return exists && compare(fieldValue, value) > 0
	})
}

// Lt matches documents whose field compares less than value.
func Lt(field string, value interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		return exists && compare(fieldValue, value) < 0
	})
}

// Gte matches documents whose field compares greater than or equal to value.
func Gte(field string, value interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		return exists && compare(fieldValue, value) >= 0
	})
}

// Lte matches documents whose field compares less than or equal to value.
func Lte(field string, value interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		return exists && compare(fieldValue, value) <= 0
	})
}

// Range matches documents whose field lies within [min, max]; either bound
// may be nil for a half-open range.
func Range(field string, min, max interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		if !exists {
			return false
		}
		if min != nil && compare(fieldValue, min) < 0 {
			return false
		}
		if max != nil && compare(fieldValue, max) > 0 {
			return false
		}
		return true
	})
}

// In matches documents whose field equals any of values.
func In(field string, values ...interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		if !exists {
			return false
		}
		for _, v := range values {
			if equals(fieldValue, v) {
				return true
			}
		}
		return false
	})
}

// NotIn matches documents whose field equals none of values. A missing
// field matches.
func NotIn(field string, values ...interface{}) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		if !exists {
			return true
		}
		for _, v := range values {
			if equals(fieldValue, v) {
				return false
			}
		}
		return true
	})
}

// GeoRadius matches documents whose field holds a coordinate within
// radiusKm kilometers of (lat, lon).
func GeoRadius(field string, lat, lon, radiusKm float64) Filter {
	return geoRadius(field, GeoPoint{Lat: lat, Lon: lon}, radiusKm*1000)
}

// GeoRadiusMeters is GeoRadius with the radius given in meters.
func GeoRadiusMeters(field string, lat, lon, radiusMeters float64) Filter {
	return geoRadius(field, GeoPoint{Lat: lat, Lon: lon}, radiusMeters)
}

func geoRadius(field string, center GeoPoint, radiusMeters float64) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		fieldValue, exists := metadata[field]
		if !exists {
			return false
		}

		var point GeoPoint
		switch v := fieldValue.(type) {
		case GeoPoint:
			point = v
		case map[string]interface{}:
			// Coordinates decoded from JSON arrive as a generic map.
			point = GeoPoint{Lat: toFloat64(v["lat"]), Lon: toFloat64(v["lon"])}
		default:
			return false
		}

		return haversineDistance(center, point) <= radiusMeters
	})
}

// Exists matches documents that carry the field at all.
func Exists(field string) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		_, exists := metadata[field]
		return exists
	})
}

// NotExists matches documents that do not carry the field.
func NotExists(field string) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		_, exists := metadata[field]
		return !exists
	})
}

// And matches documents that pass every sub-filter.
func And(filters ...Filter) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		for _, f := range filters {
			if !f.Match(metadata) {
				return false
			}
		}
		return true
	})
}

// Or matches documents that pass at least one sub-filter.
func Or(filters ...Filter) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		for _, f := range filters {
			if f.Match(metadata) {
				return true
			}
		}
		return false
	})
}

// Not inverts a filter.
func Not(filter Filter) Filter {
	return filterFunc(func(metadata map[string]interface{}) bool {
		return !filter.Match(metadata)
	})
}

// equals compares two metadata values, bridging the numeric types JSON
// decoding and callers mix freely.
func equals(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}

	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return float64(av) == toFloat64(b)
	case float64:
		return av == toFloat64(b)
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	}
	return false
}

// compare returns -1, 0, or 1 ordering a before, equal to, or after b
// numerically. nil orders before everything.
func compare(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	aNum := toFloat64(a)
	bNum := toFloat64(b)
	switch {
	case aNum < bNum:
		return -1
	case aNum > bNum:
		return 1
	default:
		return 0
	}
}

// toFloat64 widens any numeric metadata value; non-numeric values map to 0.
func toFloat64(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	default:
		return 0
	}
}

// haversineDistance returns the great-circle distance between two points in
// meters.
func haversineDistance(p1, p2 GeoPoint) float64 {
	const earthRadiusMeters = 6371000.0

	lat1 := p1.Lat * math.Pi / 180.0
	lat2 := p2.Lat * math.Pi / 180.0
	dLat := (p2.Lat - p1.Lat) * math.Pi / 180.0
	dLon := (p2.Lon - p1.Lon) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
