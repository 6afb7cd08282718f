package utils

import (
	"math"
	"reflect"
	"time"

	"github.com/rdpitts/minfraud/types"
	"github.com/shopspring/decimal"
)

// ParseTimeout converts a numeric number of seconds into a duration.
// time.Duration values are taken as-is. Strings are rejected even when they
// look numeric.
func ParseTimeout(v any) (time.Duration, error) {
	switch t := v.(type) {
	case time.Duration:
		return t, nil
	case decimal.Decimal:
		return secondsToDuration(t.InexactFloat64())
	case *decimal.Decimal:
		if t == nil {
			return 0, types.InvalidTimeout("must be Numeric")
		}
		return secondsToDuration(t.InexactFloat64())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return secondsToDuration(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return secondsToDuration(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return secondsToDuration(rv.Float())
	}
	return 0, types.InvalidTimeout("must be Numeric")
}

func secondsToDuration(s float64) (time.Duration, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, types.InvalidTimeout("must be Numeric")
	}
	if s > math.MaxInt64/float64(time.Second) {
		return 0, types.InvalidTimeout("is too large")
	}
	d := time.Duration(s * float64(time.Second))
	if d == 0 && s > 0 {
		d = time.Nanosecond
	}
	return d, nil
}

// ValidateServiceTier checks an optional tier value.
func ValidateServiceTier(tier types.ServiceTier) error {
	if tier == "" || tier.IsValid() {
		return nil
	}
	return types.InvalidServiceTier(string(tier))
}
