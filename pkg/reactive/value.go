package reactive

import (
	"math"
	"strconv"
)

// category classifies a scalar for strict equality.
type category uint8

const (
	catInvalid category = iota
	catNil
	catBool
	catString
	catInt
	catUint
	catFloat
)

func categorize(v any) category {
	switch v.(type) {
	case nil:
		return catNil
	case bool:
		return catBool
	case string:
		return catString
	case int, int8, int16, int32, int64:
		return catInt
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return catUint
	case float32, float64:
		return catFloat
	default:
		return catInvalid
	}
}

// IsScalar reports whether v can be stored in a record field.
func IsScalar(v any) bool {
	return categorize(v) != catInvalid
}

// IsNumber reports whether v is any Go integer or float kind.
func IsNumber(v any) bool {
	switch categorize(v) {
	case catInt, catUint, catFloat:
		return true
	}
	return false
}

// Equal reports whether a and b are strictly equal scalars.
//
// Numbers are compared by value regardless of their Go kind, so int(5) and
// float64(5) are equal. NaN is not equal to anything. A number is never equal
// to a string or a bool. Non-scalar values are never equal.
func Equal(a, b any) bool {
	ca, cb := categorize(a), categorize(b)
	if ca == catInvalid || cb == catInvalid {
		return false
	}

	switch {
	case ca == catNil || cb == catNil:
		return ca == cb
	case ca == catBool && cb == catBool:
		return a.(bool) == b.(bool)
	case ca == catString && cb == catString:
		return a.(string) == b.(string)
	case ca == catInt && cb == catInt:
		return toInt64(a) == toInt64(b)
	case ca == catUint && cb == catUint:
		return toUint64(a) == toUint64(b)
	case IsNumber(a) && IsNumber(b):
		return equalMixed(a, b)
	}
	return false
}

// equalMixed compares numbers of different categories.
func equalMixed(a, b any) bool {
	ca, cb := categorize(a), categorize(b)
	if ca != catFloat && cb != catFloat {
		// One signed, one unsigned.
		if ca == catUint {
			a, b = b, a
		}
		i, u := toInt64(a), toUint64(b)
		return i >= 0 && uint64(i) == u
	}
	fa, fb := toFloat64(a), toFloat64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return false
	}
	return fa == fb
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func toUint64(v any) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case uintptr:
		return uint64(n)
	}
	return 0
}

func toFloat64(v any) float64 {
	switch categorize(v) {
	case catInt:
		return float64(toInt64(v))
	case catUint:
		return float64(toUint64(v))
	case catFloat:
		if f, ok := v.(float32); ok {
			return float64(f)
		}
		return v.(float64)
	}
	return math.NaN()
}

// Format converts a scalar into the string a text facet displays.
// Nil formats as the empty string.
func Format(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case float32:
		return formatFloat(float64(n), 32)
	case float64:
		return formatFloat(n, 64)
	}
	switch categorize(v) {
	case catInt:
		return strconv.FormatInt(toInt64(v), 10)
	case catUint:
		return strconv.FormatUint(toUint64(v), 10)
	}
	return ""
}

// formatFloat uses plain decimal notation in the range a reader expects
// (1e-7 <= |f| < 1e21) and exponent notation outside it.
func formatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-7 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
