package upstream

import (
	"encoding/json"
	"math"
)

// Truthy reports whether a decoded JSON value carries data
// null, false, zero and "" are empty; objects and arrays always count
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}

// Number returns v as a float when it is a JSON number
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// Count reads a non negative counter; absent and non numeric values read as zero
// fractions truncate toward zero and ok is false for negative numbers
func Count(v any) (n int, ok bool) {
	f, isNum := Number(v)
	if !isNum {
		return 0, true
	}
	if f < 0 {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int(f), true
}
