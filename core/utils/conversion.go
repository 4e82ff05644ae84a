package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt32 converts integer, float, string and byte-slice values to int32.
// Strings are trimmed before parsing. Values outside the int32 range and
// fractional floats are rejected.
func ToInt32(val any) (int32, error) {
	var n int64
	switch v := val.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case int32:
		return v, nil
	case int16:
		return int32(v), nil
	case int8:
		return int32(v), nil
	case uint:
		if uint64(v) > math.MaxInt32 {
			return 0, fmt.Errorf("value %d overflows int32", v)
		}
		n = int64(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("value %d overflows int32", v)
		}
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint16:
		return int32(v), nil
	case uint8:
		return int32(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("value %v is not an integer", v)
		}
		n = int64(v)
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return 0, fmt.Errorf("value %v is not an integer", v)
		}
		n = int64(v)
	case string:
		return parseInt32(v)
	case []byte:
		return parseInt32(string(v))
	case nil:
		return 0, fmt.Errorf("value is nil")
	default:
		return 0, fmt.Errorf("unsupported type %T", val)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("value %d overflows int32", n)
	}
	return int32(n), nil
}

func parseInt32(s string) (int32, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return int32(i), nil
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
