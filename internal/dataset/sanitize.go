package dataset

import (
	"math"
	"time"
)

// NaiveTimeLayout is the timezone-free rendering of timestamp cells.
const NaiveTimeLayout = "2006-01-02 15:04:05"

// SanitizeValue maps a cell value to its JSON-safe representation.
//
// Timestamps render as naive wall-clock strings with any timezone offset
// dropped; invalid timestamps, nil values, and non-finite floats all become
// the empty string. The emitted JSON therefore never carries NaN, ±Inf, or
// an offset-bearing timestamp.
func SanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return ""
		}
		return val
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ""
		}
		return val
	case Timestamp:
		if !val.Valid {
			return ""
		}
		return val.Time.Format(NaiveTimeLayout)
	case time.Time:
		return val.Format(NaiveTimeLayout)
	default:
		return v
	}
}

// SanitizeFields scrubs a projected record in place-by-copy: every field is
// passed through SanitizeValue.
func SanitizeFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = SanitizeValue(v)
	}
	return out
}

// RenderValue returns the JSON-safe value at (name, row), already sanitized.
func (t *TypedTable) RenderValue(name string, row int) (interface{}, bool) {
	v, ok := t.Value(name, row)
	if !ok {
		return nil, false
	}
	return SanitizeValue(v), true
}
