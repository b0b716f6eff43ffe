package shared

import (
	"math"
	"strconv"
	"strings"
)

// LookupAny: safe nested lookup with dot paths on maps.
func LookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// FirstString returns the first non-empty string found at paths.
func FirstString(m map[string]any, paths ...string) string {
	for _, p := range paths {
		if s, ok := LookupAny(m, p).(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// FloatFlexible: finite number from several paths (float64/int/string like "51,9").
// NaN and infinities are skipped.
func FloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		var (
			f  float64
			ok bool
		)
		switch v := LookupAny(m, k).(type) {
		case float64:
			f, ok = v, true
		case int:
			f, ok = float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if x, err := strconv.ParseFloat(s, 64); err == nil {
				f, ok = x, true
			}
		}
		if ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f
		}
	}
	return nil
}

// Int64Flexible: int64 from several paths (float64/int/string). Fractional
// and out-of-range floats are skipped.
func Int64Flexible(m map[string]any, paths ...string) *int64 {
	for _, k := range paths {
		switch v := LookupAny(m, k).(type) {
		case float64:
			if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
				continue
			}
			x := int64(v)
			return &x
		case int:
			x := int64(v)
			return &x
		case int64:
			x := v
			return &x
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return &n
			}
		}
	}
	return nil
}
