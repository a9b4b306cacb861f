// Package filters normalizes heterogeneous search filter maps into a
// canonical snake_case key set. Incoming filters arrive from several
// front ends with mixed key styles (camelCase MLS field names, human
// labels, nested min/max objects); everything downstream works off the
// canonical form.
package filters

import (
	"strings"
	"unicode"
)

// InfinitySentinel marks an effectively unbounded max value. A nested
// max at or above it is treated as "no upper bound" and dropped.
const InfinitySentinel = 999_999_999

// aliases maps known non-canonical keys to canonical names. Keys not
// listed are converted mechanically (camelCase or spaced labels to
// snake_case).
var aliases = map[string]string{
	"price":                  "list_price",
	"listprice":              "list_price",
	"askingprice":            "list_price",
	"soldprice":              "close_price",
	"bedrooms":               "beds",
	"bedroomstotal":          "beds",
	"bathrooms":              "baths",
	"bathroomstotalinteger":  "baths",
	"sqft":                   "living_area",
	"squarefeet":             "living_area",
	"livingareasqft":         "living_area",
	"lotsizesquarefeet":      "lot_size",
	"zipcode":                "postal_code",
	"zip":                    "postal_code",
	"propertytype":           "property_sub_type",
	"subtype":                "property_sub_type",
	"status":                 "standard_status",
	"mlsstatus":              "standard_status",
	"waterfrontyn":           "waterfront",
	"dom":                    "days_on_market",
	"yearbuiltnumeric":       "year_built",
}

// Normalize maps an arbitrary filter key-value mapping onto the
// canonical snake_case key set. Rules:
//   - nil, empty-string, and empty-slice values are dropped; literal 0
//     is kept
//   - {value: X} objects unwrap to X
//   - {min: A, max: B} objects split into key_min / key_max, with _max
//     emitted only below the infinity sentinel
//
// Normalize is a pure function; the input map is not modified.
func Normalize(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))

	for key, val := range in {
		if isEmpty(val) {
			continue
		}

		canonical := CanonicalKey(key)

		nested, ok := val.(map[string]any)
		if !ok {
			out[canonical] = val
			continue
		}

		// {value: X} unwraps; {min, max} splits.
		if inner, hasValue := nested["value"]; hasValue {
			if !isEmpty(inner) {
				out[canonical] = inner
			}
			continue
		}

		if minV, ok := nested["min"]; ok && !isEmpty(minV) {
			out[canonical+"_min"] = minV
		}
		if maxV, ok := nested["max"]; ok && !isEmpty(maxV) {
			if n, isNum := toFloat(maxV); !isNum || n < InfinitySentinel {
				out[canonical+"_max"] = maxV
			}
		}
	}

	return out
}

// CanonicalKey converts a single filter key to its canonical form.
func CanonicalKey(key string) string {
	flat := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key))
	if canonical, ok := aliases[flat]; ok {
		return canonical
	}
	return toSnake(key)
}

// isEmpty reports whether a value should be dropped: nil, empty string,
// or empty slice. Zero numbers are meaningful and kept.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toSnake converts camelCase or space/hyphen separated keys to
// snake_case.
func toSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	prevLower := false
	for _, r := range key {
		switch {
		case r == ' ' || r == '-':
			if b.Len() > 0 {
				b.WriteByte('_')
			}
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}

	return strings.Trim(b.String(), "_")
}
