package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AliasesAndCasing(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"ListPrice":       450000.0,
		"Bedrooms":        3,
		"squareFeet":      1800.0,
		"Zip Code":        "33301",
		"waterfrontYN":    true,
		"standardStatus":  "active",
		"propertySubType": "Condominium",
	}

	out := Normalize(in)

	assert.Equal(t, 450000.0, out["list_price"])
	assert.Equal(t, 3, out["beds"])
	assert.Equal(t, 1800.0, out["living_area"])
	assert.Equal(t, "33301", out["postal_code"])
	assert.Equal(t, true, out["waterfront"])
	assert.Equal(t, "active", out["standard_status"])
	assert.Equal(t, "Condominium", out["property_sub_type"])
}

func TestNormalize_UnknownKeysGoSnakeCase(t *testing.T) {
	t.Parallel()

	out := Normalize(map[string]any{
		"garageSpaces":  2,
		"Pool Features": "heated",
	})

	assert.Equal(t, 2, out["garage_spaces"])
	assert.Equal(t, "heated", out["pool_features"])
}

func TestNormalize_DropsEmptyKeepsZero(t *testing.T) {
	t.Parallel()

	out := Normalize(map[string]any{
		"city":       "",
		"beds":       0,
		"subTypes":   []any{},
		"statuses":   nil,
		"list_price": 0.0,
	})

	require.NotContains(t, out, "city")
	require.NotContains(t, out, "sub_types")
	require.NotContains(t, out, "statuses")
	assert.Equal(t, 0, out["beds"], "literal zero survives")
	assert.Equal(t, 0.0, out["list_price"])
}

func TestNormalize_UnwrapsValueObjects(t *testing.T) {
	t.Parallel()

	out := Normalize(map[string]any{
		"yearBuilt": map[string]any{"value": 1998},
		"city":      map[string]any{"value": ""},
	})

	assert.Equal(t, 1998, out["year_built"])
	assert.NotContains(t, out, "city", "empty wrapped value still drops")
}

func TestNormalize_SplitsMinMax(t *testing.T) {
	t.Parallel()

	out := Normalize(map[string]any{
		"price":      map[string]any{"min": 200000.0, "max": 600000.0},
		"livingArea": map[string]any{"min": 0.0, "max": 999999999.0},
	})

	assert.Equal(t, 200000.0, out["list_price_min"])
	assert.Equal(t, 600000.0, out["list_price_max"])
	assert.Equal(t, 0.0, out["living_area_min"], "zero min is a real bound")
	assert.NotContains(t, out, "living_area_max",
		"max at the infinity sentinel means unbounded")
}

func TestNormalize_PartialRanges(t *testing.T) {
	t.Parallel()

	out := Normalize(map[string]any{
		"beds": map[string]any{"min": 2},
	})

	assert.Equal(t, 2, out["beds_min"])
	assert.NotContains(t, out, "beds_max")
}

func TestNormalize_PureFunction(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"price": map[string]any{"min": 100.0, "max": 200.0},
		"city":  "Hollywood",
	}

	_ = Normalize(in)

	assert.Len(t, in, 2, "input map is not mutated")
	assert.Contains(t, in, "price")
}

func TestCanonicalKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"ListPrice", "list_price"},
		{"daysOnMarket", "days_on_market"},
		{"DOM", "days_on_market"},
		{"Year Built", "year_built"},
		{"living_area", "living_area"},
		{"bathroomsTotalInteger", "baths"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalKey(tt.in), "key=%q", tt.in)
	}
}
