package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/store"
	"github.com/harborview/mls-comps/pkg/filters"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// SearchHandler handles filtered property searches with heterogeneous
// filter maps.
type SearchHandler struct {
	store store.Store
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s store.Store) *SearchHandler {
	return &SearchHandler{store: s}
}

// SearchInput is the request body for the search endpoint. Filters
// accepts any front-end key style; keys are normalized before querying.
type SearchInput struct {
	Body struct {
		Filters map[string]any `json:"filters" doc:"Search filters in any supported key style" example:"{\"ListPrice\":{\"min\":300000,\"max\":600000},\"Bedrooms\":3}"`
		Limit   int            `json:"limit,omitempty"    minimum:"1" maximum:"500" doc:"Number of results (default 50)"`
		Offset  int            `json:"offset,omitempty"   minimum:"0"               doc:"Pagination offset"`
		OrderBy string         `json:"order_by,omitempty"                           doc:"Sort field, prefix with - for descending"`
	}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Properties []domain.Property `json:"properties"`
		Total      int               `json:"total"`
		// Normalized echoes the canonical filter set actually applied.
		Normalized map[string]any `json:"normalized"`
	}
}

// Search normalizes the filter map and runs a property query against it.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	normalized := filters.Normalize(input.Body.Filters)

	q := queryFromFilters(normalized)
	q.Offset = input.Body.Offset
	q.OrderBy = input.Body.OrderBy
	if input.Body.Limit > 0 {
		q.Limit = input.Body.Limit
	}

	properties, total, err := h.store.ListProperties(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("search query failed: " + err.Error())
	}

	out := &SearchOutput{}
	out.Body.Properties = properties
	out.Body.Total = total
	out.Body.Normalized = normalized
	return out, nil
}

// queryFromFilters maps a normalized filter set onto the store query.
// Unknown keys are ignored rather than rejected; front ends send more
// than the query layer indexes.
func queryFromFilters(f map[string]any) *store.PropertyQuery {
	q := &store.PropertyQuery{}

	if s, ok := asString(f["city"]); ok {
		q.City = &s
	}
	if s, ok := asString(f["postal_code"]); ok {
		q.PostalCode = &s
	}
	if s, ok := asString(f["property_sub_type"]); ok {
		q.SubType = &s
	}
	if s, ok := asString(f["standard_status"]); ok {
		q.Statuses = []string{s}
	} else if list, ok := f["standard_status"].([]any); ok {
		for _, v := range list {
			if s, ok := asString(v); ok {
				q.Statuses = append(q.Statuses, s)
			}
		}
	}

	if n, ok := asFloat(f["list_price_min"]); ok {
		q.PriceMin = &n
	}
	if n, ok := asFloat(f["list_price_max"]); ok {
		q.PriceMax = &n
	}
	if n, ok := asFloat(f["beds"]); ok {
		beds := int(n)
		q.BedsMin = &beds
	}
	if n, ok := asFloat(f["beds_min"]); ok {
		beds := int(n)
		q.BedsMin = &beds
	}
	if n, ok := asFloat(f["baths"]); ok {
		q.BathsMin = &n
	}
	if n, ok := asFloat(f["baths_min"]); ok {
		q.BathsMin = &n
	}
	if n, ok := asFloat(f["living_area_min"]); ok {
		q.LivingAreaMin = &n
	}
	if n, ok := asFloat(f["living_area_max"]); ok {
		q.LivingAreaMax = &n
	}
	if n, ok := asFloat(f["year_built_min"]); ok {
		year := int(n)
		q.YearBuiltMin = &year
	}
	if b, ok := f["waterfront"].(bool); ok {
		q.WaterfrontOnly = b
	}

	return q
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

func asFloat(v any) (float64, bool) {
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

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-properties",
		Method:      http.MethodPost,
		Path:        "/api/v1/properties/search",
		Summary:     "Search properties",
		Description: "Normalizes a heterogeneous filter map and returns matching properties.",
		Tags:        []string{"properties"},
	}, h.Search)
}
