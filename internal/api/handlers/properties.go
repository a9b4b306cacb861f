package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/store"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// PropertiesHandler handles property query endpoints.
type PropertiesHandler struct {
	store store.Store
}

// NewPropertiesHandler creates a new PropertiesHandler.
func NewPropertiesHandler(s store.Store) *PropertiesHandler {
	return &PropertiesHandler{store: s}
}

// --- Input/Output types ---

// ListPropertiesInput is the input for listing properties with optional
// filters.
type ListPropertiesInput struct {
	City          string  `query:"city"            doc:"Filter by city (case-insensitive)"`
	PostalCode    string  `query:"postal_code"     doc:"Filter by postal code"`
	SubType       string  `query:"sub_type"        doc:"Filter by property subtype"`
	Status        string  `query:"status"          doc:"Filter by standard status"          enum:"active,active_under_contract,pending,closed,canceled,expired,withdrawn,"`
	PriceMin      float64 `query:"price_min"       doc:"Minimum effective price"            minimum:"0"`
	PriceMax      float64 `query:"price_max"       doc:"Maximum effective price"            minimum:"0"`
	BedsMin       int     `query:"beds_min"        doc:"Minimum bedrooms"                   minimum:"0"`
	BathsMin      float64 `query:"baths_min"       doc:"Minimum bathrooms"                  minimum:"0"`
	LivingAreaMin float64 `query:"living_area_min" doc:"Minimum living area in sqft"        minimum:"0"`
	LivingAreaMax float64 `query:"living_area_max" doc:"Maximum living area in sqft"        minimum:"0"`
	YearBuiltMin  int     `query:"year_built_min"  doc:"Earliest year built"                minimum:"0"`
	Waterfront    bool    `query:"waterfront"      doc:"Waterfront properties only"`
	Limit         int     `query:"limit"           doc:"Number of results (default 50)"     minimum:"1" maximum:"500"`
	Offset        int     `query:"offset"          doc:"Pagination offset"                  minimum:"0"`
	OrderBy       string  `query:"order_by"        doc:"Sort field, prefix with - for descending"`
}

// ListPropertiesOutput is the response for listing properties.
type ListPropertiesOutput struct {
	Body struct {
		Properties []domain.Property `json:"properties"`
		Total      int               `json:"total"`
		Limit      int               `json:"limit"`
		Offset     int               `json:"offset"`
	}
}

// GetPropertyInput is the input for getting a single property.
type GetPropertyInput struct {
	ID string `path:"id" doc:"Property UUID"`
}

// GetPropertyByMLSInput is the input for looking a property up by MLS
// number.
type GetPropertyByMLSInput struct {
	MLSNumber string `path:"mls_number" doc:"MLS listing number"`
}

// GetPropertyOutput is the response for getting a single property.
type GetPropertyOutput struct {
	Body domain.Property
}

// --- Handlers ---

// ListProperties returns properties matching the given filters.
func (h *PropertiesHandler) ListProperties(
	ctx context.Context,
	input *ListPropertiesInput,
) (*ListPropertiesOutput, error) {
	q := &store.PropertyQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.City != "" {
		q.City = &input.City
	}
	if input.PostalCode != "" {
		q.PostalCode = &input.PostalCode
	}
	if input.SubType != "" {
		q.SubType = &input.SubType
	}
	if input.Status != "" {
		q.Statuses = []string{input.Status}
	}
	if input.PriceMin != 0 {
		q.PriceMin = &input.PriceMin
	}
	if input.PriceMax != 0 {
		q.PriceMax = &input.PriceMax
	}
	if input.BedsMin != 0 {
		q.BedsMin = &input.BedsMin
	}
	if input.BathsMin != 0 {
		q.BathsMin = &input.BathsMin
	}
	if input.LivingAreaMin != 0 {
		q.LivingAreaMin = &input.LivingAreaMin
	}
	if input.LivingAreaMax != 0 {
		q.LivingAreaMax = &input.LivingAreaMax
	}
	if input.YearBuiltMin != 0 {
		q.YearBuiltMin = &input.YearBuiltMin
	}
	q.WaterfrontOnly = input.Waterfront
	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	properties, total, err := h.store.ListProperties(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("property query failed: " + err.Error())
	}

	resp := &ListPropertiesOutput{}
	resp.Body.Properties = properties
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetProperty returns a single property by ID.
func (h *PropertiesHandler) GetProperty(
	ctx context.Context,
	input *GetPropertyInput,
) (*GetPropertyOutput, error) {
	property, err := h.store.GetPropertyByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("property not found")
		}
		return nil, huma.Error500InternalServerError("property lookup failed: " + err.Error())
	}

	return &GetPropertyOutput{Body: *property}, nil
}

// GetPropertyByMLS returns a single property by MLS number.
func (h *PropertiesHandler) GetPropertyByMLS(
	ctx context.Context,
	input *GetPropertyByMLSInput,
) (*GetPropertyOutput, error) {
	property, err := h.store.GetProperty(ctx, input.MLSNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("property not found")
		}
		return nil, huma.Error500InternalServerError("property lookup failed: " + err.Error())
	}

	return &GetPropertyOutput{Body: *property}, nil
}

// RegisterPropertyRoutes registers property endpoints with the Huma API.
func RegisterPropertyRoutes(api huma.API, h *PropertiesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties",
		Summary:     "List properties",
		Description: "Returns properties with optional filters for location, price, size, and status.",
		Tags:        []string{"properties"},
	}, h.ListProperties)

	huma.Register(api, huma.Operation{
		OperationID: "get-property",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/{id}",
		Summary:     "Get a property by ID",
		Description: "Returns a single property by its UUID.",
		Tags:        []string{"properties"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProperty)

	huma.Register(api, huma.Operation{
		OperationID: "get-property-by-mls",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/mls/{mls_number}",
		Summary:     "Get a property by MLS number",
		Description: "Returns a single property by its MLS listing number.",
		Tags:        []string{"properties"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetPropertyByMLS)
}
