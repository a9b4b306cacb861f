package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// PropertiesResponse wraps a paginated property query response.
type PropertiesResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int               `json:"total"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// ListPropertiesParams defines query parameters for property queries.
type ListPropertiesParams struct {
	City       string
	PostalCode string
	SubType    string
	Status     string
	PriceMin   float64
	PriceMax   float64
	BedsMin    int
	Waterfront bool
	Limit      int
	Offset     int
	OrderBy    string
}

// ListProperties returns properties matching the given parameters.
func (c *Client) ListProperties(
	ctx context.Context,
	params *ListPropertiesParams,
) (*PropertiesResponse, error) {
	q := url.Values{}
	if params.City != "" {
		q.Set("city", params.City)
	}
	if params.PostalCode != "" {
		q.Set("postal_code", params.PostalCode)
	}
	if params.SubType != "" {
		q.Set("sub_type", params.SubType)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.PriceMin > 0 {
		q.Set("price_min", strconv.FormatFloat(params.PriceMin, 'f', -1, 64))
	}
	if params.PriceMax > 0 {
		q.Set("price_max", strconv.FormatFloat(params.PriceMax, 'f', -1, 64))
	}
	if params.BedsMin > 0 {
		q.Set("beds_min", strconv.Itoa(params.BedsMin))
	}
	if params.Waterfront {
		q.Set("waterfront", "true")
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/properties"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp PropertiesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProperty returns a single property by ID.
func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	if err := c.get(ctx, "/api/v1/properties/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPropertyByMLS returns a single property by MLS number.
func (c *Client) GetPropertyByMLS(ctx context.Context, mlsNumber string) (*domain.Property, error) {
	var p domain.Property
	if err := c.get(ctx, "/api/v1/properties/mls/"+mlsNumber, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchResponse wraps a filtered search response with the canonical
// filter set the server applied.
type SearchResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int               `json:"total"`
	Normalized map[string]any    `json:"normalized"`
}

// Search runs a filter-map search against the inventory.
func (c *Client) Search(
	ctx context.Context,
	searchFilters map[string]any,
	limit, offset int,
) (*SearchResponse, error) {
	body := map[string]any{"filters": searchFilters}
	if limit > 0 {
		body["limit"] = limit
	}
	if offset > 0 {
		body["offset"] = offset
	}

	var resp SearchResponse
	if err := c.post(ctx, "/api/v1/properties/search", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ComparableResult is one scored comparable returned by the server.
type ComparableResult struct {
	Property domain.Property `json:"property"`
	Score    float64         `json:"score"`
}

// ComparablesResponse wraps a comparable search response.
type ComparablesResponse struct {
	Subject        domain.Property    `json:"subject"`
	Comparables    []ComparableResult `json:"comparables"`
	CandidateCount int                `json:"candidate_count"`
}

// FindComparables returns ranked comparables for a subject property.
func (c *Client) FindComparables(ctx context.Context, subjectID string) (*ComparablesResponse, error) {
	var resp ComparablesResponse
	if err := c.get(ctx, "/api/v1/properties/"+subjectID+"/comparables", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
