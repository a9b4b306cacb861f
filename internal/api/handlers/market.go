package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/store"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// MarketHandler handles market heat and snapshot endpoints.
type MarketHandler struct {
	store store.Store
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(s store.Store) *MarketHandler {
	return &MarketHandler{store: s}
}

// CityInput identifies a city by path.
type CityInput struct {
	City string `path:"city" doc:"City name (case-insensitive)"`
}

// HeatOutput is the response for the heat endpoint.
type HeatOutput struct {
	Body domain.MarketSnapshot
}

// ListSnapshotsInput is the input for the snapshot history endpoint.
type ListSnapshotsInput struct {
	City  string `path:"city"   doc:"City name (case-insensitive)"`
	Limit int    `query:"limit" doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// ListSnapshotsOutput is the response for the snapshot history
// endpoint.
type ListSnapshotsOutput struct {
	Body struct {
		Snapshots []domain.MarketSnapshot `json:"snapshots"`
	}
}

// CitiesOutput is the response for the city list endpoint.
type CitiesOutput struct {
	Body struct {
		Cities []string `json:"cities"`
	}
}

// GetHeat returns the latest heat snapshot for a city.
func (h *MarketHandler) GetHeat(ctx context.Context, input *CityInput) (*HeatOutput, error) {
	snapshot, err := h.store.LatestMarketSnapshot(ctx, input.City)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("no snapshot for city")
		}
		return nil, huma.Error500InternalServerError("snapshot lookup failed: " + err.Error())
	}

	return &HeatOutput{Body: *snapshot}, nil
}

// ListSnapshots returns the snapshot time series for a city, newest
// first.
func (h *MarketHandler) ListSnapshots(
	ctx context.Context,
	input *ListSnapshotsInput,
) (*ListSnapshotsOutput, error) {
	snapshots, err := h.store.ListMarketSnapshots(ctx, input.City, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("snapshot query failed: " + err.Error())
	}

	if snapshots == nil {
		snapshots = []domain.MarketSnapshot{}
	}

	resp := &ListSnapshotsOutput{}
	resp.Body.Snapshots = snapshots
	return resp, nil
}

// ListCities returns the cities with stored inventory.
func (h *MarketHandler) ListCities(ctx context.Context, _ *struct{}) (*CitiesOutput, error) {
	cities, err := h.store.ListCities(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("city query failed: " + err.Error())
	}

	if cities == nil {
		cities = []string{}
	}

	resp := &CitiesOutput{}
	resp.Body.Cities = cities
	return resp, nil
}

// RegisterMarketRoutes registers market endpoints with the Huma API.
func RegisterMarketRoutes(api huma.API, h *MarketHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-market-heat",
		Method:      http.MethodGet,
		Path:        "/api/v1/market/{city}/heat",
		Summary:     "Get market heat for a city",
		Description: "Returns the latest heat index snapshot for a city.",
		Tags:        []string{"market"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetHeat)

	huma.Register(api, huma.Operation{
		OperationID: "list-market-snapshots",
		Method:      http.MethodGet,
		Path:        "/api/v1/market/{city}/snapshots",
		Summary:     "List market snapshots for a city",
		Description: "Returns the snapshot time series for a city, newest first.",
		Tags:        []string{"market"},
	}, h.ListSnapshots)

	huma.Register(api, huma.Operation{
		OperationID: "list-cities",
		Method:      http.MethodGet,
		Path:        "/api/v1/market/cities",
		Summary:     "List cities",
		Description: "Returns the cities with stored inventory.",
		Tags:        []string{"market"},
	}, h.ListCities)
}
