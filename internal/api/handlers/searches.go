package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/store"
	"github.com/harborview/mls-comps/pkg/filters"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// SavedSearchesHandler handles saved search endpoints.
type SavedSearchesHandler struct {
	store store.Store
}

// NewSavedSearchesHandler creates a new SavedSearchesHandler.
func NewSavedSearchesHandler(s store.Store) *SavedSearchesHandler {
	return &SavedSearchesHandler{store: s}
}

// CreateSavedSearchInput is the request body for saving a search.
type CreateSavedSearchInput struct {
	Body struct {
		Name         string         `json:"name" minLength:"1" doc:"Search name"`
		ContactEmail string         `json:"contact_email" minLength:"3" doc:"Owner email"`
		Filters      map[string]any `json:"filters" doc:"Search filters in any supported key style"`
	}
}

// SavedSearchOutput is the response for a single saved search.
type SavedSearchOutput struct {
	Body domain.SavedSearch
}

// SavedSearchIDInput identifies a saved search by path.
type SavedSearchIDInput struct {
	ID string `path:"id" doc:"Saved search UUID"`
}

// ListSavedSearchesInput is the input for listing saved searches.
type ListSavedSearchesInput struct {
	ContactEmail string `query:"contact_email" doc:"Filter by owner email"`
}

// ListSavedSearchesOutput is the response for listing saved searches.
type ListSavedSearchesOutput struct {
	Body struct {
		Searches []domain.SavedSearch `json:"searches"`
	}
}

// RunSavedSearchInput is the input for running a saved search.
type RunSavedSearchInput struct {
	ID     string `path:"id"     doc:"Saved search UUID"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// RunSavedSearchOutput is the response for running a saved search.
type RunSavedSearchOutput struct {
	Body struct {
		Search     domain.SavedSearch `json:"search"`
		Properties []domain.Property  `json:"properties"`
		Total      int                `json:"total"`
	}
}

// CreateSavedSearch persists a search with its filters normalized to
// the canonical key set.
func (h *SavedSearchesHandler) CreateSavedSearch(
	ctx context.Context,
	input *CreateSavedSearchInput,
) (*SavedSearchOutput, error) {
	search := &domain.SavedSearch{
		Name:         input.Body.Name,
		ContactEmail: input.Body.ContactEmail,
		Filters:      filters.Normalize(input.Body.Filters),
	}

	if err := h.store.CreateSavedSearch(ctx, search); err != nil {
		return nil, huma.Error500InternalServerError("saving search failed: " + err.Error())
	}

	return &SavedSearchOutput{Body: *search}, nil
}

// GetSavedSearch returns a single saved search by ID.
func (h *SavedSearchesHandler) GetSavedSearch(
	ctx context.Context,
	input *SavedSearchIDInput,
) (*SavedSearchOutput, error) {
	search, err := h.store.GetSavedSearch(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("saved search not found")
		}
		return nil, huma.Error500InternalServerError("saved search lookup failed: " + err.Error())
	}

	return &SavedSearchOutput{Body: *search}, nil
}

// ListSavedSearches returns saved searches, optionally by owner.
func (h *SavedSearchesHandler) ListSavedSearches(
	ctx context.Context,
	input *ListSavedSearchesInput,
) (*ListSavedSearchesOutput, error) {
	searches, err := h.store.ListSavedSearches(ctx, input.ContactEmail)
	if err != nil {
		return nil, huma.Error500InternalServerError("saved search query failed: " + err.Error())
	}

	if searches == nil {
		searches = []domain.SavedSearch{}
	}

	resp := &ListSavedSearchesOutput{}
	resp.Body.Searches = searches
	return resp, nil
}

// RunSavedSearch executes a saved search's stored filters against the
// current inventory.
func (h *SavedSearchesHandler) RunSavedSearch(
	ctx context.Context,
	input *RunSavedSearchInput,
) (*RunSavedSearchOutput, error) {
	search, err := h.store.GetSavedSearch(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("saved search not found")
		}
		return nil, huma.Error500InternalServerError("saved search lookup failed: " + err.Error())
	}

	// Stored filters are already canonical; normalize again to stay
	// tolerant of rows written before an alias was added.
	q := queryFromFilters(filters.Normalize(search.Filters))
	q.Offset = input.Offset
	if input.Limit > 0 {
		q.Limit = input.Limit
	}

	properties, total, err := h.store.ListProperties(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("search query failed: " + err.Error())
	}

	resp := &RunSavedSearchOutput{}
	resp.Body.Search = *search
	resp.Body.Properties = properties
	resp.Body.Total = total
	return resp, nil
}

// DeleteSavedSearch removes a saved search.
func (h *SavedSearchesHandler) DeleteSavedSearch(
	ctx context.Context,
	input *SavedSearchIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteSavedSearch(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("saved search not found")
		}
		return nil, huma.Error500InternalServerError("deleting saved search failed: " + err.Error())
	}
	return &struct{}{}, nil
}

// RegisterSavedSearchRoutes registers saved search endpoints with the
// Huma API.
func RegisterSavedSearchRoutes(api huma.API, h *SavedSearchesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-saved-search",
		Method:      http.MethodPost,
		Path:        "/api/v1/saved-searches",
		Summary:     "Save a search",
		Description: "Persists a search with its filters normalized to the canonical key set.",
		Tags:        []string{"saved-searches"},
	}, h.CreateSavedSearch)

	huma.Register(api, huma.Operation{
		OperationID: "list-saved-searches",
		Method:      http.MethodGet,
		Path:        "/api/v1/saved-searches",
		Summary:     "List saved searches",
		Description: "Returns saved searches, optionally filtered by owner email.",
		Tags:        []string{"saved-searches"},
	}, h.ListSavedSearches)

	huma.Register(api, huma.Operation{
		OperationID: "get-saved-search",
		Method:      http.MethodGet,
		Path:        "/api/v1/saved-searches/{id}",
		Summary:     "Get a saved search",
		Description: "Returns a single saved search.",
		Tags:        []string{"saved-searches"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSavedSearch)

	huma.Register(api, huma.Operation{
		OperationID: "run-saved-search",
		Method:      http.MethodPost,
		Path:        "/api/v1/saved-searches/{id}/run",
		Summary:     "Run a saved search",
		Description: "Executes the stored filters against the current inventory.",
		Tags:        []string{"saved-searches"},
		Errors:      []int{http.StatusNotFound},
	}, h.RunSavedSearch)

	huma.Register(api, huma.Operation{
		OperationID: "delete-saved-search",
		Method:      http.MethodDelete,
		Path:        "/api/v1/saved-searches/{id}",
		Summary:     "Delete a saved search",
		Description: "Removes a saved search.",
		Tags:        []string{"saved-searches"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteSavedSearch)
}
