package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/engine"
	"github.com/harborview/mls-comps/internal/store"
)

// ComparableFinder defines the engine interface for comparable search.
type ComparableFinder interface {
	FindComparables(ctx context.Context, subjectID string) (*engine.ComparablesResult, error)
}

// ComparablesHandler handles comparable search requests.
type ComparablesHandler struct {
	finder ComparableFinder
}

// NewComparablesHandler creates a new ComparablesHandler.
func NewComparablesHandler(f ComparableFinder) *ComparablesHandler {
	return &ComparablesHandler{finder: f}
}

// FindComparablesInput is the input for the comparable search endpoint.
type FindComparablesInput struct {
	ID string `path:"id" doc:"Subject property UUID"`
}

// FindComparablesOutput is the response for the comparable search
// endpoint.
type FindComparablesOutput struct {
	Body engine.ComparablesResult
}

// FindComparables scores nearby properties against the subject and
// returns them ranked by similarity.
func (h *ComparablesHandler) FindComparables(
	ctx context.Context,
	input *FindComparablesInput,
) (*FindComparablesOutput, error) {
	result, err := h.finder.FindComparables(ctx, input.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, huma.Error404NotFound("property not found")
		case errors.Is(err, engine.ErrNoComparables):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, huma.Error500InternalServerError("comparable search failed: " + err.Error())
		}
	}

	return &FindComparablesOutput{Body: *result}, nil
}

// RegisterComparableRoutes registers comparable endpoints with the Huma
// API.
func RegisterComparableRoutes(api huma.API, h *ComparablesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "find-comparables",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/{id}/comparables",
		Summary:     "Find comparable properties",
		Description: "Scores nearby active and closed properties against the subject and returns them ranked by similarity.",
		Tags:        []string{"comparables"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.FindComparables)
}
