package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/engine"
	"github.com/harborview/mls-comps/internal/store"
	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// CMAService defines the engine operations behind the CMA endpoints.
type CMAService interface {
	CreateSession(ctx context.Context, in *engine.SessionInput) (*domain.CMASession, error)
	ComputeValuation(ctx context.Context, sessionID string) (*comps.Valuation, error)
	FinalizeSession(ctx context.Context, sessionID string) (*comps.Valuation, error)
	RegradeComparable(ctx context.Context, c *domain.CMAComparable) (*comps.Valuation, error)
}

// CMAHandler handles CMA session endpoints.
type CMAHandler struct {
	service CMAService
	store   store.Store
}

// NewCMAHandler creates a new CMAHandler.
func NewCMAHandler(svc CMAService, s store.Store) *CMAHandler {
	return &CMAHandler{service: svc, store: s}
}

// --- Input/Output types ---

// CreateSessionInput is the request body for creating a CMA session.
type CreateSessionInput struct {
	Body struct {
		Name        string                          `json:"name" minLength:"1" doc:"Session name" example:"1200 Harbor Dr CMA"`
		SubjectID   string                          `json:"subject_id" minLength:"1" doc:"Subject property UUID"`
		ContactName string                          `json:"contact_name,omitempty" doc:"Client the report is prepared for"`
		Notes       string                          `json:"notes,omitempty" doc:"Free-form session notes"`
		Comparables []engine.SessionComparableInput `json:"comparables,omitempty" doc:"Chosen comparables; omit to auto-select top ranked"`
	}
}

// SessionOutput is the response for creating or fetching a session.
type SessionOutput struct {
	Body struct {
		Session     domain.CMASession      `json:"session"`
		Comparables []domain.CMAComparable `json:"comparables,omitempty"`
	}
}

// SessionIDInput identifies a session by path.
type SessionIDInput struct {
	ID string `path:"id" doc:"Session UUID"`
}

// ListSessionsInput is the input for listing sessions.
type ListSessionsInput struct {
	Limit int `query:"limit" doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// ListSessionsOutput is the response for listing sessions.
type ListSessionsOutput struct {
	Body struct {
		Sessions []domain.CMASession `json:"sessions"`
	}
}

// ValuationOutput is the response for valuation endpoints.
type ValuationOutput struct {
	Body comps.Valuation
}

// RegradeInput updates one comparable's grade or manual weight.
type RegradeInput struct {
	SessionID    string `path:"id"            doc:"Session UUID"`
	ComparableID string `path:"comparable_id" doc:"Comparable row UUID"`
	Body         struct {
		Grade           string  `json:"grade" enum:"A,B,C,D,F" doc:"Assigned grade"`
		UseCustomWeight bool    `json:"use_custom_weight,omitempty" doc:"Override the grade weight"`
		CustomWeight    float64 `json:"custom_weight,omitempty" minimum:"0" doc:"Manual weight when overridden"`
	}
}

// --- Handlers ---

// CreateSession creates a new CMA session.
func (h *CMAHandler) CreateSession(
	ctx context.Context,
	input *CreateSessionInput,
) (*SessionOutput, error) {
	session, err := h.service.CreateSession(ctx, &engine.SessionInput{
		Name:        input.Body.Name,
		SubjectID:   input.Body.SubjectID,
		ContactName: input.Body.ContactName,
		Notes:       input.Body.Notes,
		Comparables: input.Body.Comparables,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, huma.Error404NotFound("subject property not found")
		case errors.Is(err, engine.ErrNoComparables):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, huma.Error500InternalServerError("creating session failed: " + err.Error())
		}
	}

	resp := &SessionOutput{}
	resp.Body.Session = *session
	return resp, nil
}

// GetSession returns a session with its comparables.
func (h *CMAHandler) GetSession(
	ctx context.Context,
	input *SessionIDInput,
) (*SessionOutput, error) {
	session, comparables, err := h.store.GetCMASession(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("session not found")
		}
		return nil, huma.Error500InternalServerError("session lookup failed: " + err.Error())
	}

	resp := &SessionOutput{}
	resp.Body.Session = *session
	resp.Body.Comparables = comparables
	return resp, nil
}

// ListSessions returns recent sessions, newest first.
func (h *CMAHandler) ListSessions(
	ctx context.Context,
	input *ListSessionsInput,
) (*ListSessionsOutput, error) {
	sessions, err := h.store.ListCMASessions(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("session query failed: " + err.Error())
	}

	if sessions == nil {
		sessions = []domain.CMASession{}
	}

	resp := &ListSessionsOutput{}
	resp.Body.Sessions = sessions
	return resp, nil
}

// ComputeValuation recomputes the session's valuation and stores it as
// the session snapshot.
func (h *CMAHandler) ComputeValuation(
	ctx context.Context,
	input *SessionIDInput,
) (*ValuationOutput, error) {
	valuation, err := h.service.ComputeValuation(ctx, input.ID)
	if err != nil {
		return nil, valuationError(err)
	}
	return &ValuationOutput{Body: *valuation}, nil
}

// FinalizeSession computes the valuation and marks the session final.
func (h *CMAHandler) FinalizeSession(
	ctx context.Context,
	input *SessionIDInput,
) (*ValuationOutput, error) {
	valuation, err := h.service.FinalizeSession(ctx, input.ID)
	if err != nil {
		return nil, valuationError(err)
	}
	return &ValuationOutput{Body: *valuation}, nil
}

// RegradeComparable updates one comparable and returns the refreshed
// valuation.
func (h *CMAHandler) RegradeComparable(
	ctx context.Context,
	input *RegradeInput,
) (*ValuationOutput, error) {
	valuation, err := h.service.RegradeComparable(ctx, &domain.CMAComparable{
		ID:              input.ComparableID,
		SessionID:       input.SessionID,
		Grade:           domain.Grade(input.Body.Grade),
		UseCustomWeight: input.Body.UseCustomWeight,
		CustomWeight:    input.Body.CustomWeight,
	})
	if err != nil {
		return nil, valuationError(err)
	}
	return &ValuationOutput{Body: *valuation}, nil
}

// DeleteSession removes a session and its comparables.
func (h *CMAHandler) DeleteSession(
	ctx context.Context,
	input *SessionIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteCMASession(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("session not found")
		}
		return nil, huma.Error500InternalServerError("deleting session failed: " + err.Error())
	}
	return &struct{}{}, nil
}

func valuationError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("session not found")
	case errors.Is(err, engine.ErrNoValuation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("valuation failed: " + err.Error())
	}
}

// RegisterCMARoutes registers CMA session endpoints with the Huma API.
func RegisterCMARoutes(api huma.API, h *CMAHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-cma-session",
		Method:      http.MethodPost,
		Path:        "/api/v1/cma/sessions",
		Summary:     "Create a CMA session",
		Description: "Creates a session for a subject property with chosen or auto-selected comparables.",
		Tags:        []string{"cma"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "list-cma-sessions",
		Method:      http.MethodGet,
		Path:        "/api/v1/cma/sessions",
		Summary:     "List CMA sessions",
		Description: "Returns recent CMA sessions, newest first.",
		Tags:        []string{"cma"},
	}, h.ListSessions)

	huma.Register(api, huma.Operation{
		OperationID: "get-cma-session",
		Method:      http.MethodGet,
		Path:        "/api/v1/cma/sessions/{id}",
		Summary:     "Get a CMA session",
		Description: "Returns a session with its comparables.",
		Tags:        []string{"cma"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "compute-cma-valuation",
		Method:      http.MethodPost,
		Path:        "/api/v1/cma/sessions/{id}/valuation",
		Summary:     "Compute a session valuation",
		Description: "Runs the grade-weighted aggregator over the session's comparables and stores the snapshot.",
		Tags:        []string{"cma"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.ComputeValuation)

	huma.Register(api, huma.Operation{
		OperationID: "finalize-cma-session",
		Method:      http.MethodPost,
		Path:        "/api/v1/cma/sessions/{id}/finalize",
		Summary:     "Finalize a CMA session",
		Description: "Computes the valuation one last time and marks the session final.",
		Tags:        []string{"cma"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.FinalizeSession)

	huma.Register(api, huma.Operation{
		OperationID: "regrade-cma-comparable",
		Method:      http.MethodPatch,
		Path:        "/api/v1/cma/sessions/{id}/comparables/{comparable_id}",
		Summary:     "Regrade a comparable",
		Description: "Updates one comparable's grade or manual weight and returns the refreshed valuation.",
		Tags:        []string{"cma"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.RegradeComparable)

	huma.Register(api, huma.Operation{
		OperationID: "delete-cma-session",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cma/sessions/{id}",
		Summary:     "Delete a CMA session",
		Description: "Removes a session and its comparables.",
		Tags:        []string{"cma"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteSession)
}
