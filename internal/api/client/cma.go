package client

import (
	"context"
	"strconv"

	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// SessionComparable selects one comparable for a new CMA session.
type SessionComparable struct {
	PropertyID      string  `json:"property_id"`
	Grade           string  `json:"grade,omitempty"`
	UseCustomWeight bool    `json:"use_custom_weight,omitempty"`
	CustomWeight    float64 `json:"custom_weight,omitempty"`
}

// CreateSessionRequest contains the fields the API accepts when creating
// a CMA session.
type CreateSessionRequest struct {
	Name        string              `json:"name"`
	SubjectID   string              `json:"subject_id"`
	ContactName string              `json:"contact_name,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	Comparables []SessionComparable `json:"comparables,omitempty"`
}

// SessionResponse wraps a session with its comparables.
type SessionResponse struct {
	Session     domain.CMASession      `json:"session"`
	Comparables []domain.CMAComparable `json:"comparables"`
}

// CreateSession creates a new CMA session.
func (c *Client) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.post(ctx, "/api/v1/cma/sessions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSession returns a session with its comparables.
func (c *Client) GetSession(ctx context.Context, id string) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.get(ctx, "/api/v1/cma/sessions/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSessions returns recent CMA sessions, newest first.
func (c *Client) ListSessions(ctx context.Context, limit int) ([]domain.CMASession, error) {
	path := "/api/v1/cma/sessions"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp struct {
		Sessions []domain.CMASession `json:"sessions"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// ComputeValuation recomputes and returns the session valuation.
func (c *Client) ComputeValuation(ctx context.Context, id string) (*comps.Valuation, error) {
	var v comps.Valuation
	if err := c.post(ctx, "/api/v1/cma/sessions/"+id+"/valuation", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// FinalizeSession computes the valuation and marks the session final.
func (c *Client) FinalizeSession(ctx context.Context, id string) (*comps.Valuation, error) {
	var v comps.Valuation
	if err := c.post(ctx, "/api/v1/cma/sessions/"+id+"/finalize", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// RegradeComparable updates one comparable's grade or manual weight and
// returns the refreshed valuation.
func (c *Client) RegradeComparable(
	ctx context.Context,
	sessionID, comparableID string,
	grade string,
	useCustomWeight bool,
	customWeight float64,
) (*comps.Valuation, error) {
	body := map[string]any{"grade": grade}
	if useCustomWeight {
		body["use_custom_weight"] = true
		body["custom_weight"] = customWeight
	}

	var v comps.Valuation
	path := "/api/v1/cma/sessions/" + sessionID + "/comparables/" + comparableID
	if err := c.patch(ctx, path, body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteSession removes a session and its comparables.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/cma/sessions/"+id, nil)
}
