package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// CreateSavedSearchRequest contains the fields the API accepts when
// saving a search.
type CreateSavedSearchRequest struct {
	Name         string         `json:"name"`
	ContactEmail string         `json:"contact_email"`
	Filters      map[string]any `json:"filters"`
}

// CreateSavedSearch persists a search for a contact.
func (c *Client) CreateSavedSearch(
	ctx context.Context,
	req *CreateSavedSearchRequest,
) (*domain.SavedSearch, error) {
	var search domain.SavedSearch
	if err := c.post(ctx, "/api/v1/saved-searches", req, &search); err != nil {
		return nil, err
	}
	return &search, nil
}

// GetSavedSearch returns a single saved search by ID.
func (c *Client) GetSavedSearch(ctx context.Context, id string) (*domain.SavedSearch, error) {
	var search domain.SavedSearch
	if err := c.get(ctx, "/api/v1/saved-searches/"+id, &search); err != nil {
		return nil, err
	}
	return &search, nil
}

// ListSavedSearches returns saved searches, optionally by owner email.
func (c *Client) ListSavedSearches(ctx context.Context, contactEmail string) ([]domain.SavedSearch, error) {
	path := "/api/v1/saved-searches"
	if contactEmail != "" {
		path += "?contact_email=" + url.QueryEscape(contactEmail)
	}

	var resp struct {
		Searches []domain.SavedSearch `json:"searches"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Searches, nil
}

// RunSavedSearchResponse wraps the result of running a saved search.
type RunSavedSearchResponse struct {
	Search     domain.SavedSearch `json:"search"`
	Properties []domain.Property  `json:"properties"`
	Total      int                `json:"total"`
}

// RunSavedSearch executes the stored filters against the current
// inventory.
func (c *Client) RunSavedSearch(ctx context.Context, id string, limit int) (*RunSavedSearchResponse, error) {
	path := "/api/v1/saved-searches/" + id + "/run"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp RunSavedSearchResponse
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSavedSearch removes a saved search.
func (c *Client) DeleteSavedSearch(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/saved-searches/"+id, nil)
}
