package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// CreateLeadRequest contains the fields the API accepts when capturing a
// lead.
type CreateLeadRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message,omitempty"`
	Source     string `json:"source,omitempty"`
	PropertyID string `json:"property_id,omitempty"`
}

// CreateLead captures a lead and returns it with any agent assignment.
func (c *Client) CreateLead(ctx context.Context, req *CreateLeadRequest) (*domain.Lead, error) {
	var lead domain.Lead
	if err := c.post(ctx, "/api/v1/leads", req, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListLeads returns captured leads, optionally filtered by assigned
// agent.
func (c *Client) ListLeads(ctx context.Context, agentID string, limit int) ([]domain.Lead, error) {
	q := url.Values{}
	if agentID != "" {
		q.Set("agent_id", agentID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/leads"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Leads []domain.Lead `json:"leads"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Leads, nil
}

// CreateAgentRequest contains the fields the API accepts when creating
// an agent.
type CreateAgentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
}

// CreateAgent registers a new agent.
func (c *Client) CreateAgent(ctx context.Context, req *CreateAgentRequest) (*domain.Agent, error) {
	var agent domain.Agent
	if err := c.post(ctx, "/api/v1/agents", req, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAgent returns a single agent by ID.
func (c *Client) GetAgent(ctx context.Context, id string) (*domain.Agent, error) {
	var agent domain.Agent
	if err := c.get(ctx, "/api/v1/agents/"+id, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// ListAgents returns registered agents.
func (c *Client) ListAgents(ctx context.Context, activeOnly bool) ([]domain.Agent, error) {
	path := "/api/v1/agents"
	if activeOnly {
		path += "?active_only=true"
	}

	var resp struct {
		Agents []domain.Agent `json:"agents"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// SetAgentActive activates or deactivates an agent for lead routing.
func (c *Client) SetAgentActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.patch(ctx, "/api/v1/agents/"+id+"/active", body, nil)
}
