package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/metrics"
	"github.com/harborview/mls-comps/internal/store"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// LeadsHandler handles lead capture and listing.
type LeadsHandler struct {
	store store.Store
}

// NewLeadsHandler creates a new LeadsHandler.
func NewLeadsHandler(s store.Store) *LeadsHandler {
	return &LeadsHandler{store: s}
}

// CreateLeadInput is the request body for capturing a lead.
type CreateLeadInput struct {
	Body struct {
		Name       string `json:"name" minLength:"1" doc:"Lead name"`
		Email      string `json:"email" minLength:"3" doc:"Lead email" example:"buyer@example.com"`
		Phone      string `json:"phone,omitempty" doc:"Lead phone"`
		Message    string `json:"message,omitempty" doc:"Inquiry message"`
		Source     string `json:"source,omitempty" doc:"Capture source" example:"listing_detail"`
		PropertyID string `json:"property_id,omitempty" doc:"Property the inquiry is about"`
	}
}

// CreateLeadOutput is the response for capturing a lead.
type CreateLeadOutput struct {
	Body domain.Lead
}

// ListLeadsInput is the input for listing leads.
type ListLeadsInput struct {
	AgentID string `query:"agent_id" doc:"Filter by assigned agent UUID"`
	Limit   int    `query:"limit"    doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// ListLeadsOutput is the response for listing leads.
type ListLeadsOutput struct {
	Body struct {
		Leads []domain.Lead `json:"leads"`
	}
}

// CreateLead captures a lead and routes it to the least-loaded active
// agent. Capture still succeeds when no agent is available; the lead
// stays unassigned.
func (h *LeadsHandler) CreateLead(
	ctx context.Context,
	input *CreateLeadInput,
) (*CreateLeadOutput, error) {
	lead := &domain.Lead{
		Name:    input.Body.Name,
		Email:   input.Body.Email,
		Phone:   input.Body.Phone,
		Message: input.Body.Message,
		Source:  input.Body.Source,
	}
	if input.Body.PropertyID != "" {
		lead.PropertyID = &input.Body.PropertyID
	}

	if err := h.store.CreateLead(ctx, lead); err != nil {
		return nil, huma.Error500InternalServerError("creating lead failed: " + err.Error())
	}
	metrics.LeadsCapturedTotal.Inc()

	if agent, err := h.store.LeastLoadedAgent(ctx); err == nil {
		if err := h.store.AssignLead(ctx, lead.ID, agent.ID); err == nil {
			lead.AgentID = &agent.ID
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error500InternalServerError("routing lead failed: " + err.Error())
	}

	return &CreateLeadOutput{Body: *lead}, nil
}

// ListLeads returns leads, optionally filtered by assigned agent.
func (h *LeadsHandler) ListLeads(
	ctx context.Context,
	input *ListLeadsInput,
) (*ListLeadsOutput, error) {
	var agentID *string
	if input.AgentID != "" {
		agentID = &input.AgentID
	}

	leads, err := h.store.ListLeads(ctx, agentID, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("lead query failed: " + err.Error())
	}

	if leads == nil {
		leads = []domain.Lead{}
	}

	resp := &ListLeadsOutput{}
	resp.Body.Leads = leads
	return resp, nil
}

// RegisterLeadRoutes registers lead endpoints with the Huma API.
func RegisterLeadRoutes(api huma.API, h *LeadsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-lead",
		Method:      http.MethodPost,
		Path:        "/api/v1/leads",
		Summary:     "Capture a lead",
		Description: "Captures an inquiry and routes it to the least-loaded active agent.",
		Tags:        []string{"leads"},
	}, h.CreateLead)

	huma.Register(api, huma.Operation{
		OperationID: "list-leads",
		Method:      http.MethodGet,
		Path:        "/api/v1/leads",
		Summary:     "List leads",
		Description: "Returns captured leads, optionally filtered by assigned agent.",
		Tags:        []string{"leads"},
	}, h.ListLeads)
}
