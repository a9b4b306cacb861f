package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview/mls-comps/internal/store"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// AgentsHandler handles agent management endpoints.
type AgentsHandler struct {
	store store.Store
}

// NewAgentsHandler creates a new AgentsHandler.
func NewAgentsHandler(s store.Store) *AgentsHandler {
	return &AgentsHandler{store: s}
}

// CreateAgentInput is the request body for creating an agent.
type CreateAgentInput struct {
	Body struct {
		Name          string `json:"name" minLength:"1" doc:"Agent name"`
		Email         string `json:"email" minLength:"3" doc:"Agent email"`
		Phone         string `json:"phone,omitempty" doc:"Agent phone"`
		LicenseNumber string `json:"license_number,omitempty" doc:"State license number"`
	}
}

// AgentOutput is the response for a single agent.
type AgentOutput struct {
	Body domain.Agent
}

// AgentIDInput identifies an agent by path.
type AgentIDInput struct {
	ID string `path:"id" doc:"Agent UUID"`
}

// ListAgentsInput is the input for listing agents.
type ListAgentsInput struct {
	ActiveOnly bool `query:"active_only" doc:"Return only active agents"`
}

// ListAgentsOutput is the response for listing agents.
type ListAgentsOutput struct {
	Body struct {
		Agents []domain.Agent `json:"agents"`
	}
}

// SetAgentActiveInput toggles an agent's active flag.
type SetAgentActiveInput struct {
	ID   string `path:"id" doc:"Agent UUID"`
	Body struct {
		Active bool `json:"active" doc:"Whether the agent receives lead routing"`
	}
}

// CreateAgent registers a new agent.
func (h *AgentsHandler) CreateAgent(
	ctx context.Context,
	input *CreateAgentInput,
) (*AgentOutput, error) {
	agent := &domain.Agent{
		Name:          input.Body.Name,
		Email:         input.Body.Email,
		Phone:         input.Body.Phone,
		LicenseNumber: input.Body.LicenseNumber,
		Active:        true,
	}

	if err := h.store.CreateAgent(ctx, agent); err != nil {
		return nil, huma.Error500InternalServerError("creating agent failed: " + err.Error())
	}

	return &AgentOutput{Body: *agent}, nil
}

// GetAgent returns a single agent by ID.
func (h *AgentsHandler) GetAgent(
	ctx context.Context,
	input *AgentIDInput,
) (*AgentOutput, error) {
	agent, err := h.store.GetAgent(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("agent not found")
		}
		return nil, huma.Error500InternalServerError("agent lookup failed: " + err.Error())
	}

	return &AgentOutput{Body: *agent}, nil
}

// ListAgents returns registered agents.
func (h *AgentsHandler) ListAgents(
	ctx context.Context,
	input *ListAgentsInput,
) (*ListAgentsOutput, error) {
	agents, err := h.store.ListAgents(ctx, input.ActiveOnly)
	if err != nil {
		return nil, huma.Error500InternalServerError("agent query failed: " + err.Error())
	}

	if agents == nil {
		agents = []domain.Agent{}
	}

	resp := &ListAgentsOutput{}
	resp.Body.Agents = agents
	return resp, nil
}

// SetAgentActive activates or deactivates an agent for lead routing.
func (h *AgentsHandler) SetAgentActive(
	ctx context.Context,
	input *SetAgentActiveInput,
) (*StatusOutput, error) {
	if err := h.store.SetAgentActive(ctx, input.ID, input.Body.Active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("agent not found")
		}
		return nil, huma.Error500InternalServerError("updating agent failed: " + err.Error())
	}

	resp := &StatusOutput{}
	resp.Body.Status = "updated"
	return resp, nil
}

// RegisterAgentRoutes registers agent endpoints with the Huma API.
func RegisterAgentRoutes(api huma.API, h *AgentsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-agent",
		Method:      http.MethodPost,
		Path:        "/api/v1/agents",
		Summary:     "Create an agent",
		Description: "Registers a new agent for lead routing.",
		Tags:        []string{"agents"},
	}, h.CreateAgent)

	huma.Register(api, huma.Operation{
		OperationID: "list-agents",
		Method:      http.MethodGet,
		Path:        "/api/v1/agents",
		Summary:     "List agents",
		Description: "Returns registered agents.",
		Tags:        []string{"agents"},
	}, h.ListAgents)

	huma.Register(api, huma.Operation{
		OperationID: "get-agent",
		Method:      http.MethodGet,
		Path:        "/api/v1/agents/{id}",
		Summary:     "Get an agent by ID",
		Description: "Returns a single agent.",
		Tags:        []string{"agents"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAgent)

	huma.Register(api, huma.Operation{
		OperationID: "set-agent-active",
		Method:      http.MethodPatch,
		Path:        "/api/v1/agents/{id}/active",
		Summary:     "Activate or deactivate an agent",
		Description: "Toggles whether the agent receives lead routing.",
		Tags:        []string{"agents"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetAgentActive)
}
