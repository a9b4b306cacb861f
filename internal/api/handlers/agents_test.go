package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harborview/mls-comps/internal/api/handlers"
	"github.com/harborview/mls-comps/internal/store"
	storeMocks "github.com/harborview/mls-comps/internal/store/mocks"
	domain "github.com/harborview/mls-comps/pkg/types"
)

func newAgentsAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterAgentRoutes(api, handlers.NewAgentsHandler(ms))
	return api
}

func TestAgentsHandler_CreateAgent(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		CreateAgent(mock.Anything, mock.MatchedBy(func(a *domain.Agent) bool {
			return a.Name == "Sam Agent" && a.Email == "sam@example.com" && a.Active
		})).
		RunAndReturn(func(_ context.Context, a *domain.Agent) error {
			a.ID = "agent-1"
			return nil
		}).Once()

	api := newAgentsAPI(t, mockStore)

	resp := api.Post("/api/v1/agents", map[string]any{
		"name":           "Sam Agent",
		"email":          "sam@example.com",
		"license_number": "FL-12345",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"agent-1"`)
	assert.Contains(t, resp.Body.String(), `"active":true`)
}

func TestAgentsHandler_GetAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetAgent(mock.Anything, "agent-1").
					Return(&domain.Agent{ID: "agent-1", Name: "Sam Agent", Active: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Sam Agent"`,
		},
		{
			name: "missing returns 404",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetAgent(mock.Anything, "agent-1").
					Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `agent not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			api := newAgentsAPI(t, mockStore)

			resp := api.Get("/api/v1/agents/agent-1")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAgentsHandler_ListAgents(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListAgents(mock.Anything, true).
		Return([]domain.Agent{{ID: "agent-1", Active: true}}, nil).Once()

	api := newAgentsAPI(t, mockStore)

	resp := api.Get("/api/v1/agents?active_only=true")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"agent-1"`)
}

func TestAgentsHandler_SetAgentActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		updateErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deactivates the agent",
			updateErr:  nil,
			wantStatus: http.StatusOK,
			wantBody:   `"status":"updated"`,
		},
		{
			name:       "missing returns 404",
			updateErr:  store.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `agent not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			mockStore.EXPECT().
				SetAgentActive(mock.Anything, "agent-1", false).
				Return(tt.updateErr).Once()

			api := newAgentsAPI(t, mockStore)

			resp := api.Patch("/api/v1/agents/agent-1/active", map[string]any{"active": false})
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
