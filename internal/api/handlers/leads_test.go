package handlers_test

import (
	"context"
	"errors"
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

func newLeadsAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterLeadRoutes(api, handlers.NewLeadsHandler(ms))
	return api
}

func TestLeadsHandler_CreateLead(t *testing.T) {
	t.Parallel()

	leadBody := map[string]any{
		"name":        "Jordan Buyer",
		"email":       "buyer@example.com",
		"message":     "Is the seawall new?",
		"source":      "listing_detail",
		"property_id": "prop-1",
	}

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "captures and routes to least-loaded agent",
			body: leadBody,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateLead(mock.Anything, mock.MatchedBy(func(l *domain.Lead) bool {
						return l.Email == "buyer@example.com" &&
							l.PropertyID != nil && *l.PropertyID == "prop-1"
					})).
					RunAndReturn(func(_ context.Context, l *domain.Lead) error {
						l.ID = "lead-1"
						return nil
					}).Once()
				m.EXPECT().
					LeastLoadedAgent(mock.Anything).
					Return(&domain.Agent{ID: "agent-1", Name: "Sam Agent", Active: true}, nil).Once()
				m.EXPECT().
					AssignLead(mock.Anything, "lead-1", "agent-1").
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"agent_id":"agent-1"`,
		},
		{
			name: "capture survives with no active agents",
			body: leadBody,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateLead(mock.Anything, mock.Anything).
					Return(nil).Once()
				m.EXPECT().
					LeastLoadedAgent(mock.Anything).
					Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"email":"buyer@example.com"`,
		},
		{
			name: "routing error returns 500",
			body: leadBody,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateLead(mock.Anything, mock.Anything).
					Return(nil).Once()
				m.EXPECT().
					LeastLoadedAgent(mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `routing lead failed`,
		},
		{
			name: "create error returns 500",
			body: leadBody,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateLead(mock.Anything, mock.Anything).
					Return(errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `creating lead failed`,
		},
		{
			name:       "missing email rejected",
			body:       map[string]any{"name": "Jordan Buyer"},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected required property email to be present`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			api := newLeadsAPI(t, mockStore)

			resp := api.Post("/api/v1/leads", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestLeadsHandler_ListLeads(t *testing.T) {
	t.Parallel()

	agentID := "agent-1"

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "lists all leads",
			path: "/api/v1/leads",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListLeads(mock.Anything, (*string)(nil), 0).
					Return([]domain.Lead{{ID: "lead-1", Name: "Jordan Buyer", Email: "buyer@example.com"}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"lead-1"`,
		},
		{
			name: "filters by agent",
			path: "/api/v1/leads?agent_id=agent-1&limit=10",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListLeads(mock.Anything, &agentID, 10).
					Return([]domain.Lead{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"leads":[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			api := newLeadsAPI(t, mockStore)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
