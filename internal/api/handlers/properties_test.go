package handlers_test

import (
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

func sampleProperty() domain.Property {
	return domain.Property{
		ID:              "prop-1",
		MLSNumber:       "F10412345",
		AddressFull:     "1200 Harbor Dr, Fort Lauderdale, FL 33316",
		City:            "Fort Lauderdale",
		State:           "FL",
		PostalCode:      "33316",
		ListPrice:       500000,
		Beds:            3,
		Baths:           2,
		LivingArea:      1800,
		YearBuilt:       1998,
		Latitude:        26.1224,
		Longitude:       -80.1373,
		PropertySubType: "SingleFamilyResidence",
		StandardStatus:  domain.StatusActive,
	}
}

func TestPropertiesHandler_ListProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns matching properties",
			path: "/api/v1/properties?city=Fort+Lauderdale&beds_min=3&limit=10",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProperties(mock.Anything, mock.MatchedBy(func(q *store.PropertyQuery) bool {
						return q.City != nil && *q.City == "Fort Lauderdale" &&
							q.BedsMin != nil && *q.BedsMin == 3 &&
							q.Limit == 10
					})).
					Return([]domain.Property{sampleProperty()}, 1, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name: "passes status filter through",
			path: "/api/v1/properties?status=closed",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProperties(mock.Anything, mock.MatchedBy(func(q *store.PropertyQuery) bool {
						return len(q.Statuses) == 1 && q.Statuses[0] == "closed"
					})).
					Return([]domain.Property{}, 0, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":0`,
		},
		{
			name:       "rejects oversized limit",
			path:       "/api/v1/properties?limit=9999",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   ``,
		},
		{
			name: "store error returns 500",
			path: "/api/v1/properties",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProperties(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `property query failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			h := handlers.NewPropertiesHandler(mockStore)

			_, api := humatest.New(t)
			handlers.RegisterPropertyRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestPropertiesHandler_GetProperty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found by id",
			path: "/api/v1/properties/prop-1",
			setupMock: func(m *storeMocks.MockStore) {
				p := sampleProperty()
				m.EXPECT().
					GetPropertyByID(mock.Anything, "prop-1").
					Return(&p, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"mls_number":"F10412345"`,
		},
		{
			name: "missing id returns 404",
			path: "/api/v1/properties/nope",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetPropertyByID(mock.Anything, "nope").
					Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `property not found`,
		},
		{
			name: "found by mls number",
			path: "/api/v1/properties/mls/F10412345",
			setupMock: func(m *storeMocks.MockStore) {
				p := sampleProperty()
				m.EXPECT().
					GetProperty(mock.Anything, "F10412345").
					Return(&p, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"prop-1"`,
		},
		{
			name: "missing mls number returns 404",
			path: "/api/v1/properties/mls/X0000",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetProperty(mock.Anything, "X0000").
					Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `property not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			h := handlers.NewPropertiesHandler(mockStore)

			_, api := humatest.New(t)
			handlers.RegisterPropertyRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
