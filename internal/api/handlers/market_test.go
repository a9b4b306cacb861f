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

func sampleSnapshot() domain.MarketSnapshot {
	return domain.MarketSnapshot{
		ID:             "snap-1",
		City:           "Fort Lauderdale",
		AvgDOM:         30,
		SPLPRatio:      98,
		MonthsSupply:   10,
		AbsorptionRate: 10,
		HeatScore:      43,
		HeatLabel:      "balanced",
		ActiveCount:    50,
		ClosedCount:    30,
	}
}

func newMarketAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterMarketRoutes(api, handlers.NewMarketHandler(ms))
	return api
}

func TestMarketHandler_GetHeat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns latest snapshot",
			setupMock: func(m *storeMocks.MockStore) {
				snap := sampleSnapshot()
				m.EXPECT().
					LatestMarketSnapshot(mock.Anything, "Fort Lauderdale").
					Return(&snap, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"heat_label":"balanced"`,
		},
		{
			name: "unseen city returns 404",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					LatestMarketSnapshot(mock.Anything, "Fort Lauderdale").
					Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `no snapshot for city`,
		},
		{
			name: "store failure returns 500",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					LatestMarketSnapshot(mock.Anything, "Fort Lauderdale").
					Return(nil, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `snapshot lookup failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			api := newMarketAPI(t, mockStore)

			resp := api.Get("/api/v1/market/Fort%20Lauderdale/heat")
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestMarketHandler_ListSnapshots(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListMarketSnapshots(mock.Anything, "Fort Lauderdale", 12).
		Return([]domain.MarketSnapshot{sampleSnapshot()}, nil).Once()

	api := newMarketAPI(t, mockStore)

	resp := api.Get("/api/v1/market/Fort%20Lauderdale/snapshots?limit=12")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"heat_score":43`)
}

func TestMarketHandler_ListSnapshots_Empty(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListMarketSnapshots(mock.Anything, "Nowhere", 0).
		Return(nil, nil).Once()

	api := newMarketAPI(t, mockStore)

	resp := api.Get("/api/v1/market/Nowhere/snapshots")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"snapshots":[]`)
}

func TestMarketHandler_ListCities(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListCities(mock.Anything).
		Return([]string{"Fort Lauderdale", "Pompano Beach"}, nil).Once()

	api := newMarketAPI(t, mockStore)

	resp := api.Get("/api/v1/market/cities")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Pompano Beach")
}
