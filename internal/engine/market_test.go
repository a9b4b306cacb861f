package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	feedMocks "github.com/harborview/mls-comps/internal/feed/mocks"
	"github.com/harborview/mls-comps/internal/store"
	storeMocks "github.com/harborview/mls-comps/internal/store/mocks"
	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

func aggFixture(city string) *store.MarketAggregates {
	return &store.MarketAggregates{
		City:        city,
		WindowDays:  180,
		ActiveCount: 50,
		ClosedCount: 30,
		AvgDOM:      30,
		SPLPRatio:   98,
	}
}

func TestRunSnapshotRefresh_WritesOnePerCity(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	ms.EXPECT().ListCities(mock.Anything).Return([]string{"Fort Lauderdale", "Pompano Beach"}, nil).Once()
	ms.EXPECT().
		MarketAggregates(mock.Anything, "Fort Lauderdale", defaultClosedWindowDays).
		Return(aggFixture("Fort Lauderdale"), nil).
		Once()
	ms.EXPECT().
		MarketAggregates(mock.Anything, "Pompano Beach", defaultClosedWindowDays).
		Return(aggFixture("Pompano Beach"), nil).
		Once()

	var snapshots []*domain.MarketSnapshot
	ms.EXPECT().
		InsertMarketSnapshot(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s *domain.MarketSnapshot) error {
			snapshots = append(snapshots, s)
			return nil
		}).
		Times(2)

	written, err := eng.RunSnapshotRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	require.Len(t, snapshots, 2)
	s := snapshots[0]
	assert.Equal(t, "Fort Lauderdale", s.City)
	// 30 closes over 6 months = 5/month; 50 active / 5 = 10 months of
	// supply; 5/50 = 10% absorption.
	assert.InDelta(t, 10, s.MonthsSupply, 0.001)
	assert.InDelta(t, 10, s.AbsorptionRate, 0.001)
	assert.Equal(t, 43, s.HeatScore)
	assert.Equal(t, comps.LabelBalanced, s.HeatLabel)
	assert.Equal(t, 50, s.ActiveCount)
	assert.Equal(t, 30, s.ClosedCount)
}

func TestRunSnapshotRefresh_CityErrorContinues(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	ms.EXPECT().ListCities(mock.Anything).Return([]string{"Failing City", "Fort Lauderdale"}, nil).Once()
	ms.EXPECT().
		MarketAggregates(mock.Anything, "Failing City", defaultClosedWindowDays).
		Return(nil, errors.New("db error")).
		Once()
	ms.EXPECT().
		MarketAggregates(mock.Anything, "Fort Lauderdale", defaultClosedWindowDays).
		Return(aggFixture("Fort Lauderdale"), nil).
		Once()
	ms.EXPECT().InsertMarketSnapshot(mock.Anything, mock.Anything).Return(nil).Once()

	written, err := eng.RunSnapshotRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, written)
}

func TestRunSnapshotRefresh_ListCitiesError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	ms.EXPECT().ListCities(mock.Anything).Return(nil, errors.New("db error")).Once()

	_, err := eng.RunSnapshotRefresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing cities")
}

func TestBuildSnapshot_NoClosesScoresSupplyCeiling(t *testing.T) {
	t.Parallel()

	agg := &store.MarketAggregates{
		City:        "Ghost Town",
		WindowDays:  180,
		ActiveCount: 40,
		ClosedCount: 0,
		AvgDOM:      120,
		SPLPRatio:   0,
	}

	s := buildSnapshot(agg, comps.DefaultHeatWeights())

	assert.Equal(t, 6.0, s.MonthsSupply)
	assert.Zero(t, s.AbsorptionRate)
	assert.Equal(t, comps.LabelCold, s.HeatLabel)
}

func TestBuildSnapshot_NoActivesAbsorbsEverything(t *testing.T) {
	t.Parallel()

	agg := &store.MarketAggregates{
		City:        "Sold Out",
		WindowDays:  180,
		ActiveCount: 0,
		ClosedCount: 60,
		AvgDOM:      10,
		SPLPRatio:   103,
	}

	s := buildSnapshot(agg, comps.DefaultHeatWeights())

	assert.Zero(t, s.MonthsSupply)
	assert.Equal(t, 100.0, s.AbsorptionRate)
	assert.Equal(t, comps.LabelHot, s.HeatLabel)
}

func TestBuildSnapshot_EmptyMarket(t *testing.T) {
	t.Parallel()

	agg := &store.MarketAggregates{City: "Nowhere", WindowDays: 180}

	s := buildSnapshot(agg, comps.DefaultHeatWeights())

	assert.Zero(t, s.MonthsSupply)
	assert.Zero(t, s.AbsorptionRate)
}
