package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harborview/mls-comps/internal/feed"
	feedMocks "github.com/harborview/mls-comps/internal/feed/mocks"
	storeMocks "github.com/harborview/mls-comps/internal/store/mocks"
	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(s *storeMocks.MockStore, fc *feedMocks.MockClient, opts ...EngineOption) *Engine {
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithStaggerOffset(0),
	}
	return NewEngine(s, fc, append(base, opts...)...)
}

func feedRecord(id string, price float64) feed.PropertyRecord {
	return feed.PropertyRecord{
		ListingKey:      id,
		ListingID:       id,
		UnparsedAddress: "100 Main St",
		City:            "Fort Lauderdale",
		StateOrProvince: "FL",
		ListPrice:       price,
		BedroomsTotal:   3,
		LivingArea:      1800,
		StandardStatus:  "Active",
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)

	eng := NewEngine(ms, mc)
	assert.Equal(t, defaultSearchRadiusMiles, eng.searchRadius)
	assert.Equal(t, defaultPriceBandPct, eng.priceBandPct)
	assert.Equal(t, defaultMaxComparables, eng.maxComparables)
	assert.Equal(t, defaultMinComparables, eng.minComparables)
	assert.Equal(t, defaultClosedWindowDays, eng.closedWindowDays)
	assert.Equal(t, time.Second, eng.staggerOffset)
	assert.NotNil(t, eng.log)
	assert.True(t, eng.LastSync().IsZero())
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)

	l := quietLogger()
	p := feed.NewPaginator(mc)
	watermark := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eng := NewEngine(ms, mc,
		WithLogger(l),
		WithPaginator(p),
		WithSearchRadius(5),
		WithPriceBandPct(20),
		WithComparableLimits(5, 10),
		WithClosedWindowDays(90),
		WithStaggerOffset(5*time.Second),
		WithLastSync(watermark),
		WithGradeWeights(comps.GradeWeights{"A": 3}),
		WithHeatWeights(comps.HeatWeights{DOM: 1}),
	)

	assert.Same(t, l, eng.log)
	assert.Same(t, p, eng.paginator)
	assert.Equal(t, 5.0, eng.searchRadius)
	assert.Equal(t, 20.0, eng.priceBandPct)
	assert.Equal(t, 5, eng.minComparables)
	assert.Equal(t, 10, eng.maxComparables)
	assert.Equal(t, 90, eng.closedWindowDays)
	assert.Equal(t, 5*time.Second, eng.staggerOffset)
	assert.Equal(t, watermark, eng.LastSync())
	assert.Equal(t, 3.0, eng.gradeWeights["A"])
	assert.Equal(t, 1.0, eng.heatWeights.DOM)
}

func TestRunFeedSync_UpsertsAllRecords(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	page := &feed.Page{
		Records: []feed.PropertyRecord{
			feedRecord("F10500001", 450000),
			feedRecord("F10500002", 610000),
		},
	}
	mc.EXPECT().Fetch(mock.Anything, mock.Anything).Return(page, nil).Once()
	ms.EXPECT().UpsertProperty(mock.Anything, mock.Anything).Return(nil).Times(2)

	written, err := eng.RunFeedSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.False(t, eng.LastSync().IsZero(), "watermark should advance after a full pull")
}

func TestRunFeedSync_FirstRunOmitsWatermark(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	mc.EXPECT().
		Fetch(mock.Anything, mock.MatchedBy(func(q feed.Query) bool {
			return q.Resource == "Property" && q.ModifiedSince == ""
		})).
		Return(&feed.Page{}, nil).
		Once()

	written, err := eng.RunFeedSync(context.Background())
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestRunFeedSync_UsesWatermark(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	watermark := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eng := newTestEngine(ms, mc, WithLastSync(watermark))

	mc.EXPECT().
		Fetch(mock.Anything, mock.MatchedBy(func(q feed.Query) bool {
			return q.ModifiedSince == "2026-03-01T12:00:00Z"
		})).
		Return(&feed.Page{}, nil).
		Once()

	_, err := eng.RunFeedSync(context.Background())
	require.NoError(t, err)
}

func TestRunFeedSync_UpsertErrorContinues(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	page := &feed.Page{
		Records: []feed.PropertyRecord{
			feedRecord("F10500001", 450000),
			feedRecord("F10500002", 610000),
		},
	}
	mc.EXPECT().Fetch(mock.Anything, mock.Anything).Return(page, nil).Once()

	call := 0
	ms.EXPECT().
		UpsertProperty(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *domain.Property) error {
			call++
			if call == 1 {
				return errors.New("db error")
			}
			return nil
		}).
		Times(2)

	written, err := eng.RunFeedSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, written)
}

func TestRunFeedSync_FetchError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	mc.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, errors.New("feed 503")).Once()

	_, err := eng.RunFeedSync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pulling feed")
	assert.True(t, eng.LastSync().IsZero(), "watermark must not advance on failure")
}

func TestRunFeedSync_DailyLimitSurfaces(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	mc.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, feed.ErrDailyLimitReached).Once()

	_, err := eng.RunFeedSync(context.Background())
	require.ErrorIs(t, err, feed.ErrDailyLimitReached)
}

func TestRunFeedSync_WithPaginatorFollowsPages(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)

	firstPage := &feed.Page{
		Records:  []feed.PropertyRecord{feedRecord("F10500001", 450000)},
		NextLink: "https://api.mls.test/Property?$skiptoken=abc",
	}
	secondPage := &feed.Page{
		Records: []feed.PropertyRecord{feedRecord("F10500002", 610000)},
	}
	mc.EXPECT().Fetch(mock.Anything, mock.Anything).Return(firstPage, nil).Once()
	mc.EXPECT().FetchNext(mock.Anything, firstPage.NextLink).Return(secondPage, nil).Once()
	ms.EXPECT().UpsertProperty(mock.Anything, mock.Anything).Return(nil).Times(2)

	eng := newTestEngine(ms, mc, WithPaginator(feed.NewPaginator(mc)))

	written, err := eng.RunFeedSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.False(t, eng.LastSync().IsZero())
}

func TestRunFeedSync_TruncatedPullKeepsWatermark(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)

	// Page cap of one with a next link pending: the pull is truncated,
	// so the watermark must stay put for the next cycle.
	page := &feed.Page{
		Records:  []feed.PropertyRecord{feedRecord("F10500001", 450000)},
		NextLink: "https://api.mls.test/Property?$skiptoken=abc",
	}
	mc.EXPECT().Fetch(mock.Anything, mock.Anything).Return(page, nil).Once()
	ms.EXPECT().UpsertProperty(mock.Anything, mock.Anything).Return(nil).Once()

	eng := newTestEngine(ms, mc,
		WithPaginator(feed.NewPaginator(mc, feed.WithMaxPages(1))),
	)

	written, err := eng.RunFeedSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, written)
	assert.True(t, eng.LastSync().IsZero())
}
