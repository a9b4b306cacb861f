package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	feedMocks "github.com/harborview/mls-comps/internal/feed/mocks"
	"github.com/harborview/mls-comps/internal/store"
	storeMocks "github.com/harborview/mls-comps/internal/store/mocks"
	domain "github.com/harborview/mls-comps/pkg/types"
)

func TestCreateSession_WithExplicitComparables(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	closePrice := 480000.0
	comp1 := candidateNear("comp-1", 0.001)
	comp2 := candidateNear("comp-2", 0.002)
	comp2.StandardStatus = domain.StatusClosed
	comp2.ClosePrice = &closePrice

	ms.EXPECT().GetPropertyByID(mock.Anything, "subject-1").Return(testSubject(), nil).Once()
	ms.EXPECT().GetPropertyByID(mock.Anything, "comp-1").Return(&comp1, nil).Once()
	ms.EXPECT().GetPropertyByID(mock.Anything, "comp-2").Return(&comp2, nil).Once()

	var rows []domain.CMAComparable
	ms.EXPECT().
		CreateCMASession(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *domain.CMASession, comparables []domain.CMAComparable) error {
			rows = comparables
			return nil
		}).
		Once()

	session, err := eng.CreateSession(context.Background(), &SessionInput{
		Name:      "1200 Harbor Dr CMA",
		SubjectID: "subject-1",
		Comparables: []SessionComparableInput{
			{PropertyID: "comp-1", Grade: "A"},
			{PropertyID: "comp-2"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "draft", session.Status)
	assert.Equal(t, "subject-1", session.SubjectID)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.Grade("A"), rows[0].Grade)
	assert.Equal(t, 500000.0, rows[0].Price)
	// Ungraded comparables default to C; closed comparables use the
	// close price.
	assert.Equal(t, domain.Grade("C"), rows[1].Grade)
	assert.Equal(t, 480000.0, rows[1].Price)
	assert.Equal(t, session.ID, rows[1].SessionID)
}

func TestCreateSession_AutoSelectsComparables(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc, WithComparableLimits(2, 3))

	candidates := []domain.Property{
		candidateNear("c1", 0.001),
		candidateNear("c2", 0.002),
		candidateNear("c3", 0.003),
		candidateNear("c4", 0.004),
	}

	// Once for the session subject, once inside the comparable search.
	ms.EXPECT().GetPropertyByID(mock.Anything, "subject-1").Return(testSubject(), nil).Times(2)
	ms.EXPECT().ListCandidates(mock.Anything, mock.Anything).Return(candidates, nil).Once()

	var rows []domain.CMAComparable
	ms.EXPECT().
		CreateCMASession(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *domain.CMASession, comparables []domain.CMAComparable) error {
			rows = comparables
			return nil
		}).
		Once()

	_, err := eng.CreateSession(context.Background(), &SessionInput{
		Name:      "Auto CMA",
		SubjectID: "subject-1",
	})
	require.NoError(t, err)

	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, domain.Grade("C"), r.Grade)
		assert.Equal(t, 500000.0, r.Price)
	}
}

func TestCreateSession_SubjectNotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	ms.EXPECT().GetPropertyByID(mock.Anything, "missing").Return(nil, store.ErrNotFound).Once()

	_, err := eng.CreateSession(context.Background(), &SessionInput{
		Name:      "Bad CMA",
		SubjectID: "missing",
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func sessionFixture() (*domain.CMASession, []domain.CMAComparable) {
	session := &domain.CMASession{
		ID:        "session-1",
		Name:      "Harbor CMA",
		SubjectID: "subject-1",
		Status:    "draft",
	}
	comparables := []domain.CMAComparable{
		{ID: "r1", SessionID: "session-1", PropertyID: "comp-1", Price: 400000, Grade: "A"},
		{ID: "r2", SessionID: "session-1", PropertyID: "comp-2", Price: 300000, Grade: "C"},
	}
	return session, comparables
}

func TestComputeValuation(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	session, comparables := sessionFixture()
	ms.EXPECT().GetCMASession(mock.Anything, "session-1").Return(session, comparables, nil).Once()

	var snapshot json.RawMessage
	ms.EXPECT().
		UpdateCMASessionSnapshot(mock.Anything, "session-1", "draft", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, snap json.RawMessage) error {
			snapshot = snap
			return nil
		}).
		Once()

	valuation, err := eng.ComputeValuation(context.Background(), "session-1")
	require.NoError(t, err)

	// A weighs 2.0, C weighs 1.0: (400000*2 + 300000*1) / 3.
	assert.InDelta(t, 366666.67, valuation.WeightedMid, 0.01)
	assert.InDelta(t, 350000, valuation.UnweightedMid, 0.01)
	assert.Equal(t, 300000.0, valuation.Low)
	assert.Equal(t, 400000.0, valuation.High)
	assert.Equal(t, 3.0, valuation.TotalWeight)
	require.Len(t, valuation.Rows, 2)

	require.NotEmpty(t, snapshot)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(snapshot, &decoded))
	assert.Contains(t, decoded, "weighted_mid")
}

func TestComputeValuation_CustomWeightOverride(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	session, comparables := sessionFixture()
	comparables[0].UseCustomWeight = true
	comparables[0].CustomWeight = 4.0

	ms.EXPECT().GetCMASession(mock.Anything, "session-1").Return(session, comparables, nil).Once()
	ms.EXPECT().
		UpdateCMASessionSnapshot(mock.Anything, "session-1", "draft", mock.Anything).
		Return(nil).
		Once()

	valuation, err := eng.ComputeValuation(context.Background(), "session-1")
	require.NoError(t, err)

	// (400000*4 + 300000*1) / 5.
	assert.InDelta(t, 380000, valuation.WeightedMid, 0.01)
	assert.Equal(t, 5.0, valuation.TotalWeight)
}

func TestComputeValuation_NoComparables(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	session, _ := sessionFixture()
	ms.EXPECT().GetCMASession(mock.Anything, "session-1").Return(session, nil, nil).Once()

	_, err := eng.ComputeValuation(context.Background(), "session-1")
	require.ErrorIs(t, err, ErrNoValuation)
}

func TestComputeValuation_SessionNotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	ms.EXPECT().
		GetCMASession(mock.Anything, "missing").
		Return(nil, nil, store.ErrNotFound).
		Once()

	_, err := eng.ComputeValuation(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFinalizeSession(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	session, comparables := sessionFixture()
	ms.EXPECT().GetCMASession(mock.Anything, "session-1").Return(session, comparables, nil).Once()
	ms.EXPECT().
		UpdateCMASessionSnapshot(mock.Anything, "session-1", "draft", mock.Anything).
		Return(nil).
		Once()
	ms.EXPECT().
		UpdateCMASessionSnapshot(mock.Anything, "session-1", "final", mock.Anything).
		Return(nil).
		Once()

	valuation, err := eng.FinalizeSession(context.Background(), "session-1")
	require.NoError(t, err)
	assert.InDelta(t, 366666.67, valuation.WeightedMid, 0.01)
}

func TestRegradeComparable(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	session, comparables := sessionFixture()
	regraded := comparables[1]
	regraded.Grade = "A"

	ms.EXPECT().UpdateCMAComparable(mock.Anything, &regraded).Return(nil).Once()

	// Recompute sees the new grade.
	updated := []domain.CMAComparable{comparables[0], regraded}
	ms.EXPECT().GetCMASession(mock.Anything, "session-1").Return(session, updated, nil).Once()
	ms.EXPECT().
		UpdateCMASessionSnapshot(mock.Anything, "session-1", "draft", mock.Anything).
		Return(nil).
		Once()

	valuation, err := eng.RegradeComparable(context.Background(), &regraded)
	require.NoError(t, err)

	// Both grade A now: (400000*2 + 300000*2) / 4.
	assert.InDelta(t, 350000, valuation.WeightedMid, 0.01)
}

func TestRegradeComparable_UpdateFails(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	eng := newTestEngine(ms, mc)

	_, comparables := sessionFixture()
	ms.EXPECT().
		UpdateCMAComparable(mock.Anything, mock.Anything).
		Return(errors.New("db error")).
		Once()

	_, err := eng.RegradeComparable(context.Background(), &comparables[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "updating comparable")
}
