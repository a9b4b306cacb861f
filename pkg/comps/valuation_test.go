package comps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuate_GradeWeightedAverage(t *testing.T) {
	t.Parallel()

	inputs := []CompInput{
		{ID: "a", Price: 400000, Grade: "A"},
		{ID: "b", Price: 420000, Grade: "B"},
		{ID: "c", Price: 440000, Grade: "C"},
	}

	v := Valuate(inputs, DefaultGradeWeights())
	require.NotNil(t, v)

	// (400000*2.0 + 420000*1.5 + 440000*1.0) / 4.5
	assert.InDelta(t, 415555.56, v.WeightedMid, 0.01)
	assert.InDelta(t, 420000, v.UnweightedMid, 0.01)
	assert.Equal(t, 4.5, v.TotalWeight)
	assert.Equal(t, 400000.0, v.Low)
	assert.Equal(t, 440000.0, v.High)
}

func TestValuate_RowContributions(t *testing.T) {
	t.Parallel()

	inputs := []CompInput{
		{ID: "a", Price: 400000, Grade: "A"},
		{ID: "f", Price: 300000, Grade: "F"},
	}

	v := Valuate(inputs, DefaultGradeWeights())
	require.NotNil(t, v)
	require.Len(t, v.Rows, 2)

	assert.Equal(t, 2.0, v.Rows[0].Weight)
	assert.Equal(t, 800000.0, v.Rows[0].Contribution)
	assert.Equal(t, 0.25, v.Rows[1].Weight)
	assert.Equal(t, 75000.0, v.Rows[1].Contribution)
}

func TestValuate_EmptyReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Valuate(nil, DefaultGradeWeights()))
	assert.Nil(t, Valuate([]CompInput{}, DefaultGradeWeights()))
}

func TestValuate_AllZeroWeightsReturnsNil(t *testing.T) {
	t.Parallel()

	inputs := []CompInput{
		{ID: "a", Price: 400000, Grade: "A", UseCustomWeight: true, CustomWeight: 0},
		{ID: "b", Price: 420000, Grade: "B", UseCustomWeight: true, CustomWeight: 0},
	}

	assert.Nil(t, Valuate(inputs, DefaultGradeWeights()))
}

func TestValuate_SingleComparable(t *testing.T) {
	t.Parallel()

	v := Valuate([]CompInput{{ID: "a", Price: 375000, Grade: "A"}}, DefaultGradeWeights())
	require.NotNil(t, v)

	assert.Equal(t, 375000.0, v.WeightedMid)
	assert.Equal(t, 375000.0, v.UnweightedMid)
	assert.Equal(t, 375000.0, v.Low)
	assert.Equal(t, 375000.0, v.High)
}

func TestValuate_UniformGradesDegenerateToMean(t *testing.T) {
	t.Parallel()

	inputs := []CompInput{
		{ID: "a", Price: 310000, Grade: "B"},
		{ID: "b", Price: 330000, Grade: "B"},
		{ID: "c", Price: 380000, Grade: "B"},
	}

	v := Valuate(inputs, DefaultGradeWeights())
	require.NotNil(t, v)
	assert.InDelta(t, v.UnweightedMid, v.WeightedMid, 0.0001,
		"uniform grades should reduce weighting to a simple average")
}

func TestValuate_CustomWeightOverride(t *testing.T) {
	t.Parallel()

	inputs := []CompInput{
		{ID: "a", Price: 400000, Grade: "F", UseCustomWeight: true, CustomWeight: 3.0},
		{ID: "b", Price: 500000, Grade: "A", UseCustomWeight: true, CustomWeight: 1.0},
	}

	v := Valuate(inputs, DefaultGradeWeights())
	require.NotNil(t, v)

	// (400000*3 + 500000*1) / 4
	assert.InDelta(t, 425000, v.WeightedMid, 0.01)
	assert.Equal(t, 3.0, v.Rows[0].Weight, "override beats the grade table")
}

func TestValuate_UnknownGradeWeighsZero(t *testing.T) {
	t.Parallel()

	inputs := []CompInput{
		{ID: "a", Price: 400000, Grade: "A"},
		{ID: "x", Price: 900000, Grade: "X"},
	}

	v := Valuate(inputs, DefaultGradeWeights())
	require.NotNil(t, v)

	// The unknown grade contributes nothing to the weighted mid but
	// still appears in the rows and the unweighted mean.
	assert.InDelta(t, 400000, v.WeightedMid, 0.01)
	assert.InDelta(t, 650000, v.UnweightedMid, 0.01)
	assert.Equal(t, 0.0, v.Rows[1].Weight)
}

func TestValuate_NilWeightsUseDefaults(t *testing.T) {
	t.Parallel()

	v := Valuate([]CompInput{{ID: "a", Price: 100000, Grade: "A"}}, nil)
	require.NotNil(t, v)
	assert.Equal(t, 2.0, v.Rows[0].Weight)
}
