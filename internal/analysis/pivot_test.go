package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLadder_PartialSnapshot(t *testing.T) {
	snap := IndicatorSnapshot{
		"Pivot.M.Fibonacci.S1": 2450.25,
		"Pivot.M.Fibonacci.R1": 2510.75,
	}

	ladder := BuildLadder(snap, MethodFibonacci)

	require.NotNil(t, ladder.S1)
	require.NotNil(t, ladder.R1)
	assert.Equal(t, 2450.25, *ladder.S1)
	assert.Equal(t, 2510.75, *ladder.R1)

	// Missing levels stay absent, never synthesized.
	assert.Nil(t, ladder.S3)
	assert.Nil(t, ladder.S2)
	assert.Nil(t, ladder.Pivot)
	assert.Nil(t, ladder.R2)
	assert.Nil(t, ladder.R3)
}

func TestBuildLadder_FullSnapshot(t *testing.T) {
	snap := IndicatorSnapshot{
		"Pivot.M.Fibonacci.S3":     100,
		"Pivot.M.Fibonacci.S2":     110,
		"Pivot.M.Fibonacci.S1":     120,
		"Pivot.M.Fibonacci.Middle": 130,
		"Pivot.M.Fibonacci.R1":     140,
		"Pivot.M.Fibonacci.R2":     150,
		"Pivot.M.Fibonacci.R3":     160,
	}

	ladder := BuildLadder(snap, MethodFibonacci)
	levels := ladder.Levels()

	require.Len(t, levels, 7)
	want := []float64{100, 110, 120, 130, 140, 150, 160}
	for i, level := range levels {
		require.NotNil(t, level.Value, "level %s", level.Name)
		assert.Equal(t, want[i], *level.Value)
	}
}

func TestBuildLadder_MethodIsParameter(t *testing.T) {
	snap := IndicatorSnapshot{
		"Pivot.M.Classic.Middle":   200,
		"Pivot.M.Fibonacci.Middle": 300,
	}

	classic := BuildLadder(snap, MethodClassic)
	fibonacci := BuildLadder(snap, MethodFibonacci)

	require.NotNil(t, classic.Pivot)
	require.NotNil(t, fibonacci.Pivot)
	assert.Equal(t, 200.0, *classic.Pivot)
	assert.Equal(t, 300.0, *fibonacci.Pivot)
}

func TestBuildLadder_EmptySnapshot(t *testing.T) {
	ladder := BuildLadder(IndicatorSnapshot{}, MethodFibonacci)

	for _, level := range ladder.Levels() {
		assert.Nil(t, level.Value, "level %s", level.Name)
	}
}
