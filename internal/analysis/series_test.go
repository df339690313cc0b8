package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeSeries_TagsAndBoundary(t *testing.T) {
	historical := []PricePoint{{Date: day(1), Price: 100}}
	predicted := []ForecastPoint{{Date: day(2), Price: 105}}

	series := MergeSeries(historical, predicted)

	require.Len(t, series, 2)
	assert.False(t, series[0].IsPrediction)
	assert.True(t, series[1].IsPrediction)

	boundary, ok := ForecastBoundary(series)
	require.True(t, ok)
	assert.Equal(t, day(2), boundary)
}

func TestMergeSeries_NoPredictions(t *testing.T) {
	historical := []PricePoint{
		{Date: day(1), Price: 100},
		{Date: day(2), Price: 101},
	}

	series := MergeSeries(historical, nil)

	require.Len(t, series, 2)
	_, ok := ForecastBoundary(series)
	assert.False(t, ok)
}

func TestMergeSeries_EmptyHistory(t *testing.T) {
	predicted := []ForecastPoint{
		{Date: day(3), Price: 110},
		{Date: day(4), Price: 112},
	}

	series := MergeSeries(nil, predicted)

	require.Len(t, series, 2)
	boundary, ok := ForecastBoundary(series)
	require.True(t, ok)
	assert.Equal(t, day(3), boundary)
}

func TestMergeSeries_BoundsPassThrough(t *testing.T) {
	lower, upper := 98.5, 111.5
	predicted := []ForecastPoint{
		{Date: day(2), Price: 105, LowerBound: &lower, UpperBound: &upper},
		{Date: day(3), Price: 106},
	}

	series := MergeSeries([]PricePoint{{Date: day(1), Price: 100}}, predicted)

	require.Len(t, series, 3)
	assert.Nil(t, series[0].LowerBound)
	require.NotNil(t, series[1].LowerBound)
	require.NotNil(t, series[1].UpperBound)
	assert.Equal(t, lower, *series[1].LowerBound)
	assert.Equal(t, upper, *series[1].UpperBound)
	assert.Nil(t, series[2].LowerBound)
	assert.Nil(t, series[2].UpperBound)
}

func TestMergeSeries_PredictionNeverPrecedesHistory(t *testing.T) {
	series := MergeSeries(
		[]PricePoint{{Date: day(1), Price: 100}, {Date: day(2), Price: 102}},
		[]ForecastPoint{{Date: day(3), Price: 104}, {Date: day(4), Price: 103}},
	)

	seenPrediction := false
	for _, p := range series {
		if p.IsPrediction {
			seenPrediction = true
		}
		if seenPrediction {
			assert.True(t, p.IsPrediction)
		}
	}
}
