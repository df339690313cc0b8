package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rameshsdv/stock-predictor/internal/analysis"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/internal/model"
	"github.com/rameshsdv/stock-predictor/pkg/utils"
)

func sampleForecast() *dto.ForecastResult {
	return &dto.ForecastResult{
		Symbol:        "RELIANCE",
		CurrentPrice:  2890.5,
		MarketPhase:   "Markup",
		ActionSignal:  "Buy",
		TrendStrength: "Strong",
		RSI:           utils.ToPointer(61.2),
		MACDSignal:    "Bullish Crossover",
		History: []dto.ForecastHistoryItem{
			{Date: "2026-08-26", Price: 2850.0},
			{Date: "2026-08-27", Price: 2890.5},
		},
		Forecast: []dto.ForecastFutureItem{
			{Date: "2026-08-28", Price: 2905.0, LowerBound: utils.ToPointer(2860.0), UpperBound: utils.ToPointer(2950.0)},
			{Date: "2026-08-31", Price: 2918.0},
		},
	}
}

func sampleSnapshot() *dto.TechnicalSnapshot {
	return &dto.TechnicalSnapshot{
		Snapshot: analysis.IndicatorSnapshot{
			"RSI":                  28.4,
			"Stoch.K":              41.0,
			"CCI20":                -120.0,
			"Pivot.M.Fibonacci.S1": 2800.0,
			"Pivot.M.Fibonacci.R1": 2950.0,
		},
		Votes:          analysis.VoteCounts{Buy: 10, Sell: 3, Neutral: 7},
		Recommendation: dto.SignalStrongBuy,
	}
}

func TestBuildPredictionResponse(t *testing.T) {
	resp, err := buildPredictionResponse("RELIANCE", sampleForecast(), sampleSnapshot(), nil)
	require.NoError(t, err)

	assert.Equal(t, "RELIANCE", resp.Symbol)
	assert.Equal(t, 2890.5, resp.CurrentPrice)

	require.Len(t, resp.ChartData, 4)
	assert.False(t, resp.ChartData[0].IsPrediction)
	assert.False(t, resp.ChartData[1].IsPrediction)
	assert.True(t, resp.ChartData[2].IsPrediction)
	assert.True(t, resp.ChartData[3].IsPrediction)

	require.NotNil(t, resp.ForecastStartDate)
	assert.Equal(t, "2026-08-28", *resp.ForecastStartDate)

	// bounds only travel with the points that carried them
	require.NotNil(t, resp.ChartData[2].LowerBound)
	assert.Equal(t, 2860.0, *resp.ChartData[2].LowerBound)
	assert.Nil(t, resp.ChartData[3].LowerBound)

	assert.Equal(t, dto.SignalStrongBuy, resp.TVTechnicalIndicators.Summary.Recommendation)
	assert.Equal(t, 10, resp.TVTechnicalIndicators.Summary.Buy)
	assert.Equal(t, 3, resp.TVTechnicalIndicators.Summary.Sell)
	assert.Equal(t, 7, resp.TVTechnicalIndicators.Summary.Neutral)

	assert.Equal(t, "buy", resp.Verdict.Class)
	assert.Equal(t, "STRONG BUY", resp.Verdict.DisplayLabel)
	assert.InDelta(t, 0.5, resp.Verdict.BuyPct, 1e-9)
	assert.InDelta(t, 0.15, resp.Verdict.SellPct, 1e-9)
	assert.InDelta(t, 0.35, resp.Verdict.NeutralPct, 1e-9)
}

func TestBuildPredictionResponse_Oscillators(t *testing.T) {
	resp, err := buildPredictionResponse("RELIANCE", sampleForecast(), sampleSnapshot(), nil)
	require.NoError(t, err)

	require.Len(t, resp.Oscillators, 7)

	byKey := make(map[string]dto.OscillatorReading)
	for _, osc := range resp.Oscillators {
		byKey[osc.Key] = osc
	}

	rsi := byKey[analysis.KeyRSI]
	require.NotNil(t, rsi.Value)
	assert.Equal(t, 28.4, *rsi.Value)
	assert.Equal(t, "Bullish", rsi.Signal)

	cci := byKey[analysis.KeyCCI20]
	require.NotNil(t, cci.Value)
	assert.Equal(t, "Neutral", cci.Signal)

	// absent indicators render as rows with no value and a neutral signal
	adx := byKey[analysis.KeyADX]
	assert.Nil(t, adx.Value)
	assert.Equal(t, "Neutral", adx.Signal)
}

func TestBuildPredictionResponse_PartialPivotLadder(t *testing.T) {
	resp, err := buildPredictionResponse("RELIANCE", sampleForecast(), sampleSnapshot(), nil)
	require.NoError(t, err)

	require.Len(t, resp.PivotLadder, 2)
	assert.Equal(t, "S1", resp.PivotLadder[0].Level)
	assert.Equal(t, 2800.0, resp.PivotLadder[0].Value)
	assert.Equal(t, "R1", resp.PivotLadder[1].Level)
	assert.Equal(t, 2950.0, resp.PivotLadder[1].Value)

	require.NotNil(t, resp.BreakoutLevels.Support1)
	assert.Equal(t, 2800.0, *resp.BreakoutLevels.Support1)
	require.NotNil(t, resp.BreakoutLevels.Resistance1)
	assert.Equal(t, 2950.0, *resp.BreakoutLevels.Resistance1)
	assert.Nil(t, resp.BreakoutLevels.Pivot)
}

func TestBuildPredictionResponse_AccuracyStats(t *testing.T) {
	resp, err := buildPredictionResponse("RELIANCE", sampleForecast(), sampleSnapshot(), &model.AccuracyStats{
		MAEPercent: 1.73,
		Samples:    24,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ModelAccuracy.MAEPercent)
	assert.Equal(t, 1.73, *resp.ModelAccuracy.MAEPercent)
	require.NotNil(t, resp.ModelAccuracy.Samples)
	assert.Equal(t, 24, *resp.ModelAccuracy.Samples)
}

func TestBuildPredictionResponse_NoAccuracyStats(t *testing.T) {
	resp, err := buildPredictionResponse("RELIANCE", sampleForecast(), sampleSnapshot(), nil)
	require.NoError(t, err)

	assert.Nil(t, resp.ModelAccuracy.MAEPercent)
	assert.Nil(t, resp.ModelAccuracy.Samples)
}

func TestBuildPredictionResponse_MalformedDate(t *testing.T) {
	forecast := sampleForecast()
	forecast.History[0].Date = "not-a-date"

	_, err := buildPredictionResponse("RELIANCE", forecast, sampleSnapshot(), nil)
	assert.Error(t, err)
}

func TestSettlingClose(t *testing.T) {
	ist := utils.GetISTTimeLocation()
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, ist)
	}

	closes := []dto.DailyClose{
		{Date: day(26), Close: 2850.0},
		{Date: day(27), Close: 2890.5},
		{Date: day(31), Close: 2918.0},
	}

	t.Run("trading day settles on its own close", func(t *testing.T) {
		actual, ok := settlingClose(closes, model.PredictionLog{PredictionDate: day(27)})
		require.True(t, ok)
		assert.Equal(t, 2890.5, actual)
	})

	t.Run("weekend settles on next session", func(t *testing.T) {
		actual, ok := settlingClose(closes, model.PredictionLog{PredictionDate: day(29)})
		require.True(t, ok)
		assert.Equal(t, 2918.0, actual)
	})

	t.Run("no close yet stays pending", func(t *testing.T) {
		_, ok := settlingClose(closes, model.PredictionLog{PredictionDate: time.Date(2026, 9, 2, 0, 0, 0, 0, ist)})
		assert.False(t, ok)
	})
}
