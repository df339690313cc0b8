package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rameshsdv/stock-predictor/internal/analysis"
	"github.com/rameshsdv/stock-predictor/internal/dto"
)

func TestRecommendScore(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected int
	}{
		{"strong buy upper bound", 1.0, dto.TradingViewSignalStrongBuy},
		{"strong buy", 0.7, dto.TradingViewSignalStrongBuy},
		{"buy", 0.3, dto.TradingViewSignalBuy},
		{"neutral positive edge", 0.1, dto.TradingViewSignalNeutral},
		{"neutral", 0.0, dto.TradingViewSignalNeutral},
		{"neutral negative edge", -0.1, dto.TradingViewSignalNeutral},
		{"sell", -0.3, dto.TradingViewSignalSell},
		{"strong sell", -0.7, dto.TradingViewSignalStrongSell},
		{"strong sell lower bound", -1.0, dto.TradingViewSignalStrongSell},
		{"out of range", 2.0, dto.TradingViewSignalNeutral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, recommendScore(tc.value))
		})
	}
}

func TestCountVotes(t *testing.T) {
	t.Run("empty snapshot votes all neutral", func(t *testing.T) {
		counts := countVotes(analysis.IndicatorSnapshot{})
		assert.Equal(t, analysis.VoteCounts{Neutral: 7}, counts)
	})

	t.Run("oversold rising rsi votes buy", func(t *testing.T) {
		snap := analysis.IndicatorSnapshot{
			"RSI":    25.0,
			"RSI[1]": 22.0,
		}
		counts := countVotes(snap)
		assert.Equal(t, 1, counts.Buy)
		assert.Equal(t, 0, counts.Sell)
		assert.Equal(t, 6, counts.Neutral)
	})

	t.Run("macd below signal votes sell", func(t *testing.T) {
		snap := analysis.IndicatorSnapshot{
			"MACD.macd":   -3.2,
			"MACD.signal": -1.1,
		}
		counts := countVotes(snap)
		assert.Equal(t, 1, counts.Sell)
	})

	t.Run("partial rule inputs vote neutral", func(t *testing.T) {
		// Stoch needs four fields, only two are present.
		snap := analysis.IndicatorSnapshot{
			"Stoch.K": 12.0,
			"Stoch.D": 15.0,
		}
		counts := countVotes(snap)
		assert.Equal(t, analysis.VoteCounts{Neutral: 7}, counts)
	})

	t.Run("mixed snapshot", func(t *testing.T) {
		snap := analysis.IndicatorSnapshot{
			"RSI":         25.0,
			"RSI[1]":      22.0,
			"Mom":         1.5,
			"Mom[1]":      0.8,
			"MACD.macd":   -3.2,
			"MACD.signal": -1.1,
		}
		counts := countVotes(snap)
		assert.Equal(t, analysis.VoteCounts{Buy: 2, Sell: 1, Neutral: 4}, counts)
	})
}
