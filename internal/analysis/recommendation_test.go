package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_ZeroVotes(t *testing.T) {
	summary := Aggregate(VoteCounts{}, "NEUTRAL")

	assert.Equal(t, 0.0, summary.Gauge.Sell)
	assert.Equal(t, 0.0, summary.Gauge.Neutral)
	assert.Equal(t, 0.0, summary.Gauge.Buy)
	assert.Equal(t, VerdictNeutral, summary.Class)
}

func TestAggregate_ProportionsSumToOne(t *testing.T) {
	tests := []struct {
		name   string
		counts VoteCounts
	}{
		{name: "balanced", counts: VoteCounts{Buy: 5, Sell: 5, Neutral: 5}},
		{name: "buy heavy", counts: VoteCounts{Buy: 14, Sell: 1, Neutral: 2}},
		{name: "single vote", counts: VoteCounts{Neutral: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(tt.counts, "NEUTRAL")
			sum := summary.Gauge.Sell + summary.Gauge.Neutral + summary.Gauge.Buy
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestAggregate_Example(t *testing.T) {
	summary := Aggregate(VoteCounts{Buy: 10, Sell: 3, Neutral: 7}, "BUY")

	assert.InDelta(t, 0.5, summary.Gauge.Buy, 1e-9)
	assert.InDelta(t, 0.15, summary.Gauge.Sell, 1e-9)
	assert.InDelta(t, 0.35, summary.Gauge.Neutral, 1e-9)
	assert.Equal(t, VerdictBuy, summary.Class)
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		label string
		want  VerdictClass
	}{
		{label: "BUY", want: VerdictBuy},
		{label: "STRONG_BUY", want: VerdictBuy},
		{label: "SELL", want: VerdictSell},
		{label: "STRONG_SELL", want: VerdictSell},
		{label: "NEUTRAL", want: VerdictNeutral},
		{label: "", want: VerdictNeutral},
		{label: "HOLD", want: VerdictNeutral},
	}

	for _, tt := range tests {
		t.Run("label "+tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVerdict(tt.label))
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "STRONG BUY", DisplayLabel("STRONG_BUY"))
	assert.Equal(t, "NEUTRAL", DisplayLabel("NEUTRAL"))

	// The transform never feeds back into classification.
	assert.Equal(t, VerdictBuy, ParseVerdict("STRONG_BUY"))
}
