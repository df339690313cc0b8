package analysis

import "strings"

// VerdictClass collapses the five recommendation labels into the three color
// classes the dashboard renders.
type VerdictClass string

const (
	VerdictBuy     VerdictClass = "buy"
	VerdictSell    VerdictClass = "sell"
	VerdictNeutral VerdictClass = "neutral"
)

// GaugeProportions are the widths of the three-segment recommendation gauge,
// rendered left to right as sell, neutral, buy. Each is in [0,1]; they sum to
// 1 whenever the vote total is positive.
type GaugeProportions struct {
	Sell    float64
	Neutral float64
	Buy     float64
}

// Summary is the consolidated verdict derived from vote counts.
type Summary struct {
	Label        string
	DisplayLabel string
	Class        VerdictClass
	Gauge        GaugeProportions
}

// ParseVerdict classifies a recommendation label once at the response
// boundary. "BUY" and "STRONG_BUY" map to the buy class, "SELL" and
// "STRONG_SELL" to the sell class; anything else, including an empty or
// unrecognized label, falls back to neutral rather than erroring.
func ParseVerdict(label string) VerdictClass {
	upper := strings.ToUpper(label)
	switch {
	case strings.Contains(upper, "BUY"):
		return VerdictBuy
	case strings.Contains(upper, "SELL"):
		return VerdictSell
	default:
		return VerdictNeutral
	}
}

// DisplayLabel replaces underscores with spaces for presentation. Cosmetic
// only, classification always runs on the raw label.
func DisplayLabel(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}

// Aggregate combines the vote counts and the provider's recommendation label
// into a verdict with proportional gauge segments. A zero vote total yields
// an all-zero gauge instead of dividing by zero.
func Aggregate(counts VoteCounts, label string) Summary {
	denominator := counts.Total()
	if denominator == 0 {
		denominator = 1
	}

	return Summary{
		Label:        label,
		DisplayLabel: DisplayLabel(label),
		Class:        ParseVerdict(label),
		Gauge: GaugeProportions{
			Sell:    float64(counts.Sell) / float64(denominator),
			Neutral: float64(counts.Neutral) / float64(denominator),
			Buy:     float64(counts.Buy) / float64(denominator),
		},
	}
}
