package dto

import "github.com/rameshsdv/stock-predictor/internal/analysis"

// TechnicalSnapshot is what the TradingView scanner repository hands to the
// prediction pipeline: the sparse indicator map plus the recomputed vote
// summary.
type TechnicalSnapshot struct {
	Snapshot       analysis.IndicatorSnapshot
	Votes          analysis.VoteCounts
	Recommendation string
}
