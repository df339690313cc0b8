package dto

const (
	// TradingView recommendation scores.
	TradingViewSignalStrongBuy  int = 2  // STRONG_BUY
	TradingViewSignalBuy        int = 1  // BUY
	TradingViewSignalNeutral    int = 0  // NEUTRAL
	TradingViewSignalSell       int = -1 // SELL
	TradingViewSignalStrongSell int = -2 // STRONG_SELL

	SignalStrongBuy  = "STRONG_BUY"
	SignalBuy        = "BUY"
	SignalNeutral    = "NEUTRAL"
	SignalSell       = "SELL"
	SignalStrongSell = "STRONG_SELL"
)

// MapRecommendScore turns a TradingView recommendation score into its label.
func MapRecommendScore(score int) string {
	switch score {
	case TradingViewSignalStrongBuy:
		return SignalStrongBuy
	case TradingViewSignalBuy:
		return SignalBuy
	case TradingViewSignalSell:
		return SignalSell
	case TradingViewSignalStrongSell:
		return SignalStrongSell
	default:
		return SignalNeutral
	}
}
