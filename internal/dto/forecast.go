package dto

// ForecastRequest is the body sent to the forecast model service.
type ForecastRequest struct {
	Symbol string `json:"symbol"`
}

// ForecastResult is the forecast model service response: the cleaned price
// history, the predicted series with confidence bounds, and the regime
// analytics computed around them. History and forecast each arrive
// date-ascending and non-overlapping.
type ForecastResult struct {
	Symbol              string                `json:"symbol"`
	CurrentPrice        float64               `json:"current_price"`
	MarketPhase         string                `json:"market_phase"`
	ActionSignal        string                `json:"action_signal"`
	TrendStrength       string                `json:"trend_strength"`
	RSI                 *float64              `json:"rsi"`
	MACDSignal          string                `json:"macd_signal"`
	SignificantFeatures []string              `json:"significant_features"`
	History             []ForecastHistoryItem `json:"history"`
	Forecast            []ForecastFutureItem  `json:"forecast"`
	Metrics             Metrics               `json:"metrics"`
	MarketContext       *MarketContext        `json:"market_context"`
}

type ForecastHistoryItem struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type ForecastFutureItem struct {
	Date       string   `json:"date"`
	Price      float64  `json:"price"`
	LowerBound *float64 `json:"lower_bound"`
	UpperBound *float64 `json:"upper_bound"`
}
