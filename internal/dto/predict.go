package dto

// PredictRequest is the dashboard's single query.
type PredictRequest struct {
	Symbol string `json:"symbol" validate:"required"`
}

// PredictionResponse is the full dashboard payload for one symbol. Optional
// fields are pointers and degrade to omitted/zero display defaults; the
// payload is all-or-nothing, it only exists when every required upstream
// fetch succeeded.
type PredictionResponse struct {
	Symbol                string                `json:"symbol"`
	ChartData             []ChartPointResponse  `json:"chart_data"`
	ForecastStartDate     *string               `json:"forecast_start_date,omitempty"`
	MarketPhase           string                `json:"market_phase"`
	ActionSignal          string                `json:"action_signal"`
	TrendStrength         string                `json:"trend_strength"`
	RSI                   *float64              `json:"rsi,omitempty"`
	MACDSignal            string                `json:"macd_signal"`
	CurrentPrice          float64               `json:"current_price"`
	SignificantFeatures   []string              `json:"significant_features"`
	TVTechnicalIndicators TVTechnicalIndicators `json:"tv_technical_indicators"`
	Verdict               VerdictResponse       `json:"verdict"`
	Oscillators           []OscillatorReading   `json:"oscillators"`
	PivotLadder           []PivotLevelResponse  `json:"pivot_ladder"`
	ModelAccuracy         ModelAccuracy         `json:"model_accuracy"`
	BreakoutLevels        BreakoutLevels        `json:"breakout_levels"`
	Metrics               Metrics               `json:"metrics"`
	MarketContext         *MarketContext        `json:"market_context,omitempty"`
	AIInsight             string                `json:"ai_insight,omitempty"`
}

type ChartPointResponse struct {
	Date         string   `json:"date"`
	Price        float64  `json:"price"`
	IsPrediction bool     `json:"isPrediction"`
	LowerBound   *float64 `json:"lowerBound,omitempty"`
	UpperBound   *float64 `json:"upperBound,omitempty"`
}

// TVTechnicalIndicators carries the raw sparse indicator map plus the
// vote-count summary, mirroring what the tradingview_ta snapshot looks like
// on the wire.
type TVTechnicalIndicators struct {
	Indicators map[string]float64 `json:"indicators"`
	Summary    TVSummary          `json:"summary"`
}

type TVSummary struct {
	Recommendation string `json:"RECOMMENDATION"`
	Buy            int    `json:"BUY"`
	Sell           int    `json:"SELL"`
	Neutral        int    `json:"NEUTRAL"`
}

// VerdictResponse is the aggregated recommendation with the gauge split the
// dashboard renders; the proportions always sum to one unless every count is
// zero.
type VerdictResponse struct {
	Label        string  `json:"label"`
	DisplayLabel string  `json:"display_label"`
	Class        string  `json:"class"`
	BuyPct       float64 `json:"buy_pct"`
	SellPct      float64 `json:"sell_pct"`
	NeutralPct   float64 `json:"neutral_pct"`
}

// OscillatorReading is one classified oscillator row for the indicator cards.
type OscillatorReading struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Value  *float64 `json:"value,omitempty"`
	Signal string   `json:"signal"`
}

// PivotLevelResponse is one present ladder row; absent levels are not
// rendered at all.
type PivotLevelResponse struct {
	Level string  `json:"level"`
	Value float64 `json:"value"`
}

type ModelAccuracy struct {
	MAEPercent *float64 `json:"mae_percent,omitempty"`
	Samples    *int     `json:"samples,omitempty"`
}

type BreakoutLevels struct {
	Resistance1 *float64 `json:"resistance_1,omitempty"`
	Support1    *float64 `json:"support_1,omitempty"`
	Pivot       *float64 `json:"pivot,omitempty"`
}

type Metrics struct {
	TrainingAccuracy *float64 `json:"training_accuracy,omitempty"`
	TestingAccuracy  *float64 `json:"testing_accuracy,omitempty"`
}

type MarketContext struct {
	BroadMarket  *MarketTrend `json:"broad_market,omitempty"`
	SectorMarket *SectorTrend `json:"sector_market,omitempty"`
}

type MarketTrend struct {
	Trend string   `json:"trend"`
	RSI   *float64 `json:"rsi,omitempty"`
	Color string   `json:"color"`
}

type SectorTrend struct {
	Name  string   `json:"name"`
	Trend string   `json:"trend"`
	RSI   *float64 `json:"rsi,omitempty"`
	Color string   `json:"color"`
}
