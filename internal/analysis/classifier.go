package analysis

// Signal is a qualitative per-indicator reading, independent of the overall
// verdict derived from vote counts.
type Signal string

const (
	SignalBullish Signal = "Bullish"
	SignalBearish Signal = "Bearish"
	SignalNeutral Signal = "Neutral"
)

// Snapshot keys for the oscillators shown on the dashboard, matching
// TradingView scanner field names.
const (
	KeyRSI    = "RSI"
	KeyStochK = "Stoch.K"
	KeyCCI20  = "CCI20"
	KeyADX    = "ADX"
	KeyAO     = "AO"
	KeyMom    = "Mom"
	KeyMACD   = "MACD.macd"
)

type thresholdRule func(v float64) Signal

// registry maps indicator keys to their classification rule. Only RSI has a
// threshold rule; the remaining oscillators are registered with the neutral
// passthrough on purpose. Product has not signed off on thresholds for them
// (standard CCI ±100 or ADX>25 bands would change the dashboard), so they
// stay neutral until that decision lands.
var registry = map[string]thresholdRule{
	KeyRSI:    classifyRSI,
	KeyStochK: neutralAlways,
	KeyCCI20:  neutralAlways,
	KeyADX:    neutralAlways,
	KeyAO:     neutralAlways,
	KeyMom:    neutralAlways,
	KeyMACD:   neutralAlways,
}

// Classify maps a single named indicator value to a qualitative signal.
// An absent value (nil) and an unregistered key both classify as Neutral.
func Classify(key string, value *float64) Signal {
	if value == nil {
		return SignalNeutral
	}
	rule, ok := registry[key]
	if !ok {
		return SignalNeutral
	}
	return rule(*value)
}

// classifyRSI reads RSI contrarian: oversold is a buy, overbought a sell.
// Both boundaries are exclusive, 30 and 70 themselves are neutral.
func classifyRSI(v float64) Signal {
	switch {
	case v < 30:
		return SignalBullish
	case v > 70:
		return SignalBearish
	default:
		return SignalNeutral
	}
}

func neutralAlways(float64) Signal {
	return SignalNeutral
}
