package analysis

// IndicatorSnapshot is a sparse map of TradingView field identifiers
// (e.g. "RSI", "Pivot.M.Fibonacci.S1") to indicator values. Any key may be
// absent; lookups must go through Value so callers always handle the missing
// case explicitly.
type IndicatorSnapshot map[string]float64

// Value returns the indicator value for the given key and whether it is
// present in the snapshot.
func (s IndicatorSnapshot) Value(key string) (float64, bool) {
	v, ok := s[key]
	return v, ok
}

// Lookup returns a pointer to the indicator value, or nil when the key is
// absent.
func (s IndicatorSnapshot) Lookup(key string) *float64 {
	if v, ok := s[key]; ok {
		return &v
	}
	return nil
}

// VoteCounts holds the buy/sell/neutral vote tally behind a consolidated
// recommendation. Each count is non-negative; the total may be zero.
type VoteCounts struct {
	Buy     int
	Sell    int
	Neutral int
}

// Total returns the sum of all votes.
func (v VoteCounts) Total() int {
	return v.Buy + v.Sell + v.Neutral
}
