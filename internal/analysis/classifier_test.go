package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_RSI(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Signal
	}{
		{name: "oversold reads bullish", value: 29.9, want: SignalBullish},
		{name: "lower boundary is exclusive", value: 30, want: SignalNeutral},
		{name: "mid range is neutral", value: 50, want: SignalNeutral},
		{name: "upper boundary is exclusive", value: 70, want: SignalNeutral},
		{name: "overbought reads bearish", value: 70.1, want: SignalBearish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.value
			assert.Equal(t, tt.want, Classify(KeyRSI, &v))
		})
	}
}

func TestClassify_AbsentValue(t *testing.T) {
	assert.Equal(t, SignalNeutral, Classify(KeyRSI, nil))
	assert.Equal(t, SignalNeutral, Classify("unknown-indicator", nil))
}

func TestClassify_PassthroughIndicators(t *testing.T) {
	// The remaining oscillators have no threshold rule and stay neutral for
	// any value, including extremes that other rule sets would flag.
	keys := []string{KeyStochK, KeyCCI20, KeyADX, KeyAO, KeyMom, KeyMACD}
	values := []float64{-250, -100, 0, 25, 100, 250}

	for _, key := range keys {
		for _, value := range values {
			v := value
			assert.Equal(t, SignalNeutral, Classify(key, &v), "key %s value %v", key, value)
		}
	}
}

func TestClassify_UnregisteredKey(t *testing.T) {
	v := 10.0
	assert.Equal(t, SignalNeutral, Classify("W.R", &v))
}
