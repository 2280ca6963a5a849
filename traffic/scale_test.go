package traffic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrtScale_Radius(t *testing.T) {
	tests := []struct {
		name     string
		scale    SqrtScale
		total    int
		expected float64
	}{
		{"zero maps to range start", NewSqrtScale(100, UnfilteredRadius), 0, 0},
		{"max maps to range end", NewSqrtScale(100, UnfilteredRadius), 100, 25},
		{"quarter of domain is half the radius", NewSqrtScale(100, UnfilteredRadius), 25, 12.5},
		{"filtered range starts above zero", NewSqrtScale(16, FilteredRadius), 0, 3},
		{"filtered range end", NewSqrtScale(16, FilteredRadius), 16, 50},
		{"filtered midpoint", NewSqrtScale(16, FilteredRadius), 4, 26.5},
		{"empty domain maps to middle", NewSqrtScale(0, FilteredRadius), 0, 26.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.scale.Radius(tt.total), 1e-9)
		})
	}
}

func TestFlowRatio(t *testing.T) {
	ratio, ok := FlowRatio(3, 4)
	assert.True(t, ok)
	assert.InDelta(t, 0.75, ratio, 1e-9)

	ratio, ok = FlowRatio(0, 0)
	assert.False(t, ok)
	assert.False(t, math.IsNaN(ratio))
}

func TestQuantizeFlow(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		ok       bool
		expected float64
	}{
		{"all arrivals", 0, true, 0},
		{"just under a third", 0.33, true, 0},
		{"balanced", 0.5, true, 0.5},
		{"just under two thirds", 0.66, true, 0.5},
		{"two thirds", 2.0 / 3, true, 1},
		{"all departures", 1, true, 1},
		{"no traffic is neutral", 0, false, 0.5},
		{"NaN is neutral", math.NaN(), true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuantizeFlow(tt.ratio, tt.ok))
		})
	}
}
