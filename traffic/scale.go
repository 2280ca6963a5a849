package traffic

import "math"

// Range is an output interval [Min, Max]
type Range [2]float64

var (
	// UnfilteredRadius is the circle radius range when every trip is shown
	UnfilteredRadius = Range{0, 25}

	// FilteredRadius is wider and starts above zero so small windowed counts stay visible
	FilteredRadius = Range{3, 50}
)

// neutralFlow is used when a station has no traffic
const neutralFlow = 0.5

// SqrtScale maps [0, DomainMax] onto Range with a square-root curve
type SqrtScale struct {
	DomainMax float64
	Range     Range
}

// NewSqrtScale builds a scale for traffic counts up to domainMax
func NewSqrtScale(domainMax int, r Range) SqrtScale {
	return SqrtScale{DomainMax: float64(domainMax), Range: r}
}

// Radius maps a traffic count. A zero domain maps everything to the middle of the range.
func (s SqrtScale) Radius(total int) float64 {
	r0, r1 := s.Range[0], s.Range[1]
	if s.DomainMax <= 0 {
		return r0 + (r1-r0)*0.5
	}
	return r0 + (r1-r0)*math.Sqrt(float64(total))/math.Sqrt(s.DomainMax)
}

// FlowRatio returns departures/total; ok is false when total is zero
func FlowRatio(departures, total int) (float64, bool) {
	if total <= 0 {
		return 0, false
	}
	return float64(departures) / float64(total), true
}

// QuantizeFlow snaps a ratio in [0,1] to 0, 0.5 or 1 using equal thirds.
// A missing ratio yields the neutral 0.5.
func QuantizeFlow(ratio float64, ok bool) float64 {
	if !ok || math.IsNaN(ratio) {
		return neutralFlow
	}
	switch {
	case ratio < 1.0/3:
		return 0
	case ratio < 2.0/3:
		return 0.5
	default:
		return 1
	}
}
