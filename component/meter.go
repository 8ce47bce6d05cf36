package component

import "github.com/milk9111/clickwalk/common"

// Meter is a bounded gauge, such as hit points, drawn as a bar.
type Meter struct {
	Max     float64
	Current float64
}

// NewMeter creates a full Meter.
func NewMeter(max float64) *Meter {
	if max <= 0 {
		max = 1
	}
	return &Meter{Max: max, Current: max}
}

// Fraction returns Current/Max clamped to [0, 1].
func (m *Meter) Fraction() float64 {
	if m == nil || m.Max <= 0 {
		return 0
	}
	return common.Clamp(m.Current/m.Max, 0, 1)
}

// Set assigns Current, clamped to [0, Max].
func (m *Meter) Set(v float64) {
	if m == nil {
		return
	}
	m.Current = common.Clamp(v, 0, m.Max)
}
