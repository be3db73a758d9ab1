// Package meter implements the sneeze meter, a bounded stress gauge.
package meter

// Max is the level at which the meter saturates.
const Max = 100.0

// Meter never drops below zero. It may briefly exceed Max after a hit
// until the owner notices it is Full and calls Saturate.
type Meter struct {
	value float64
}

func (m *Meter) Value() float64 {
	return m.value
}

// Add raises the meter by v.
func (m *Meter) Add(v float64) {
	m.value += v
}

// Sub lowers the meter by v, stopping at zero.
func (m *Meter) Sub(v float64) {
	m.value -= v
	if m.value < 0 {
		m.value = 0
	}
}

// Full reports whether the meter reached Max.
func (m *Meter) Full() bool {
	return m.value >= Max
}

// Saturate clamps an overflowing meter to Max.
func (m *Meter) Saturate() {
	if m.value > Max {
		m.value = Max
	}
}

// Reset empties the meter.
func (m *Meter) Reset() {
	m.value = 0
}

// Fraction returns the fill ratio in [0, 1] for drawing.
func (m *Meter) Fraction() float64 {
	if m.value >= Max {
		return 1
	}
	return m.value / Max
}
