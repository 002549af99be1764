package metrics

import (
	"math"

	"github.com/kmehta/orbitlab/internal/gravity"
	"github.com/kmehta/orbitlab/internal/ode"
)

// MinSeparation records the closest approach between any pair of bodies
// over a run. A value near zero flags a near-singular pass.
type MinSeparation struct {
	sys *gravity.NBody
	min float64
}

func NewMinSeparation(sys *gravity.NBody) *MinSeparation {
	return &MinSeparation{sys: sys, min: math.Inf(1)}
}

func (m *MinSeparation) Name() string { return "min_separation" }

func (m *MinSeparation) Observe(x ode.State, t float64) {
	n := len(m.sys.Masses)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m.sys.Position(x, i).Distance(m.sys.Position(x, j))
			m.min = math.Min(m.min, d)
		}
	}
}

func (m *MinSeparation) Value() float64 {
	return m.min
}

func (m *MinSeparation) Reset() {
	m.min = math.Inf(1)
}

// MaxSeparation records the widest pairwise separation over a run. An
// ever-growing value flags an escape trajectory.
type MaxSeparation struct {
	sys *gravity.NBody
	max float64
}

func NewMaxSeparation(sys *gravity.NBody) *MaxSeparation {
	return &MaxSeparation{sys: sys}
}

func (m *MaxSeparation) Name() string { return "max_separation" }

func (m *MaxSeparation) Observe(x ode.State, t float64) {
	n := len(m.sys.Masses)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m.sys.Position(x, i).Distance(m.sys.Position(x, j))
			m.max = math.Max(m.max, d)
		}
	}
}

func (m *MaxSeparation) Value() float64 {
	return m.max
}

func (m *MaxSeparation) Reset() {
	m.max = 0
}
