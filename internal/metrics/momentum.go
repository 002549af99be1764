package metrics

import (
	"math"

	"github.com/kmehta/orbitlab/internal/gravity"
	"github.com/kmehta/orbitlab/internal/ode"
)

// MomentumDrift tracks the maximum deviation of total linear momentum
// from its initial value, relative to the initial magnitude. Internal
// gravitational forces conserve momentum, so any drift is integration
// noise.
type MomentumDrift struct {
	sys      *gravity.NBody
	initial  float64
	p0x      float64
	p0y      float64
	p0z      float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift(sys *gravity.NBody) *MomentumDrift {
	return &MomentumDrift{sys: sys}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(x ode.State, t float64) {
	p := m.sys.Momentum(x)

	if m.samples == 0 {
		m.p0x, m.p0y, m.p0z = p.X, p.Y, p.Z
		m.initial = p.Norm()
	}
	m.samples++

	dx, dy, dz := p.X-m.p0x, p.Y-m.p0y, p.Z-m.p0z
	drift := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if m.initial > 0 {
		drift /= m.initial
	}
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.p0x, m.p0y, m.p0z = 0, 0, 0
	m.maxDrift = 0
	m.samples = 0
}
