package metrics

import (
	"math"

	"github.com/kmehta/orbitlab/internal/ode"
)

// EnergyDrift tracks the maximum relative deviation of total energy from
// its initial value. A fixed-step RK4 run on a bound orbit should keep
// this small; growth signals too coarse a step or a singular close pass.
type EnergyDrift struct {
	sys      ode.Hamiltonian
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(sys ode.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{sys: sys}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(x ode.State, t float64) {
	energy := e.sys.Energy(x)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
