package ode

import "math"

// State is the flattened numeric state of a system at one instant.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System describes an ODE system dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Hamiltonian is implemented by systems that can report total energy.
type Hamiltonian interface {
	Energy(x State) float64
}

// Integrator advances a state by one fixed step dt.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// Metric accumulates a scalar diagnostic over a run.
type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

// Domain is the fixed time domain of a solve: integrate from T0 to Tn in
// Steps equal increments. The step size h = (Tn-T0)/Steps is derived once
// and held constant.
type Domain struct {
	T0    float64
	Tn    float64
	Steps int
}

// H returns the step size.
func (d Domain) H() float64 {
	return (d.Tn - d.T0) / float64(d.Steps)
}
