package solver

import (
	"github.com/kmehta/orbitlab/internal/gravity"
	"github.com/kmehta/orbitlab/internal/integrators"
	"github.com/kmehta/orbitlab/internal/ode"
	"github.com/kmehta/orbitlab/internal/vec"
)

// Default step counts per model. The free-fall model is smooth enough for
// a coarser grid; the orbital models use the finer one.
const (
	DefaultFreeFallSteps = 1000
	DefaultOrbitSteps    = 10000
)

// Solver binds an integrator and resolution to the solve operations.
// The zero value is not usable; call New.
type Solver struct {
	Integrator ode.Integrator

	// Steps overrides the per-model default step count when positive.
	Steps int

	// MinSeparation, when positive, floors pairwise distances in the
	// orbital force models. Off by default: the singular force law is
	// preserved and a coincident-body run diverges to Inf/NaN.
	MinSeparation float64

	metrics []ode.Metric
}

func New() *Solver {
	return &Solver{Integrator: integrators.NewRK4()}
}

// AddMetric registers a diagnostic observed at every recorded sample of
// subsequent solves.
func (s *Solver) AddMetric(m ode.Metric) {
	s.metrics = append(s.metrics, m)
}

// MetricValues returns the accumulated value of every registered metric.
func (s *Solver) MetricValues() map[string]float64 {
	vals := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		vals[m.Name()] = m.Value()
	}
	return vals
}

func (s *Solver) observe(hist []ode.State, times []float64) {
	if len(s.metrics) == 0 {
		return
	}
	for _, m := range s.metrics {
		m.Reset()
	}
	for k, x := range hist {
		for _, m := range s.metrics {
			m.Observe(x, times[k])
		}
	}
}

func (s *Solver) steps(def int) int {
	if s.Steps > 0 {
		return s.Steps
	}
	return def
}

// FreeFall integrates a single body under uniform gravity from t0 to tn.
func (s *Solver) FreeFall(initialHeight, initialVelocity, t0, tn float64) *FreeFallTrajectory {
	sys := gravity.NewFreeFall()
	dom := ode.Domain{T0: t0, Tn: tn, Steps: s.steps(DefaultFreeFallSteps)}

	hist, times := Drive(sys, s.Integrator, ode.State{initialHeight, initialVelocity}, dom)
	s.observe(hist, times)

	tr := &FreeFallTrajectory{
		Pos:   make([]float64, len(hist)),
		Vel:   make([]float64, len(hist)),
		Times: times,
	}
	for k, x := range hist {
		tr.Pos[k] = x[0]
		tr.Vel[k] = x[1]
	}
	return tr
}

// TwoBody integrates the mutual two-body gravitation problem from t0 to tn.
func (s *Solver) TwoBody(masses [2]float64, positions, velocities [2]vec.Vector3, t0, tn float64) *Trajectory {
	sys := gravity.NewTwoBody(masses[0], masses[1])
	sys.MinSeparation = s.MinSeparation

	x0 := flatten(positions[:], velocities[:])
	dom := ode.Domain{T0: t0, Tn: tn, Steps: s.steps(DefaultOrbitSteps)}

	hist, times := Drive(sys, s.Integrator, x0, dom)
	s.observe(hist, times)
	return packTrajectory(hist, times, 2)
}

// ThreeBody integrates the mutual three-body gravitation problem from t0 to tn.
func (s *Solver) ThreeBody(masses [3]float64, positions, velocities [3]vec.Vector3, t0, tn float64) *Trajectory {
	sys := gravity.NewThreeBody(masses[0], masses[1], masses[2])
	sys.MinSeparation = s.MinSeparation

	x0 := flatten(positions[:], velocities[:])
	dom := ode.Domain{T0: t0, Tn: tn, Steps: s.steps(DefaultOrbitSteps)}

	hist, times := Drive(sys, s.Integrator, x0, dom)
	s.observe(hist, times)
	return packTrajectory(hist, times, 3)
}

// SolveFreeFall runs the free-fall model with the default RK4 integrator
// and resolution.
func SolveFreeFall(initialHeight, initialVelocity, t0, tn float64) *FreeFallTrajectory {
	return New().FreeFall(initialHeight, initialVelocity, t0, tn)
}

// SolveTwoBody runs the two-body model with the default RK4 integrator
// and resolution.
func SolveTwoBody(masses [2]float64, positions, velocities [2]vec.Vector3, t0, tn float64) *Trajectory {
	return New().TwoBody(masses, positions, velocities, t0, tn)
}

// SolveThreeBody runs the three-body model with the default RK4 integrator
// and resolution.
func SolveThreeBody(masses [3]float64, positions, velocities [3]vec.Vector3, t0, tn float64) *Trajectory {
	return New().ThreeBody(masses, positions, velocities, t0, tn)
}

// flatten builds the solver's initial state vector: all positions first,
// then all velocities.
func flatten(positions, velocities []vec.Vector3) ode.State {
	n := len(positions)
	x := make(ode.State, n*6)
	for i, p := range positions {
		x[i*3], x[i*3+1], x[i*3+2] = p.X, p.Y, p.Z
	}
	for i, v := range velocities {
		o := (n + i) * 3
		x[o], x[o+1], x[o+2] = v.X, v.Y, v.Z
	}
	return x
}
