package integrators

import (
	"math"
	"testing"

	"github.com/kmehta/orbitlab/internal/ode"
)

// harmonic oscillator: x'' = -x
type oscillator struct{}

func (o *oscillator) Derive(x ode.State, t float64) ode.State {
	return ode.State{x[1], -x[0]}
}

func (o *oscillator) Dim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	sys := &oscillator{}
	integ := NewRK4()

	x := ode.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4ConvergenceOrder(t *testing.T) {
	sys := &oscillator{}
	tn := 1.0

	finalErr := func(steps int) float64 {
		integ := NewRK4()
		dt := tn / float64(steps)
		x := ode.State{1.0, 0.0}
		for i := 0; i < steps; i++ {
			x = integ.Step(sys, x, float64(i)*dt, dt)
		}
		return math.Abs(x[0] - math.Cos(tn))
	}

	errCoarse := finalErr(50)
	errFine := finalErr(100)

	// Halving h should shrink the error by roughly 2^4.
	ratio := errCoarse / errFine
	if ratio < 12 || ratio > 20 {
		t.Errorf("expected 4th-order error ratio ~16, got %.2f (coarse=%.3e fine=%.3e)", ratio, errCoarse, errFine)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	sys := &oscillator{}
	integ := NewEuler()

	x := ode.State{1.0, 0.0}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	// Loose bound: Euler drifts but should stay near cos(1) at this dt.
	if math.Abs(x[0]-math.Cos(1.0)) > 0.01 {
		t.Errorf("euler drifted too far: got %.6f, expected ~%.6f", x[0], math.Cos(1.0))
	}
}

func TestRK4ScratchReuseAcrossDimensions(t *testing.T) {
	integ := NewRK4()
	osc := &oscillator{}

	x := integ.Step(osc, ode.State{1, 0}, 0, 0.01)
	if len(x) != 2 {
		t.Fatalf("expected 2-dim result, got %d", len(x))
	}

	// Same integrator on a different dimension must resize its buffers.
	flat := &constantSystem{dim: 6}
	y := integ.Step(flat, make(ode.State, 6), 0, 0.01)
	if len(y) != 6 {
		t.Fatalf("expected 6-dim result, got %d", len(y))
	}
}

type constantSystem struct{ dim int }

func (c *constantSystem) Derive(x ode.State, t float64) ode.State {
	return make(ode.State, c.dim)
}

func (c *constantSystem) Dim() int { return c.dim }
