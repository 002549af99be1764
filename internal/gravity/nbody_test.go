package gravity

import (
	"math"
	"testing"

	"github.com/kmehta/orbitlab/internal/ode"
)

func TestTwoBodyDerivative(t *testing.T) {
	m1, m2 := 2.0e10, 3.0e10
	nb := NewTwoBody(m1, m2)

	// Bodies a unit distance apart on the x axis, body 2 moving in y.
	x := ode.State{
		0, 0, 0, 1, 0, 0, // positions
		0, 0, 0, 0, 0.5, 0, // velocities
	}

	dx := nb.Derive(x, 0)

	// Position derivatives are the velocities.
	if dx[3] != 0 || dx[4] != 0.5 {
		t.Errorf("position derivative should equal velocity, got (%f, %f)", dx[3], dx[4])
	}

	// a1 = G*m2*(r2-r1)/r^3 with r=1.
	wantA1 := G * m2
	if math.Abs(dx[6]-wantA1) > 1e-9*wantA1 {
		t.Errorf("expected a1x %e, got %e", wantA1, dx[6])
	}

	wantA2 := -G * m1
	if math.Abs(dx[9]-wantA2) > 1e-9*math.Abs(wantA2) {
		t.Errorf("expected a2x %e, got %e", wantA2, dx[9])
	}

	// No force out of the line of centers.
	if dx[7] != 0 || dx[8] != 0 || dx[10] != 0 || dx[11] != 0 {
		t.Error("expected zero off-axis acceleration")
	}
}

func TestNBodyNetForceIsZero(t *testing.T) {
	nb := NewThreeBody(1e24, 3e23, 5e22)

	x := ode.State{
		0, 0, 0,
		4e8, 1e8, -2e8,
		-1e8, 3e8, 5e7,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	dx := nb.Derive(x, 0)

	// Sum of m_i * a_i must vanish for internal forces.
	for c := 0; c < 3; c++ {
		sum := 0.0
		for i := 0; i < 3; i++ {
			sum += nb.Masses[i] * dx[(3+i)*3+c]
		}
		scale := nb.Masses[0] * math.Abs(dx[9+c])
		if scale == 0 {
			scale = 1
		}
		if math.Abs(sum) > 1e-12*scale {
			t.Errorf("component %d: net internal force %e not zero", c, sum)
		}
	}
}

func TestThreeBodyPairwiseSum(t *testing.T) {
	m := []float64{1e20, 2e20, 4e20}
	three := NewNBody(m)

	x := ode.State{
		0, 0, 0,
		1e5, 0, 0,
		0, 2e5, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	dx := three.Derive(x, 0)

	// Acceleration on body 1 must equal the sum of the two pairwise
	// two-body accelerations.
	pair12 := NewTwoBody(m[0], m[1])
	x12 := ode.State{0, 0, 0, 1e5, 0, 0, 0, 0, 0, 0, 0, 0}
	d12 := pair12.Derive(x12, 0)

	pair13 := NewTwoBody(m[0], m[2])
	x13 := ode.State{0, 0, 0, 0, 2e5, 0, 0, 0, 0, 0, 0, 0}
	d13 := pair13.Derive(x13, 0)

	for c := 0; c < 3; c++ {
		want := d12[6+c] + d13[6+c]
		got := dx[9+c]
		if math.Abs(got-want) > 1e-12*math.Max(math.Abs(want), 1) {
			t.Errorf("component %d: expected summed acceleration %e, got %e", c, want, got)
		}
	}
}

func TestSingularityPropagates(t *testing.T) {
	nb := NewTwoBody(1e10, 1e10)

	// Coincident bodies: the 1/r^3 law divides by zero.
	x := make(ode.State, 12)
	dx := nb.Derive(x, 0)

	finite := true
	for _, v := range dx[6:] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = false
		}
	}
	if finite {
		t.Error("expected non-finite acceleration for coincident bodies")
	}
}

func TestMinSeparationFloor(t *testing.T) {
	nb := NewTwoBody(1e10, 1e10)
	nb.MinSeparation = 1.0

	x := make(ode.State, 12)
	dx := nb.Derive(x, 0)

	if !dx.IsValid() {
		t.Error("expected finite derivative with separation floor enabled")
	}
}

func TestNBodyDiagnostics(t *testing.T) {
	nb := NewTwoBody(5.0, 3.0)
	nb.G = 1.0

	x := ode.State{
		0, 0, 0, 2, 0, 0,
		0, 1, 0, 0, -1, 0,
	}

	ke := 0.5*5*1 + 0.5*3*1
	pe := -1.0 * 5 * 3 / 2
	if e := nb.Energy(x); math.Abs(e-(ke+pe)) > 1e-12 {
		t.Errorf("expected energy %f, got %f", ke+pe, e)
	}

	p := nb.Momentum(x)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-(5*1+3*-1)) > 1e-12 {
		t.Errorf("unexpected momentum %v", p)
	}

	l := nb.AngularMomentum(x)
	// Body 1 at origin contributes nothing; body 2: r x p = (2,0,0) x (0,-3,0).
	if math.Abs(l.Z-(-6)) > 1e-12 {
		t.Errorf("expected Lz -6, got %f", l.Z)
	}
}
