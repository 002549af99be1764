package gravity

import (
	"math"

	"github.com/kmehta/orbitlab/internal/ode"
	"github.com/kmehta/orbitlab/internal/vec"
)

// NBody models mutually interacting point masses under Newtonian
// gravitation in 3D. The state vector holds every body's position followed
// by every body's velocity, 3 components each.
//
// MinSeparation is an opt-in floor on pairwise distance. It defaults to 0,
// which preserves the singular 1/r^3 law: two coincident bodies divide by
// zero and the resulting Inf/NaN propagates through the trajectory.
type NBody struct {
	Masses        []float64
	G             float64
	MinSeparation float64
}

func NewNBody(masses []float64) *NBody {
	m := make([]float64, len(masses))
	copy(m, masses)
	return &NBody{Masses: m, G: G}
}

// NewTwoBody returns the two-body gravitation model used by SolveTwoBody.
func NewTwoBody(m1, m2 float64) *NBody {
	return NewNBody([]float64{m1, m2})
}

// NewThreeBody returns the three-body gravitation model used by SolveThreeBody.
func NewThreeBody(m1, m2, m3 float64) *NBody {
	return NewNBody([]float64{m1, m2, m3})
}

func (nb *NBody) Dim() int { return len(nb.Masses) * 6 }

// Position returns body i's position from a state vector.
func (nb *NBody) Position(x ode.State, i int) vec.Vector3 {
	return vec.Vector3{X: x[i*3], Y: x[i*3+1], Z: x[i*3+2]}
}

// Velocity returns body i's velocity from a state vector.
func (nb *NBody) Velocity(x ode.State, i int) vec.Vector3 {
	o := (len(nb.Masses) + i) * 3
	return vec.Vector3{X: x[o], Y: x[o+1], Z: x[o+2]}
}

func (nb *NBody) Derive(x ode.State, _ float64) ode.State {
	n := len(nb.Masses)
	dx := make(ode.State, len(x))

	// Position derivatives are the velocity block.
	copy(dx[:n*3], x[n*3:])

	// Velocity derivatives accumulate pairwise accelerations.
	acc := dx[n*3:]
	for i := 0; i < n; i++ {
		xi, yi, zi := x[i*3], x[i*3+1], x[i*3+2]

		for j := i + 1; j < n; j++ {
			rx := x[j*3] - xi
			ry := x[j*3+1] - yi
			rz := x[j*3+2] - zi

			r := math.Sqrt(rx*rx + ry*ry + rz*rz)
			if r < nb.MinSeparation {
				r = nb.MinSeparation
			}
			r3Inv := 1.0 / (r * r * r)

			fij := nb.G * nb.Masses[j] * r3Inv
			acc[i*3] += fij * rx
			acc[i*3+1] += fij * ry
			acc[i*3+2] += fij * rz

			fji := nb.G * nb.Masses[i] * r3Inv
			acc[j*3] -= fji * rx
			acc[j*3+1] -= fji * ry
			acc[j*3+2] -= fji * rz
		}
	}

	return dx
}

// Energy returns total kinetic plus potential energy.
func (nb *NBody) Energy(x ode.State) float64 {
	n := len(nb.Masses)
	ke := 0.0
	pe := 0.0

	for i := 0; i < n; i++ {
		v := nb.Velocity(x, i)
		ke += 0.5 * nb.Masses[i] * v.Dot(v)

		for j := i + 1; j < n; j++ {
			r := nb.Position(x, i).Distance(nb.Position(x, j))
			pe -= nb.G * nb.Masses[i] * nb.Masses[j] / r
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum of the system.
func (nb *NBody) Momentum(x ode.State) vec.Vector3 {
	var p vec.Vector3
	for i := range nb.Masses {
		p = p.Add(nb.Velocity(x, i).Scale(nb.Masses[i]))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func (nb *NBody) AngularMomentum(x ode.State) vec.Vector3 {
	var l vec.Vector3
	for i := range nb.Masses {
		r := nb.Position(x, i)
		p := nb.Velocity(x, i).Scale(nb.Masses[i])
		l = l.Add(r.Cross(p))
	}
	return l
}
