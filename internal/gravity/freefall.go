package gravity

import "github.com/kmehta/orbitlab/internal/ode"

// FreeFall models a single body falling under uniform gravity.
// State: [y, v]. Derivative: [v, -g].
type FreeFall struct {
	Gravity float64
}

func NewFreeFall() *FreeFall {
	return &FreeFall{Gravity: StandardGravity}
}

func (f *FreeFall) Dim() int { return 2 }

func (f *FreeFall) Derive(x ode.State, _ float64) ode.State {
	return ode.State{x[1], -f.Gravity}
}

// Energy returns the total mechanical energy per unit mass.
func (f *FreeFall) Energy(x ode.State) float64 {
	return 0.5*x[1]*x[1] + f.Gravity*x[0]
}
