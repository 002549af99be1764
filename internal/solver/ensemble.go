package solver

import (
	"sync"

	"github.com/kmehta/orbitlab/internal/vec"
)

// TwoBodyCase is one parameter set for an ensemble run.
type TwoBodyCase struct {
	Masses     [2]float64
	Positions  [2]vec.Vector3
	Velocities [2]vec.Vector3
	T0, Tn     float64
}

// TwoBodyEnsemble solves every case concurrently. Each goroutine gets its
// own Solver clone, so integrator scratch buffers are never shared.
func (s *Solver) TwoBodyEnsemble(cases []TwoBodyCase) []*Trajectory {
	results := make([]*Trajectory, len(cases))

	var wg sync.WaitGroup
	for i, c := range cases {
		wg.Add(1)
		go func(idx int, c TwoBodyCase) {
			defer wg.Done()
			clone := New()
			clone.Steps = s.Steps
			clone.MinSeparation = s.MinSeparation
			results[idx] = clone.TwoBody(c.Masses, c.Positions, c.Velocities, c.T0, c.Tn)
		}(i, c)
	}
	wg.Wait()

	return results
}
