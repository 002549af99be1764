package solver

import "github.com/kmehta/orbitlab/internal/ode"

// BodyTrack holds one body's sampled motion in component-major layout:
// Pos[0] is the x series, Pos[1] y, Pos[2] z, each of length Steps+1.
// Consumers index by spatial component first, then by time step.
type BodyTrack struct {
	Pos [3][]float64
	Vel [3][]float64
}

// Trajectory is the immutable result of an orbital solve: one shared time
// sequence plus a track per body. All series have identical length.
type Trajectory struct {
	Times  []float64
	Bodies []BodyTrack
}

// Samples returns the number of samples per series.
func (tr *Trajectory) Samples() int {
	return len(tr.Times)
}

// IsFinite reports whether every sampled value is finite. A false result
// means the run crossed a singularity and diverged.
func (tr *Trajectory) IsFinite() bool {
	for _, b := range tr.Bodies {
		for c := 0; c < 3; c++ {
			for _, v := range b.Pos[c] {
				if v != v || v > maxFinite || v < -maxFinite {
					return false
				}
			}
			for _, v := range b.Vel[c] {
				if v != v || v > maxFinite || v < -maxFinite {
					return false
				}
			}
		}
	}
	return true
}

const maxFinite = 1.7976931348623157e308

// FreeFallTrajectory is the result of a free-fall solve: height and
// velocity series plus the shared time sequence.
type FreeFallTrajectory struct {
	Pos   []float64
	Vel   []float64
	Times []float64
}

// AsTrajectory adapts the run to the orbital trajectory shape with the
// vertical motion on the y axis, so storage and replay handle both kinds.
func (tr *FreeFallTrajectory) AsTrajectory() *Trajectory {
	out := &Trajectory{
		Times:  tr.Times,
		Bodies: make([]BodyTrack, 1),
	}
	zero := make([]float64, len(tr.Times))
	out.Bodies[0].Pos = [3][]float64{zero, tr.Pos, zero}
	out.Bodies[0].Vel = [3][]float64{zero, tr.Vel, zero}
	return out
}

// packTrajectory reshapes the recorded state history into per-body
// component-major series. The history layout is the gravity.NBody contract:
// all positions first, then all velocities.
func packTrajectory(hist []ode.State, times []float64, numBodies int) *Trajectory {
	tr := &Trajectory{
		Times:  times,
		Bodies: make([]BodyTrack, numBodies),
	}

	samples := len(hist)
	for i := range tr.Bodies {
		for c := 0; c < 3; c++ {
			tr.Bodies[i].Pos[c] = make([]float64, samples)
			tr.Bodies[i].Vel[c] = make([]float64, samples)
		}
	}

	for k, x := range hist {
		for i := 0; i < numBodies; i++ {
			for c := 0; c < 3; c++ {
				tr.Bodies[i].Pos[c][k] = x[i*3+c]
				tr.Bodies[i].Vel[c][k] = x[(numBodies+i)*3+c]
			}
		}
	}

	return tr
}
