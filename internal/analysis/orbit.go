// Package analysis derives orbital quantities from solved trajectories.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/kmehta/orbitlab/internal/solver"
)

// OrbitStats summarizes the relative motion of one body pair.
type OrbitStats struct {
	MeanSeparation float64
	StdSeparation  float64
	Periapsis      float64
	Apoapsis       float64
	Eccentricity   float64

	// Period is estimated from the spacing of radial minima; zero when
	// the run covers fewer than two close approaches.
	Period float64
}

// Separation returns the pairwise distance series between bodies i and j.
func Separation(tr *solver.Trajectory, i, j int) []float64 {
	sep := make([]float64, tr.Samples())
	bi, bj := tr.Bodies[i], tr.Bodies[j]
	for k := range sep {
		dx := bj.Pos[0][k] - bi.Pos[0][k]
		dy := bj.Pos[1][k] - bi.Pos[1][k]
		dz := bj.Pos[2][k] - bi.Pos[2][k]
		sep[k] = math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return sep
}

// Orbit computes separation statistics for the pair (i, j).
func Orbit(tr *solver.Trajectory, i, j int) OrbitStats {
	sep := Separation(tr, i, j)

	st := OrbitStats{
		MeanSeparation: stat.Mean(sep, nil),
		StdSeparation:  stat.StdDev(sep, nil),
		Periapsis:      math.Inf(1),
	}

	for _, d := range sep {
		st.Periapsis = math.Min(st.Periapsis, d)
		st.Apoapsis = math.Max(st.Apoapsis, d)
	}

	if st.Apoapsis+st.Periapsis > 0 {
		st.Eccentricity = (st.Apoapsis - st.Periapsis) / (st.Apoapsis + st.Periapsis)
	}

	st.Period = estimatePeriod(sep, tr.Times)
	return st
}

// estimatePeriod averages the spacing between successive radial minima.
func estimatePeriod(sep, times []float64) float64 {
	var minima []float64
	for k := 1; k < len(sep)-1; k++ {
		if sep[k] < sep[k-1] && sep[k] <= sep[k+1] {
			minima = append(minima, times[k])
		}
	}
	if len(minima) < 2 {
		return 0
	}
	return (minima[len(minima)-1] - minima[0]) / float64(len(minima)-1)
}
