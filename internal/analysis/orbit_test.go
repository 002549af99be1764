package analysis

import (
	"math"
	"testing"

	"github.com/kmehta/orbitlab/internal/solver"
	"github.com/kmehta/orbitlab/internal/vec"
)

func earthMoon(tn float64) *solver.Trajectory {
	return solver.SolveTwoBody(
		[2]float64{5.97e24, 7.35e22},
		[2]vec.Vector3{{}, {X: 3.84e8}},
		[2]vec.Vector3{{}, {Y: 1022}},
		0, tn,
	)
}

func TestSeparationSeries(t *testing.T) {
	tr := earthMoon(1e5)
	sep := Separation(tr, 0, 1)

	if len(sep) != tr.Samples() {
		t.Fatalf("expected %d samples, got %d", tr.Samples(), len(sep))
	}
	if math.Abs(sep[0]-3.84e8) > 1 {
		t.Errorf("expected initial separation 3.84e8, got %e", sep[0])
	}
}

func TestOrbitStatsEarthMoon(t *testing.T) {
	// Two full orbits so the period estimator sees repeated minima.
	tr := earthMoon(4.7e6)
	st := Orbit(tr, 0, 1)

	if st.MeanSeparation < 3.79e8 || st.MeanSeparation > 3.85e8 {
		t.Errorf("mean separation out of range: %e", st.MeanSeparation)
	}
	if st.Periapsis > st.Apoapsis {
		t.Error("periapsis exceeds apoapsis")
	}
	if st.Eccentricity < 0 || st.Eccentricity > 0.02 {
		t.Errorf("expected near-circular orbit, eccentricity %f", st.Eccentricity)
	}

	// Keplerian period for the configuration is ~2.33e6 s.
	if st.Period == 0 {
		t.Fatal("expected a period estimate over two orbits")
	}
	if math.Abs(st.Period-2.33e6)/2.33e6 > 0.1 {
		t.Errorf("expected period ~2.33e6 s, got %e", st.Period)
	}
}

func TestPeriodUnavailableOnShortArc(t *testing.T) {
	tr := earthMoon(1e5)
	st := Orbit(tr, 0, 1)

	if st.Period != 0 {
		t.Errorf("expected no period estimate on a short arc, got %e", st.Period)
	}
}
