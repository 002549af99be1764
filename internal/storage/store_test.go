package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kmehta/orbitlab/internal/solver"
	"github.com/kmehta/orbitlab/internal/vec"
)

func sampleTrajectory() *solver.Trajectory {
	s := solver.New()
	s.Steps = 20
	return s.TwoBody(
		[2]float64{1e24, 1e22},
		[2]vec.Vector3{{}, {X: 1e8}},
		[2]vec.Vector3{{}, {Y: 500}},
		0, 100,
	)
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	tr := sampleTrajectory()

	runID, err := st.Save("twobody", "rk4", []string{"alpha", "beta"}, tr, map[string]float64{"momentum_drift": 1e-12})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Model != "twobody" {
		t.Errorf("expected model twobody, got %s", meta.Model)
	}
	if meta.Steps != 20 {
		t.Errorf("expected 20 steps, got %d", meta.Steps)
	}
	if meta.Metrics["momentum_drift"] != 1e-12 {
		t.Errorf("metrics lost: %v", meta.Metrics)
	}

	loaded, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}

	if loaded.Samples() != tr.Samples() {
		t.Fatalf("expected %d samples, got %d", tr.Samples(), loaded.Samples())
	}
	if len(loaded.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(loaded.Bodies))
	}

	// Round trip through 17 significant digits must be exact.
	for c := 0; c < 3; c++ {
		for k := range tr.Times {
			if loaded.Bodies[1].Pos[c][k] != tr.Bodies[1].Pos[c][k] {
				t.Fatalf("position changed in round trip at comp %d sample %d", c, k)
			}
		}
	}
}

func TestStoreBodyNameMismatch(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := st.Save("twobody", "rk4", []string{"only-one"}, sampleTrajectory(), nil); err == nil {
		t.Error("expected error for mismatched body names")
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("twobody", "rk4", []string{"a", "b"}, sampleTrajectory(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("twobody", "rk4", []string{"a", "b"}, sampleTrajectory(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "trajectory.csv"} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}
