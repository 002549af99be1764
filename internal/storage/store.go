package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kmehta/orbitlab/internal/solver"
)

// Store persists solved runs under a base directory, one subdirectory per
// run holding metadata.json and trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Model      string             `json:"model"`
	Timestamp  time.Time          `json:"timestamp"`
	T0         float64            `json:"t0"`
	Tn         float64            `json:"tn"`
	Steps      int                `json:"steps"`
	Integrator string             `json:"integrator"`
	Bodies     []string           `json:"bodies"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// Save writes an orbital trajectory and its metadata, returning the run id.
func (s *Store) Save(model, integrator string, bodies []string, tr *solver.Trajectory, metrics map[string]float64) (string, error) {
	if len(tr.Bodies) != len(bodies) {
		return "", fmt.Errorf("storage: %d body names for %d tracks", len(bodies), len(tr.Bodies))
	}

	runID := fmt.Sprintf("%s_%d", model, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Model:      model,
		Timestamp:  time.Now(),
		T0:         tr.Times[0],
		Tn:         tr.Times[len(tr.Times)-1],
		Steps:      tr.Samples() - 1,
		Integrator: integrator,
		Bodies:     bodies,
		Metrics:    metrics,
	}

	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range bodies {
		for _, c := range []string{"x", "y", "z", "vx", "vy", "vz"} {
			header = append(header, name+"_"+c)
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for k := range tr.Times {
		row := make([]string, 0, len(header))
		row = append(row, formatFloat(tr.Times[k]))
		for _, b := range tr.Bodies {
			for c := 0; c < 3; c++ {
				row = append(row, formatFloat(b.Pos[c][k]))
			}
			for c := 0; c < 3; c++ {
				row = append(row, formatFloat(b.Vel[c][k]))
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeMetadata(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

// List returns metadata for every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

// Load returns the metadata for one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectory reads a stored run back into component-major form.
func (s *Store) LoadTrajectory(runID string) (*solver.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return &solver.Trajectory{}, nil
	}

	numBodies := (len(records[0]) - 1) / 6
	samples := len(records) - 1

	tr := &solver.Trajectory{
		Times:  make([]float64, samples),
		Bodies: make([]solver.BodyTrack, numBodies),
	}
	for i := range tr.Bodies {
		for c := 0; c < 3; c++ {
			tr.Bodies[i].Pos[c] = make([]float64, samples)
			tr.Bodies[i].Vel[c] = make([]float64, samples)
		}
	}

	for k := 0; k < samples; k++ {
		record := records[k+1]

		tv, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad time at row %d: %w", k+1, err)
		}
		tr.Times[k] = tv

		for i := 0; i < numBodies; i++ {
			base := 1 + i*6
			for c := 0; c < 3; c++ {
				v, err := strconv.ParseFloat(record[base+c], 64)
				if err != nil {
					return nil, fmt.Errorf("storage: bad value at row %d: %w", k+1, err)
				}
				tr.Bodies[i].Pos[c][k] = v
			}
			for c := 0; c < 3; c++ {
				v, err := strconv.ParseFloat(record[base+3+c], 64)
				if err != nil {
					return nil, fmt.Errorf("storage: bad value at row %d: %w", k+1, err)
				}
				tr.Bodies[i].Vel[c][k] = v
			}
		}
	}

	return tr, nil
}
