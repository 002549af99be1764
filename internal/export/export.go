// Package export serializes solved trajectories for external tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kmehta/orbitlab/internal/solver"
)

// BodyData is one body's series in the JSON export, component-major to
// match the in-memory trajectory contract.
type BodyData struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	Z    []float64 `json:"z"`
	VX   []float64 `json:"vx"`
	VY   []float64 `json:"vy"`
	VZ   []float64 `json:"vz"`
}

type TrajectoryData struct {
	Model      string             `json:"model"`
	Integrator string             `json:"integrator"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Bodies     []BodyData         `json:"bodies"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// JSON writes an orbital trajectory as indented JSON.
func JSON(w io.Writer, model, integrator string, names []string, tr *solver.Trajectory, metrics map[string]float64) error {
	if len(names) != len(tr.Bodies) {
		return fmt.Errorf("export: %d body names for %d tracks", len(names), len(tr.Bodies))
	}

	data := TrajectoryData{
		Model:      model,
		Integrator: integrator,
		Steps:      tr.Samples() - 1,
		Times:      tr.Times,
		Bodies:     make([]BodyData, len(tr.Bodies)),
		Metrics:    metrics,
	}

	for i, b := range tr.Bodies {
		data.Bodies[i] = BodyData{
			Name: names[i],
			X:    b.Pos[0], Y: b.Pos[1], Z: b.Pos[2],
			VX: b.Vel[0], VY: b.Vel[1], VZ: b.Vel[2],
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// CSV writes an orbital trajectory as one row per sample.
func CSV(w io.Writer, names []string, tr *solver.Trajectory) error {
	if len(names) != len(tr.Bodies) {
		return fmt.Errorf("export: %d body names for %d tracks", len(names), len(tr.Bodies))
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time"}
	for _, name := range names {
		for _, c := range []string{"x", "y", "z", "vx", "vy", "vz"} {
			header = append(header, name+"_"+c)
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for k := range tr.Times {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(tr.Times[k], 'g', 17, 64))
		for _, b := range tr.Bodies {
			for c := 0; c < 3; c++ {
				row = append(row, strconv.FormatFloat(b.Pos[c][k], 'g', 17, 64))
			}
			for c := 0; c < 3; c++ {
				row = append(row, strconv.FormatFloat(b.Vel[c][k], 'g', 17, 64))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// FreeFallCSV writes a free-fall trajectory as time,height,velocity rows.
func FreeFallCSV(w io.Writer, tr *solver.FreeFallTrajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "height", "velocity"}); err != nil {
		return err
	}

	for k := range tr.Times {
		row := []string{
			strconv.FormatFloat(tr.Times[k], 'g', 17, 64),
			strconv.FormatFloat(tr.Pos[k], 'g', 17, 64),
			strconv.FormatFloat(tr.Vel[k], 'g', 17, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}
