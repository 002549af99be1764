package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/kmehta/orbitlab/internal/analysis"
	"github.com/kmehta/orbitlab/internal/catalog"
	"github.com/kmehta/orbitlab/internal/config"
	"github.com/kmehta/orbitlab/internal/export"
	"github.com/kmehta/orbitlab/internal/gravity"
	"github.com/kmehta/orbitlab/internal/integrators"
	"github.com/kmehta/orbitlab/internal/metrics"
	"github.com/kmehta/orbitlab/internal/solver"
	"github.com/kmehta/orbitlab/internal/storage"
	"github.com/kmehta/orbitlab/internal/vec"
	"github.com/kmehta/orbitlab/internal/viz"
)

var (
	dataDir        string
	configFile     string
	preset         string
	stepsFlag      int
	t0Flag         float64
	tnFlag         float64
	integratorName string
	minSeparation  float64
	// Free-fall initial conditions
	height   float64
	velocity float64
	// Live view frame rate
	frameRate int
	// Body pair for analysis
	pairA int
	pairB int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "gravitational trajectory lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "solve a model and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot trajectory components against time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	orbitCmd := &cobra.Command{
		Use:   "orbit [run_id]",
		Short: "draw the x-y orbit trace",
		Args:  cobra.ExactArgs(1),
		RunE:  orbitRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "orbital statistics for a body pair",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&pairA, "first", 0, "first body index")
	analyzeCmd.Flags().IntVar(&pairB, "second", 1, "second body index")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export trajectory data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export trajectory data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "list known celestial bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMASS (kg)")
			for _, name := range catalog.Names() {
				b, _ := catalog.Lookup(name)
				fmt.Fprintf(w, "%s\t%.3e\n", b.Name, b.Mass)
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "solve a model and replay it in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark solve times across resolutions",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}
	addRunFlags(benchCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [model]",
		Short: "compare integrators on the same configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  compareIntegrators,
	}
	addRunFlags(compareCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, orbitCmd, analyzeCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, catalogCmd, liveCmd, benchCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&stepsFlag, "steps", 0, "step count (0 = model default)")
	cmd.Flags().Float64Var(&t0Flag, "t0", 0, "initial time")
	cmd.Flags().Float64Var(&tnFlag, "tn", 0, "final time (0 = config value)")
	cmd.Flags().StringVar(&integratorName, "integrator", "", "integrator (rk4, euler)")
	cmd.Flags().Float64Var(&minSeparation, "min-separation", 0, "optional distance floor (0 = permissive)")
	cmd.Flags().Float64Var(&height, "height", 100, "initial height (freefall)")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "initial velocity (freefall)")
}

// resolveConfig builds the run configuration for a model from preset,
// config file, and flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case preset != "":
		cfg = config.GetPreset(model, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	default:
		switch model {
		case "freefall":
			cfg = config.GetPreset("freefall", "drop")
		case "twobody":
			cfg = config.DefaultConfig()
		case "threebody":
			cfg = config.GetPreset("threebody", "sun-earth-moon")
		default:
			return nil, fmt.Errorf("unknown model: %s", model)
		}
	}

	if cfg.Model != model {
		return nil, fmt.Errorf("configuration is for model %s, not %s", cfg.Model, model)
	}

	if cmd.Flags().Changed("steps") {
		cfg.Steps = stepsFlag
	}
	if cmd.Flags().Changed("t0") {
		cfg.T0 = t0Flag
	}
	if cmd.Flags().Changed("tn") {
		cfg.Tn = tnFlag
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integratorName
	}
	if cmd.Flags().Changed("min-separation") {
		cfg.MinSeparation = minSeparation
	}
	if cmd.Flags().Changed("height") {
		cfg.FreeFall.Height = height
	}
	if cmd.Flags().Changed("velocity") {
		cfg.FreeFall.Velocity = velocity
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSolver(cfg *config.Config) (*solver.Solver, error) {
	s := solver.New()
	switch cfg.Integrator {
	case "", "rk4":
	case "euler":
		s.Integrator = integrators.NewEuler()
	default:
		return nil, fmt.Errorf("unknown integrator: %s", cfg.Integrator)
	}
	s.Steps = cfg.Steps
	s.MinSeparation = cfg.MinSeparation
	return s, nil
}

// solveConfig runs the configured model and returns the packed trajectory,
// body names, and metric values.
func solveConfig(cfg *config.Config) (*solver.Trajectory, []string, map[string]float64, error) {
	s, err := newSolver(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	switch cfg.Model {
	case "freefall":
		s.AddMetric(metrics.NewEnergyDrift(gravity.NewFreeFall()))
		tr := s.FreeFall(cfg.FreeFall.Height, cfg.FreeFall.Velocity, cfg.T0, cfg.Tn)
		return tr.AsTrajectory(), []string{"Object"}, s.MetricValues(), nil

	case "twobody":
		sys := gravity.NewTwoBody(cfg.Bodies[0].Mass, cfg.Bodies[1].Mass)
		addOrbitalMetrics(s, sys)

		tr := s.TwoBody(
			[2]float64{cfg.Bodies[0].Mass, cfg.Bodies[1].Mass},
			[2]vec.Vector3{bodyPos(cfg, 0), bodyPos(cfg, 1)},
			[2]vec.Vector3{bodyVel(cfg, 0), bodyVel(cfg, 1)},
			cfg.T0, cfg.Tn,
		)
		return tr, bodyNames(cfg), s.MetricValues(), nil

	case "threebody":
		sys := gravity.NewThreeBody(cfg.Bodies[0].Mass, cfg.Bodies[1].Mass, cfg.Bodies[2].Mass)
		addOrbitalMetrics(s, sys)

		tr := s.ThreeBody(
			[3]float64{cfg.Bodies[0].Mass, cfg.Bodies[1].Mass, cfg.Bodies[2].Mass},
			[3]vec.Vector3{bodyPos(cfg, 0), bodyPos(cfg, 1), bodyPos(cfg, 2)},
			[3]vec.Vector3{bodyVel(cfg, 0), bodyVel(cfg, 1), bodyVel(cfg, 2)},
			cfg.T0, cfg.Tn,
		)
		return tr, bodyNames(cfg), s.MetricValues(), nil
	}

	return nil, nil, nil, fmt.Errorf("unknown model: %s", cfg.Model)
}

func addOrbitalMetrics(s *solver.Solver, sys *gravity.NBody) {
	s.AddMetric(metrics.NewMomentumDrift(sys))
	s.AddMetric(metrics.NewEnergyDrift(sys))
	s.AddMetric(metrics.NewMinSeparation(sys))
	s.AddMetric(metrics.NewMaxSeparation(sys))
}

func bodyPos(cfg *config.Config, i int) vec.Vector3 {
	p := cfg.Bodies[i].Position
	return vec.Vector3{X: p[0], Y: p[1], Z: p[2]}
}

func bodyVel(cfg *config.Config, i int) vec.Vector3 {
	v := cfg.Bodies[i].Velocity
	return vec.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func bodyNames(cfg *config.Config) []string {
	names := make([]string, len(cfg.Bodies))
	for i, b := range cfg.Bodies {
		names[i] = b.Name
	}
	return names
}

func runSimulation(cmd *cobra.Command, args []string) error {
	model := args[0]

	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("solving %s (%d steps)...\n", model, cfg.StepsFor())
	start := time.Now()

	tr, names, metricVals, err := solveConfig(cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(model, integratorOf(cfg), names, tr, metricVals)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", tr.Samples())
	if !tr.IsFinite() {
		fmt.Println("warning: trajectory contains non-finite values (singular close pass)")
	}
	fmt.Println("\nmetrics:")
	for name, val := range metricVals {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

func integratorOf(cfg *config.Config) string {
	if cfg.Integrator == "" {
		return "rk4"
	}
	return cfg.Integrator
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tSPAN\tSTEPS\tINTEG\tBODIES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4gs\t%d\t%s\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Tn-run.T0,
			run.Steps,
			run.Integrator,
			len(run.Bodies),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if tr.Samples() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", tr.Samples())

	components := []string{"x", "y"}
	for i, b := range tr.Bodies {
		for c, label := range components {
			graph := asciigraph.Plot(downsample(b.Pos[c], 400),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("%s: %s vs time", meta.Bodies[i], label)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}

	return nil
}

// downsample thins a series for terminal plotting.
func downsample(data []float64, max int) []float64 {
	if len(data) <= max {
		return data
	}
	out := make([]float64, 0, max)
	stride := float64(len(data)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		out = append(out, data[int(float64(i)*stride)])
	}
	return out
}

func orbitRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if tr.Samples() == 0 {
		return fmt.Errorf("no data to plot")
	}

	canvas := viz.NewCanvas(72, 24)
	drawOrbits(canvas, tr)

	fmt.Printf("run: %s (%s)\n\n", meta.ID, meta.Model)
	fmt.Print(canvas.String())
	return nil
}

// drawOrbits projects every body's x-y track onto the canvas.
func drawOrbits(c *viz.Canvas, tr *solver.Trajectory) {
	minX, maxX := tr.Bodies[0].Pos[0][0], tr.Bodies[0].Pos[0][0]
	minY, maxY := tr.Bodies[0].Pos[1][0], tr.Bodies[0].Pos[1][0]
	for _, b := range tr.Bodies {
		for k := range tr.Times {
			minX = min(minX, b.Pos[0][k])
			maxX = max(maxX, b.Pos[0][k])
			minY = min(minY, b.Pos[1][k])
			maxY = max(maxY, b.Pos[1][k])
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scale := min(float64(c.Width*2-4)/spanX, float64(c.Height*4-4)/spanY)

	for _, b := range tr.Bodies {
		for k := range tr.Times {
			px := int((b.Pos[0][k]-minX)*scale) + 2
			py := c.Height*4 - 2 - int((b.Pos[1][k]-minY)*scale)
			c.Set(px, py)
		}
	}
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	if pairA < 0 || pairB < 0 || pairA >= len(tr.Bodies) || pairB >= len(tr.Bodies) || pairA == pairB {
		return fmt.Errorf("invalid body pair (%d, %d) for %d bodies", pairA, pairB, len(tr.Bodies))
	}

	stats := analysis.Orbit(tr, pairA, pairB)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pair: %s - %s\n\n", meta.Bodies[pairA], meta.Bodies[pairB])

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mean separation\t%.6e m\n", stats.MeanSeparation)
	fmt.Fprintf(w, "std separation\t%.6e m\n", stats.StdSeparation)
	fmt.Fprintf(w, "periapsis\t%.6e m\n", stats.Periapsis)
	fmt.Fprintf(w, "apoapsis\t%.6e m\n", stats.Apoapsis)
	fmt.Fprintf(w, "eccentricity\t%.6f\n", stats.Eccentricity)
	if stats.Period > 0 {
		fmt.Fprintf(w, "period\t%.6e s\n", stats.Period)
	} else {
		fmt.Fprintf(w, "period\tn/a (fewer than two close approaches)\n")
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return export.CSV(os.Stdout, meta.Bodies, tr)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, meta.Model, meta.Integrator, meta.Bodies, tr, meta.Metrics)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	tr, names, _, err := solveConfig(cfg)
	if err != nil {
		return err
	}

	return viz.Run(tr, names, frameRate)
}

func benchModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	stepCounts := []int{1000, 10000, 100000}

	fmt.Printf("benchmarking %s\n\n", cfg.Model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tTIME\tSTEPS/SEC")

	for _, n := range stepCounts {
		runCfg := *cfg
		runCfg.Steps = n

		start := time.Now()
		if _, _, _, err := solveConfig(&runCfg); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%v\t%.0f\n", n, elapsed, float64(n)/elapsed.Seconds())
	}

	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	results := make(map[string]*solver.Trajectory, 2)
	for _, name := range []string{"rk4", "euler"} {
		runCfg := *cfg
		runCfg.Integrator = name
		tr, _, _, err := solveConfig(&runCfg)
		if err != nil {
			return err
		}
		results[name] = tr
	}

	rk4 := results["rk4"]
	euler := results["euler"]
	last := rk4.Samples() - 1

	fmt.Printf("comparing integrators on %s (%d steps)\n\n", cfg.Model, cfg.StepsFor())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tFINAL POSITION DIVERGENCE (m)")

	for i := range rk4.Bodies {
		d := vec.Vector3{
			X: rk4.Bodies[i].Pos[0][last] - euler.Bodies[i].Pos[0][last],
			Y: rk4.Bodies[i].Pos[1][last] - euler.Bodies[i].Pos[1][last],
			Z: rk4.Bodies[i].Pos[2][last] - euler.Bodies[i].Pos[2][last],
		}
		fmt.Fprintf(w, "%d\t%.6e\n", i, d.Norm())
	}

	return w.Flush()
}
