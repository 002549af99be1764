package config

import (
	"sort"

	"github.com/kmehta/orbitlab/internal/catalog"
)

var Presets = map[string]map[string]*Config{
	"freefall": {
		"drop": {
			Model: "freefall", Integrator: "rk4", Tn: 4.5,
			FreeFall: FreeFallConfig{Height: 100.0},
		},
		"throw": {
			Model: "freefall", Integrator: "rk4", Tn: 5.0,
			FreeFall: FreeFallConfig{Height: 2.0, Velocity: 20.0},
		},
	},
	"twobody": {
		"earth-moon": {
			Model: "twobody", Integrator: "rk4", Tn: 2.36e6,
			Bodies: []BodyConfig{
				{Name: "Earth", Mass: catalog.MassEarth},
				{Name: "Moon", Mass: catalog.MassMoon,
					Position: [3]float64{catalog.EarthMoonDistance, 0, 0},
					Velocity: [3]float64{0, catalog.MoonOrbitalSpeed, 0}},
			},
		},
		"sun-earth": {
			Model: "twobody", Integrator: "rk4", Tn: 3.156e7,
			Bodies: []BodyConfig{
				{Name: "Sun", Mass: catalog.MassSun},
				{Name: "Earth", Mass: catalog.MassEarth,
					Position: [3]float64{catalog.AU, 0, 0},
					Velocity: [3]float64{0, catalog.EarthOrbitalSpeed, 0}},
			},
		},
		// Equal masses on a circular mutual orbit, v = sqrt(G*m*r/d^2).
		"binary": {
			Model: "twobody", Integrator: "rk4", Tn: 3.1e6,
			Bodies: []BodyConfig{
				{Name: "Alpha", Mass: 1e24,
					Position: [3]float64{-1e8, 0, 0},
					Velocity: [3]float64{0, -408.5, 0}},
				{Name: "Beta", Mass: 1e24,
					Position: [3]float64{1e8, 0, 0},
					Velocity: [3]float64{0, 408.5, 0}},
			},
		},
	},
	"threebody": {
		"sun-earth-moon": {
			Model: "threebody", Integrator: "rk4", Tn: 2.36e6,
			Bodies: []BodyConfig{
				{Name: "Sun", Mass: catalog.MassSun},
				{Name: "Earth", Mass: catalog.MassEarth,
					Position: [3]float64{catalog.AU, 0, 0},
					Velocity: [3]float64{0, catalog.EarthOrbitalSpeed, 0}},
				{Name: "Moon", Mass: catalog.MassMoon,
					Position: [3]float64{catalog.AU + catalog.EarthMoonDistance, 0, 0},
					Velocity: [3]float64{0, catalog.EarthOrbitalSpeed + catalog.MoonOrbitalSpeed, 0}},
			},
		},
		// Three equal masses on an equilateral triangle in rotating
		// equilibrium, v = sqrt(G*m/(sqrt(3)*r)).
		"triangle": {
			Model: "threebody", Integrator: "rk4", Tn: 2e5,
			Bodies: []BodyConfig{
				{Name: "A", Mass: 1e26,
					Position: [3]float64{0, 1e8, 0},
					Velocity: [3]float64{-6207, 0, 0}},
				{Name: "B", Mass: 1e26,
					Position: [3]float64{-8.66e7, -5e7, 0},
					Velocity: [3]float64{3103.5, -5375.5, 0}},
				{Name: "C", Mass: 1e26,
					Position: [3]float64{8.66e7, -5e7, 0},
					Velocity: [3]float64{3103.5, 5375.5, 0}},
			},
		},
	},
}

// GetPreset returns a copy of the named preset for a model, or nil.
// Callers may adjust the copy without affecting the preset table.
func GetPreset(model, name string) *Config {
	m, ok := Presets[model]
	if !ok {
		return nil
	}
	p, ok := m[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Bodies = append([]BodyConfig(nil), p.Bodies...)
	return &cp
}

// ListPresets returns the preset names for a model in sorted order.
func ListPresets(model string) []string {
	m, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
