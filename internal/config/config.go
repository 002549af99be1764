package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kmehta/orbitlab/internal/solver"
)

const (
	DefaultModel      = "twobody"
	DefaultIntegrator = "rk4"
	DefaultT0         = 0.0
	DefaultTn         = 2.36e6
)

// Config describes one simulation run. It maps directly to the yaml file
// format accepted by --config.
type Config struct {
	Model      string  `yaml:"model"`
	Integrator string  `yaml:"integrator"`
	Steps      int     `yaml:"steps"`
	T0         float64 `yaml:"t0"`
	Tn         float64 `yaml:"tn"`

	// MinSeparation enables the documented distance floor when positive.
	// Zero keeps the permissive singular force law.
	MinSeparation float64 `yaml:"min_separation"`

	FreeFall FreeFallConfig `yaml:"freefall"`
	Bodies   []BodyConfig   `yaml:"bodies"`
}

type FreeFallConfig struct {
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"`
}

type BodyConfig struct {
	Name     string     `yaml:"name"`
	Mass     float64    `yaml:"mass"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      DefaultModel,
		Integrator: DefaultIntegrator,
		T0:         DefaultT0,
		Tn:         DefaultTn,
		Bodies: []BodyConfig{
			{Name: "Earth", Mass: 5.972e24},
			{Name: "Moon", Mass: 7.347e22, Position: [3]float64{3.84e8, 0, 0}, Velocity: [3]float64{0, 1022, 0}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StepsFor resolves the configured step count, falling back to the
// per-model default.
func (c *Config) StepsFor() int {
	if c.Steps > 0 {
		return c.Steps
	}
	if c.Model == "freefall" {
		return solver.DefaultFreeFallSteps
	}
	return solver.DefaultOrbitSteps
}

// Validate checks the body count against the model. The numeric core is
// permissive; this is the CLI boundary's sanity check.
func (c *Config) Validate() error {
	switch c.Model {
	case "freefall":
		return nil
	case "twobody":
		if len(c.Bodies) != 2 {
			return fmt.Errorf("model twobody needs 2 bodies, config has %d", len(c.Bodies))
		}
	case "threebody":
		if len(c.Bodies) != 3 {
			return fmt.Errorf("model threebody needs 3 bodies, config has %d", len(c.Bodies))
		}
	default:
		return fmt.Errorf("unknown model: %s", c.Model)
	}
	return nil
}
