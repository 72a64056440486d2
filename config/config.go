// Package config loads the simulation's tunable parameters from YAML,
// merging a user file over embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fluids/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every recognized option, grouped the way the simulation
// packages consume them.
type Config struct {
	Dim     int       `yaml:"dim"`
	H       float64   `yaml:"h"`
	Rho0    float64   `yaml:"rho0"`
	Nu      float64   `yaml:"nu"`
	Eta     float64   `yaml:"eta"`
	Dt      float64   `yaml:"dt"`
	Omega   float64   `yaml:"omega"`
	Gravity []float64 `yaml:"gravity"`

	Solver SolverConfig `yaml:"solver"`
	Scene  SceneConfig  `yaml:"scene"`
}

// SolverConfig selects between IISPH and the WCSPH alternative.
type SolverConfig struct {
	Kind              string  `yaml:"kind"` // "iisph" or "wcsph"
	WCSPHStiffness    float64 `yaml:"wcsph_stiffness"`
	WCSPHGamma        float64 `yaml:"wcsph_gamma"`
	ContainmentPolicy string  `yaml:"containment_policy"` // "clamp" or "reflect"
}

// SceneConfig describes the grid resolution and fluid block used to seed
// the initial particle layout (scene.BuildParams).
type SceneConfig struct {
	Resolution [3]int `yaml:"resolution"`
	FluidMin   [3]int `yaml:"fluid_min"`
	FluidMax   [3]int `yaml:"fluid_max"`
}

// Load loads configuration from a YAML file, merging it over embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Params converts the loaded config into the core.Params the solvers take.
func (c *Config) Params() core.Params {
	gravity := core.NewVec(c.Dim)
	copy(gravity, c.Gravity)
	return core.Params{
		Dim:     c.Dim,
		H:       c.H,
		Rho0:    c.Rho0,
		Nu:      c.Nu,
		Eta:     c.Eta,
		Dt:      c.Dt,
		Omega:   c.Omega,
		Gravity: gravity,
	}
}
