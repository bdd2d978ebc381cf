package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the simulator CLI.
type Simulator struct {
	// CatalogDir points at the reference-data yaml files.
	CatalogDir string `yaml:"catalog_dir" env:"ARENACALC_CATALOG_DIR"`

	// ScenarioPath is the encounter description to evaluate.
	ScenarioPath string `yaml:"scenario_path" env:"ARENACALC_SCENARIO"`

	LogLevel string `yaml:"log_level" env:"ARENACALC_LOG_LEVEL"`
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		CatalogDir:   "config/catalog",
		ScenarioPath: "config/scenario.yaml",
		LogLevel:     "info",
	}
}

// LoadSimulator loads simulator config from a YAML file, then applies
// environment overrides. If the file doesn't exist, defaults plus
// environment are used as-is.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}
	return cfg, nil
}
