// Package config holds web-host settings, loadable from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML can carry values like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config controls the web host. The engine itself takes no
// configuration; everything here is host policy.
type Config struct {
	Addr         string   `yaml:"addr"`
	LogLevel     string   `yaml:"logLevel"`
	Solver       string   `yaml:"solver"`       // dlx | backtrack
	SolveTimeout Duration `yaml:"solveTimeout"` // per-request search budget, 0 = none
}

func Default() Config {
	return Config{
		Addr:         ":8080",
		LogLevel:     "info",
		Solver:       "dlx",
		SolveTimeout: Duration(10 * time.Second),
	}
}

// Load reads a YAML file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
