package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRule       = "midpoint"
	DefaultIntegrand  = "pi"
	DefaultMinWorkers = 1
	DefaultMaxWorkers = 8
	DefaultSteps      = 1000000
	DefaultOutput     = "pi_sweep.csv"
)

// Config describes a sweep: which rule to run, the step-count list, the
// worker-count range, and where the CSV report goes. The case matrix is
// always explicit configuration; the driver has no built-in list.
type Config struct {
	Rule       string  `yaml:"rule"`
	Integrand  string  `yaml:"integrand"`
	Steps      []int64 `yaml:"steps"`
	MinWorkers int     `yaml:"min_workers"`
	MaxWorkers int     `yaml:"max_workers"`
	Output     string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Rule:       DefaultRule,
		Integrand:  DefaultIntegrand,
		Steps:      []int64{DefaultSteps},
		MinWorkers: DefaultMinWorkers,
		MaxWorkers: DefaultMaxWorkers,
		Output:     DefaultOutput,
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

// Validate rejects matrices the estimator would refuse case by case.
func (c *Config) Validate() error {
	if c.MinWorkers < 1 {
		return fmt.Errorf("min_workers must be at least 1, got %d", c.MinWorkers)
	}
	if c.MaxWorkers < c.MinWorkers {
		return fmt.Errorf("max_workers (%d) below min_workers (%d)", c.MaxWorkers, c.MinWorkers)
	}
	if len(c.Steps) == 0 {
		return fmt.Errorf("steps list is empty")
	}
	for _, n := range c.Steps {
		if n < int64(c.MaxWorkers) {
			return fmt.Errorf("step count %d smaller than max_workers %d", n, c.MaxWorkers)
		}
	}
	return nil
}
