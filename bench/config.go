package main

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// scenario is the optional YAML override for stage parameters. Absent
// fields keep the built-in defaults.
type scenario struct {
	Scales        []int `yaml:"scales"`
	Capacities    []int `yaml:"capacities"`
	Concurrencies []int `yaml:"concurrencies"`
	Clusters      int   `yaml:"clusters"`
}

func loadScenario(path string) (*scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	var s scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, errors.Wrap(err, "parse scenario")
	}
	return &s, nil
}
