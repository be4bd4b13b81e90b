package mytest

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Scenario is one golden end-to-end fixture: a source program and
// either its expected captured output, or a flag that it must fail.
type Scenario struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Want    string `yaml:"want"`
	WantErr bool   `yaml:"wantErr"`
}

// LoadScenarios reads a YAML fixture file of the form produced by
// testdata/scenarios.yaml into a slice of Scenario.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}
