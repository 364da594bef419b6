package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tiered-loan/domain"
)

// Scenario is a named loan plan read from a scenarios file.
type Scenario struct {
	Name      string            `yaml:"name"`
	Principal float64           `yaml:"principal"`
	Tiers     []domain.RateTier `yaml:"tiers"`
}

func (s Scenario) Plan() domain.LoanPlan {
	tiers := make([]domain.RateTier, len(s.Tiers))
	copy(tiers, s.Tiers)
	return domain.LoanPlan{Principal: s.Principal, Tiers: tiers}
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads the scenarios YAML at filename. Plan values are
// checked later by the engine; here only the file structure is.
func LoadScenarios(filename string) ([]Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	return ParseScenarios(data)
}

func ParseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios defined")
	}
	for i := range file.Scenarios {
		if file.Scenarios[i].Name == "" {
			file.Scenarios[i].Name = fmt.Sprintf("scenario %d", i+1)
		}
	}
	return file.Scenarios, nil
}
