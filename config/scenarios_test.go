package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosYAML = `
scenarios:
  - name: fixed then floating
    principal: 500000
    tiers:
      - {rate: 8, years: 5}
      - {rate: 9, years: 15, lump_sum: 20000, cashback: 1000}
  - principal: 1000
    tiers:
      - rate: 0
        years: 1
`

func TestParseScenarios(t *testing.T) {
	scenarios, err := ParseScenarios([]byte(scenariosYAML))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	first := scenarios[0]
	assert.Equal(t, "fixed then floating", first.Name)
	plan := first.Plan()
	assert.Equal(t, 500000.0, plan.Principal)
	require.Len(t, plan.Tiers, 2)
	assert.Equal(t, 8.0, plan.Tiers[0].Rate)
	assert.Zero(t, plan.Tiers[0].LumpSum)
	assert.Zero(t, plan.Tiers[0].Cashback)
	assert.Equal(t, 20000.0, plan.Tiers[1].LumpSum)
	assert.Equal(t, 1000.0, plan.Tiers[1].Cashback)
	assert.Equal(t, 20, plan.TotalYears())

	assert.Equal(t, "scenario 2", scenarios[1].Name)
}

func TestParseScenarios_Errors(t *testing.T) {
	_, err := ParseScenarios([]byte("scenarios: []"))
	assert.Error(t, err)

	_, err = ParseScenarios([]byte("scenarios: [oops"))
	assert.Error(t, err)
}

func TestLoadScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenariosYAML), 0o600))

	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	assert.Len(t, scenarios, 2)

	_, err = LoadScenarios(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadScenarios_ExampleFile(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("..", "scenarios.example.yaml"))
	require.NoError(t, err)
	assert.Len(t, scenarios, 3)
}
