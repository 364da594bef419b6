package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiered-loan/service"
)

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunScenarios_ExampleFile(t *testing.T) {
	assert.NoError(t, runScenarios("scenarios.example.yaml", service.NewReporter("€")))
}

func TestRunScenarios_RejectsHugeTerm(t *testing.T) {
	path := writeScenarios(t, `
scenarios:
  - name: forever
    principal: 1000
    tiers:
      - {rate: 5, years: 1099511627776}
`)

	err := runScenarios(path, service.NewReporter("€"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Contains(t, err.Error(), "forever")
}

func TestRunScenarios_RejectsInvalidPlan(t *testing.T) {
	path := writeScenarios(t, `
scenarios:
  - name: negative rate
    principal: 1000
    tiers:
      - {rate: -1, years: 1}
`)

	err := runScenarios(path, service.NewReporter("€"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
