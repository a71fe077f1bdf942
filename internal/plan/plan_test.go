package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/model"
)

const tomlPlan = `
deposit = 1000
currency = "INR"
policy = "priority"

[[expense]]
name = "Dining out"
category = "Dining"
planned = "500"
actual = 120.5

[[expense]]
name = "Rent"
category = "Housing"
planned = 600
due = "2025-02-01"

[[expense]]
name = ""
planned = "10"
`

const yamlPlan = `
deposit: "300"
policy: proportional
expenses:
  - name: A
    planned: 100
  - name: B
    planned: "300"
`

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlPlan), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Amount("1000"), p.Deposit)
	assert.Equal(t, "INR", p.Currency)
	require.Len(t, p.Expenses, 3)
	assert.Equal(t, Amount("120.5"), p.Expenses[0].Actual)

	s := budget.NewStore()
	assert.Equal(t, 1, p.Apply(s))

	rec := s.Record()
	require.Len(t, rec.Expenses, 2)
	assert.Equal(t, "Dining out", rec.Expenses[0].Name)
	assert.Equal(t, model.PriorityLow, rec.Expenses[0].Priority)
	assert.Equal(t, 400.0, rec.Expenses[0].AllocatedAmount)
	assert.Equal(t, 120.5, rec.Expenses[0].ActualAmount)
	assert.Equal(t, 600.0, rec.Expenses[1].AllocatedAmount)
	assert.Equal(t, "2025-02-01", rec.Expenses[1].DueDate)
	assert.Zero(t, rec.RemainingAmount)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlPlan), 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	s := budget.NewStore()
	assert.Zero(t, p.Apply(s))
	rec := s.Record()
	require.Len(t, rec.Expenses, 2)
	assert.InDelta(t, 75.0, rec.Expenses[0].AllocatedAmount, 1e-9)
	assert.InDelta(t, 225.0, rec.Expenses[1].AllocatedAmount, 1e-9)
}

func TestParseRejectsUnknownPolicy(t *testing.T) {
	_, err := Parse([]byte(`policy = "random"`), ".toml")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
