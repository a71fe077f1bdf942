// Package plan reads budget scenarios from TOML or YAML files and replays
// them into a budget store.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/splitabill/internal/budget"
)

// Amount is an amount as written in a plan: a number or a string. It is
// kept as text so it goes through the same parsing as typed input.
type Amount string

// UnmarshalTOML implements toml.Unmarshaler.
func (a *Amount) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		*a = Amount(x)
	case int64:
		*a = Amount(strconv.FormatInt(x, 10))
	case float64:
		*a = Amount(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return fmt.Errorf("amount: unsupported value %v (%T)", v, v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("amount: line %d: expected a scalar", n.Line)
	}
	*a = Amount(n.Value)
	return nil
}

// Expense is one planned expense in a plan file.
type Expense struct {
	Name     string `toml:"name" yaml:"name"`
	Category string `toml:"category" yaml:"category"`
	Planned  Amount `toml:"planned" yaml:"planned"`
	Actual   Amount `toml:"actual" yaml:"actual"`
	Due      string `toml:"due" yaml:"due"`
}

// Plan is a scripted budget.
type Plan struct {
	Deposit  Amount    `toml:"deposit" yaml:"deposit"`
	Currency string    `toml:"currency" yaml:"currency"`
	Policy   string    `toml:"policy" yaml:"policy"`
	Expenses []Expense `toml:"expense" yaml:"expenses"`
}

// Load reads a plan, choosing YAML for .yaml/.yml files and TOML otherwise.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading plan: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes plan data. ext selects the format the same way Load does.
func Parse(data []byte, ext string) (Plan, error) {
	var p Plan
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Plan{}, fmt.Errorf("parsing plan: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &p); err != nil {
			return Plan{}, fmt.Errorf("parsing plan: %w", err)
		}
	}
	if p.Policy != "" {
		if _, err := budget.ParsePolicy(p.Policy); err != nil {
			return Plan{}, fmt.Errorf("parsing plan: %w", err)
		}
	}
	return p, nil
}

// Apply replays the plan into s: deposit, expenses, actual spend, then the
// allocation policy if one is named. Entries the store ignores are counted
// in skipped.
func (p Plan) Apply(s *budget.Store) (skipped int) {
	s.SetDeposit(budget.ParseAmount(string(p.Deposit)))
	for _, e := range p.Expenses {
		added, ok := s.AddExpense(budget.ExpenseInput{
			Name:     e.Name,
			Category: e.Category,
			Planned:  string(e.Planned),
			DueDate:  e.Due,
		})
		if !ok {
			skipped++
			continue
		}
		if e.Actual != "" {
			s.RecordActual(added.ID, budget.ParseAmount(string(e.Actual)))
		}
	}
	if p.Policy != "" {
		pol, _ := budget.ParsePolicy(p.Policy)
		s.Allocate(pol)
	}
	return skipped
}
