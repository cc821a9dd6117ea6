// Package content loads authored game data: environments, opponents, tools
// and gadgets. The simulation core consumes these as plain values.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/encounter"
	"github.com/talgya/dojo-idle/internal/environment"
	"github.com/talgya/dojo-idle/internal/equipment"
)

//go:embed default.yaml
var defaultYAML []byte

// Pack is one set of authored content.
type Pack struct {
	Environments []environment.Definition `yaml:"environments"`
	Opponents    []encounter.Opponent     `yaml:"opponents"`
	Tools        []equipment.Tool         `yaml:"tools"`
	Gadgets      []equipment.Gadget       `yaml:"gadgets"`
}

// Default returns the built-in content.
func Default() (*Pack, error) {
	return Parse(defaultYAML)
}

// Load reads a content pack from a YAML file.
func Load(path string) (*Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	p, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// LoadOrDefault loads path, or the built-in content when path is empty.
func LoadOrDefault(path string) (*Pack, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates YAML content.
func Parse(b []byte) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate reports every problem in the pack at once.
func (p *Pack) Validate() error {
	var errs []error

	if len(p.Environments) == 0 {
		errs = append(errs, errors.New("no environments"))
	}
	envIDs := make(map[string]bool, len(p.Environments))
	for i, env := range p.Environments {
		switch {
		case env.ID == "":
			errs = append(errs, fmt.Errorf("environment %d: missing id", i))
		case envIDs[env.ID]:
			errs = append(errs, fmt.Errorf("environment %s: duplicate id", env.ID))
		}
		envIDs[env.ID] = true
		if env.Tier < 1 {
			errs = append(errs, fmt.Errorf("environment %s: tier must be at least 1", env.ID))
		}
		if want := combat.Order[i%combat.NumThemes]; env.Theme != want {
			errs = append(errs, fmt.Errorf("environment %s: theme %s breaks the cycle, want %s", env.ID, env.Theme, want))
		}
	}

	oppIDs := make(map[string]bool, len(p.Opponents))
	for _, opp := range p.Opponents {
		if opp.ID == "" || oppIDs[opp.ID] {
			errs = append(errs, fmt.Errorf("opponent %q: missing or duplicate id", opp.ID))
		}
		oppIDs[opp.ID] = true
		if !envIDs[opp.EnvironmentID] {
			errs = append(errs, fmt.Errorf("opponent %s: unknown environment %q", opp.ID, opp.EnvironmentID))
		}
		if opp.BaseHP <= 0 {
			errs = append(errs, fmt.Errorf("opponent %s: base_hp must be positive", opp.ID))
		}
		for _, l := range opp.Loot {
			if l.DropRate < 0 || l.DropRate > 1 {
				errs = append(errs, fmt.Errorf("opponent %s: loot %s drop_rate %v outside [0,1]", opp.ID, l.ItemID, l.DropRate))
			}
			if l.MinQty < 0 || l.MaxQty < l.MinQty {
				errs = append(errs, fmt.Errorf("opponent %s: loot %s quantity range [%d,%d]", opp.ID, l.ItemID, l.MinQty, l.MaxQty))
			}
		}
	}

	for _, tool := range p.Tools {
		if tool.Tier > equipment.TierLegendary {
			errs = append(errs, fmt.Errorf("tool %s: tier %d out of range", tool.ID, tool.Tier))
		}
		if tool.Efficiency <= 0 {
			errs = append(errs, fmt.Errorf("tool %s: efficiency must be positive", tool.ID))
		}
	}

	for _, g := range p.Gadgets {
		switch g.Slot {
		case equipment.Offensive, equipment.Defensive, equipment.Utility:
		default:
			errs = append(errs, fmt.Errorf("gadget %s: unknown slot %q", g.ID, g.Slot))
		}
	}

	return errors.Join(errs...)
}

// Opponent looks an opponent up by id.
func (p *Pack) Opponent(id string) (encounter.Opponent, bool) {
	for _, o := range p.Opponents {
		if o.ID == id {
			return o, true
		}
	}
	return encounter.Opponent{}, false
}

// OpponentsFor returns the opponents of one environment in authored order.
func (p *Pack) OpponentsFor(envID string) []encounter.Opponent {
	var out []encounter.Opponent
	for _, o := range p.Opponents {
		if o.EnvironmentID == envID {
			out = append(out, o)
		}
	}
	return out
}

// Tool looks a tool up by id.
func (p *Pack) Tool(id string) (equipment.Tool, bool) {
	for _, t := range p.Tools {
		if t.ID == id {
			return t, true
		}
	}
	return equipment.Tool{}, false
}

// Gadget looks a gadget up by id.
func (p *Pack) Gadget(id string) (equipment.Gadget, bool) {
	for _, g := range p.Gadgets {
		if g.ID == id {
			return g, true
		}
	}
	return equipment.Gadget{}, false
}
