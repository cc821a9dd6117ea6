// Package combat provides combat themes, per-theme mastery, the damage
// formula, and tournament difficulty scaling.
// Four themes cycle: Unarmed → Armed → Ranged → Energy.
package combat

import (
	"fmt"

	"github.com/talgya/dojo-idle/internal/variables"
)

// Theme is a combat style. Only one is active at a time.
type Theme uint8

const (
	Unarmed Theme = iota
	Armed
	Ranged
	Energy
)

// NumThemes is the length of the theme cycle.
const NumThemes = 4

// Order is the fixed cycling order.
var Order = [NumThemes]Theme{Unarmed, Armed, Ranged, Energy}

var themeNames = [NumThemes]string{"unarmed", "armed", "ranged", "energy"}

func (t Theme) String() string {
	if int(t) < NumThemes {
		return themeNames[t]
	}
	return "unknown"
}

// MarshalText encodes a theme by name.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a theme name.
func (t *Theme) UnmarshalText(b []byte) error {
	theme, ok := ParseTheme(string(b))
	if !ok {
		return fmt.Errorf("unknown combat theme %q", string(b))
	}
	*t = theme
	return nil
}

// ParseTheme looks a theme up by name.
func ParseTheme(name string) (Theme, bool) {
	for i, n := range themeNames {
		if n == name {
			return Theme(i), true
		}
	}
	return Unarmed, false
}

// Index returns the theme's position in Order.
func (t Theme) Index() int {
	return int(t) % NumThemes
}

// Next returns the theme after t in the cycle (used after a tournament defeat).
func Next(t Theme) Theme {
	return Order[(t.Index()+1)%NumThemes]
}

// bonusKey selects the variable-effect column each theme scales with.
var bonusKey = [NumThemes]variables.BonusKey{
	Unarmed: variables.UnarmedDamage,
	Armed:   variables.ArmedDamage,
	Ranged:  variables.RangedBonus,
	Energy:  variables.EnergyBonus,
}

// BonusKey returns the variable-effect column for t.
func (t Theme) BonusKey() variables.BonusKey {
	return bonusKey[t.Index()]
}

// ScalingWeight is one primary scaling variable of a theme.
type ScalingWeight struct {
	Variable variables.Kind
	Weight   float64
}

// Definition describes a theme for presentation and balancing.
type Definition struct {
	Theme             Theme
	PrimaryScaling    []ScalingWeight
	BaseAttackSpeed   float64 // Seconds between attacks
	UnlockRequirement string
}

// Definitions indexed by Theme.
var Definitions = [NumThemes]Definition{
	Unarmed: {
		Theme:             Unarmed,
		PrimaryScaling:    []ScalingWeight{{variables.Strength, 0.7}, {variables.Endurance, 0.3}},
		BaseAttackSpeed:   0.5,
		UnlockRequirement: "Default (starting theme)",
	},
	Armed: {
		Theme:             Armed,
		PrimaryScaling:    []ScalingWeight{{variables.Strength, 0.5}, {variables.Dexterity, 0.5}},
		BaseAttackSpeed:   0.8,
		UnlockRequirement: "Unarmed Mastery Level 10",
	},
	Ranged: {
		Theme:             Ranged,
		PrimaryScaling:    []ScalingWeight{{variables.Dexterity, 0.6}, {variables.Focus, 0.4}},
		BaseAttackSpeed:   1.2,
		UnlockRequirement: "Armed Mastery Level 10",
	},
	Energy: {
		Theme:             Energy,
		PrimaryScaling:    []ScalingWeight{{variables.Focus, 0.6}, {variables.Endurance, 0.4}},
		BaseAttackSpeed:   1.0,
		UnlockRequirement: "Ranged Mastery Level 10",
	},
}
