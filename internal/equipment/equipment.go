// Package equipment manages tool slots (one per activity) and gadget slots.
package equipment

import (
	"fmt"

	"github.com/talgya/dojo-idle/internal/variables"
)

// ToolTier gates dungeon content; higher tiers open more of the catalogue.
type ToolTier uint8

const (
	TierNone ToolTier = iota
	TierBasic
	TierIron
	TierSteel
	TierMythril
	TierLegendary
)

var tierNames = [...]string{"none", "basic", "iron", "steel", "mythril", "legendary"}

func (t ToolTier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("tier(%d)", uint8(t))
}

// Tool is authored content for one activity slot.
type Tool struct {
	ID          string             `yaml:"id" json:"id"`
	Name        string             `yaml:"name" json:"name"`
	Activity    variables.Activity `yaml:"activity" json:"activity"`
	Tier        ToolTier           `yaml:"tier" json:"tier"`
	Efficiency  float64            `yaml:"efficiency" json:"efficiency"` // Training-rate multiplier
	Description string             `yaml:"description" json:"description"`
}

// SlotType is a gadget category.
type SlotType string

const (
	Offensive SlotType = "offensive"
	Defensive SlotType = "defensive"
	Utility   SlotType = "utility"
)

// Effect is one stat modifier.
type Effect struct {
	Stat    string  `yaml:"stat" json:"stat"`
	Flat    float64 `yaml:"flat" json:"flat"`
	Percent float64 `yaml:"percent" json:"percent"` // Multiplicative, 1.0 = no change
}

// Gadget is a passive equippable.
type Gadget struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Slot        SlotType `yaml:"slot" json:"slot"`
	Effects     []Effect `yaml:"effects" json:"effects"`
	Description string   `yaml:"description" json:"description"`
}

// StartingGadgetSlots is the slot count of a new character.
const StartingGadgetSlots = 1

// State is everything equipped.
type State struct {
	Tools      [variables.NumActivities]*Tool `json:"tools"`
	MaxGadgets int                            `json:"max_gadgets"`
	Gadgets    []Gadget                       `json:"gadgets"`
}

// New returns empty equipment with the starting gadget slots.
func New() State {
	return State{MaxGadgets: StartingGadgetSlots}
}

// EquipTool places tool in its activity slot and returns the previous tool.
func (s *State) EquipTool(tool Tool) *Tool {
	prev := s.Tools[tool.Activity]
	s.Tools[tool.Activity] = &tool
	return prev
}

// UnequipTool empties an activity slot and returns what was there.
func (s *State) UnequipTool(a variables.Activity) *Tool {
	prev := s.Tools[a]
	s.Tools[a] = nil
	return prev
}

// Tool returns the equipped tool for a, or nil.
func (s *State) Tool(a variables.Activity) *Tool {
	return s.Tools[a]
}

// ToolTier is the equipped tier for a, TierNone when empty.
func (s *State) ToolTier(a variables.Activity) ToolTier {
	if t := s.Tools[a]; t != nil {
		return t.Tier
	}
	return TierNone
}

// ToolEfficiency is the equipped tool's multiplier for a, 1.0 when empty.
func (s *State) ToolEfficiency(a variables.Activity) float64 {
	if t := s.Tools[a]; t != nil {
		return t.Efficiency
	}
	return 1.0
}

// EquipGadget fails when every slot is taken.
func (s *State) EquipGadget(g Gadget) bool {
	if len(s.Gadgets) >= s.MaxGadgets {
		return false
	}
	s.Gadgets = append(s.Gadgets, g)
	return true
}

// UnequipGadget removes the gadget at index, or returns nil when out of range.
func (s *State) UnequipGadget(index int) *Gadget {
	if index < 0 || index >= len(s.Gadgets) {
		return nil
	}
	g := s.Gadgets[index]
	s.Gadgets = append(s.Gadgets[:index], s.Gadgets[index+1:]...)
	return &g
}

// ExpandGadgetSlots adds slots. Non-positive input is ignored.
func (s *State) ExpandGadgetSlots(n int) {
	if n > 0 {
		s.MaxGadgets += n
	}
}

// Bonus is the combined effect on one stat.
type Bonus struct {
	Flat    float64
	Percent float64
}

// Aggregate sums flat bonuses and multiplies percent bonuses per stat.
func (s *State) Aggregate() map[string]Bonus {
	totals := make(map[string]Bonus)
	for _, g := range s.Gadgets {
		for _, e := range g.Effects {
			b, ok := totals[e.Stat]
			if !ok {
				b = Bonus{Percent: 1.0}
			}
			b.Flat += e.Flat
			b.Percent *= e.Percent
			totals[e.Stat] = b
		}
	}
	return totals
}
