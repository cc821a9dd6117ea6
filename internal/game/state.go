// Package game ties every core system into a single caller-owned aggregate
// and provides the per-tick update and the cross-system transitions.
package game

import (
	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/currency"
	"github.com/talgya/dojo-idle/internal/environment"
	"github.com/talgya/dojo-idle/internal/equipment"
	"github.com/talgya/dojo-idle/internal/managers"
	"github.com/talgya/dojo-idle/internal/speed"
	"github.com/talgya/dojo-idle/internal/variables"
)

// maxEvents bounds the recent-event log.
const maxEvents = 200

// State is one player's complete save data.
type State struct {
	PowerLevel  currency.PowerLevel      `json:"power_level"`
	Pedometer   currency.Pedometer       `json:"pedometer"`
	Gold        currency.Gold            `json:"gold"`
	Variables   variables.Variables      `json:"variables"`
	Mastery     combat.Mastery           `json:"mastery"`
	ActiveTheme combat.Theme             `json:"active_theme"`
	Speed       speed.State              `json:"speed"`
	Managers    managers.State           `json:"managers"`
	Progression *environment.Progression `json:"progression"`
	Equipment   equipment.State          `json:"equipment"`
	Inventory   map[string]int           `json:"inventory"`
	PlayTime    float64                  `json:"play_time_seconds"`
	Events      []Event                  `json:"events"`
}

// Event is a notable occurrence in the player's history.
type Event struct {
	PlayTime    float64 `json:"play_time"`
	Description string  `json:"description"`
	Category    string  `json:"category"` // "reset", "encounter", "pedometer", "tournament", ...
}

// New creates a fresh state positioned at the first authored environment.
// A nil list uses environment.Defaults.
func New(envs []environment.Definition) *State {
	s := &State{
		PowerLevel:  currency.NewPowerLevel(),
		Progression: environment.NewProgression(envs),
		Equipment:   equipment.New(),
		Inventory:   make(map[string]int),
	}
	s.ActiveTheme = s.Progression.CurrentTheme()
	return s
}

// Attach restores the non-serialized parts of a loaded state.
func (s *State) Attach(envs []environment.Definition) {
	if s.Progression == nil {
		s.Progression = environment.NewProgression(envs)
	} else {
		s.Progression.Attach(envs)
	}
	if s.Inventory == nil {
		s.Inventory = make(map[string]int)
	}
	if s.Equipment.MaxGadgets < equipment.StartingGadgetSlots {
		s.Equipment.MaxGadgets = equipment.StartingGadgetSlots
	}
}

// RequiredTheme is the theme the current environment dictates.
func (s *State) RequiredTheme() combat.Theme {
	return s.Progression.CurrentTheme()
}

func (s *State) record(category, desc string) {
	s.Events = append(s.Events, Event{PlayTime: s.PlayTime, Description: desc, Category: category})
	if over := len(s.Events) - maxEvents; over > 0 {
		s.Events = append(s.Events[:0], s.Events[over:]...)
	}
}
