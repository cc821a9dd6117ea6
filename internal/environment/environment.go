// Package environment tracks progression through the authored list of
// environments. Each environment has a master, a combat theme, a boss, and
// an endless tournament; a tournament defeat sends the player onward.
package environment

import (
	"fmt"

	"github.com/talgya/dojo-idle/internal/combat"
)

// Definition is one authored environment.
type Definition struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Tier        int          `yaml:"tier" json:"tier"`
	MasterName  string       `yaml:"master" json:"master"`
	Theme       combat.Theme `yaml:"theme" json:"theme"`
	Description string       `yaml:"description" json:"description"`
}

// Defaults is the built-in environment list. The theme follows the cycle.
var Defaults = []Definition{
	{ID: "forest_dojo", Name: "Forest Dojo", Tier: 1, MasterName: "Master Chen", Theme: combat.Unarmed,
		Description: "A peaceful forest clearing where training begins."},
	{ID: "iron_fortress", Name: "Iron Fortress", Tier: 2, MasterName: "Sir Aldric", Theme: combat.Armed,
		Description: "A massive fortress of iron and stone. Weapons line every wall."},
	{ID: "wind_valley", Name: "Wind Valley", Tier: 3, MasterName: "Hawk Eye", Theme: combat.Ranged,
		Description: "Open valleys swept by endless wind. Precision is everything here."},
	{ID: "crystal_spire", Name: "Crystal Spire", Tier: 4, MasterName: "Archmage Vera", Theme: combat.Energy,
		Description: "A towering spire of living crystal that hums with arcane power."},
	{ID: "desert_temple", Name: "Desert Temple", Tier: 5, MasterName: "Grandmaster Kai", Theme: combat.Unarmed,
		Description: "An ancient temple hidden in shifting sands. The cycle begins anew."},
}

// Phase is the stage of play inside one environment.
type Phase uint8

const (
	Training Phase = iota
	Farming
	Boss
	Tournament
)

var phaseNames = [...]string{"training", "farming", "boss", "tournament"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// MarshalText encodes a phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(b []byte) error {
	for i, n := range phaseNames {
		if n == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown environment phase %q", string(b))
}

// Progress is the per-environment record.
type Progress struct {
	EnvironmentID       string `json:"environment_id"`
	Phase               Phase  `json:"phase"`
	BossDefeated        bool   `json:"boss_defeated"`
	TournamentVictories int    `json:"tournament_victories"`
	TournamentDefeated  bool   `json:"tournament_defeated"`
}

// Progression is the player's position in the authored list.
// Definitions are not serialized; callers reattach them with Attach after loading.
type Progression struct {
	defs []Definition

	CurrentIndex        int                  `json:"current_index"`
	Unlocked            []string             `json:"unlocked"`
	Progress            map[string]*Progress `json:"progress"`
	ThemeCyclesComplete int                  `json:"theme_cycles_completed"`
}

// NewProgression starts at the first definition. An empty list falls back to Defaults.
func NewProgression(defs []Definition) *Progression {
	p := &Progression{Progress: make(map[string]*Progress)}
	p.Attach(defs)
	first := p.defs[0]
	p.Unlocked = []string{first.ID}
	p.Progress[first.ID] = &Progress{EnvironmentID: first.ID, Phase: Training}
	return p
}

// Attach sets the authored list, clamping the current index into range.
func (p *Progression) Attach(defs []Definition) {
	if len(defs) == 0 {
		defs = Defaults
	}
	p.defs = defs
	if p.CurrentIndex >= len(defs) {
		p.CurrentIndex = len(defs) - 1
	}
	if p.CurrentIndex < 0 {
		p.CurrentIndex = 0
	}
	if p.Progress == nil {
		p.Progress = make(map[string]*Progress)
	}
}

// Definitions returns the authored list.
func (p *Progression) Definitions() []Definition {
	return p.defs
}

// Current returns the active environment.
func (p *Progression) Current() Definition {
	return p.defs[p.CurrentIndex]
}

// CurrentTheme returns the active environment's combat theme.
func (p *Progression) CurrentTheme() combat.Theme {
	return p.Current().Theme
}

// CurrentProgress returns the active environment's record, creating it if absent.
func (p *Progression) CurrentProgress() *Progress {
	return p.progressFor(p.Current().ID)
}

func (p *Progression) progressFor(id string) *Progress {
	rec, ok := p.Progress[id]
	if !ok {
		rec = &Progress{EnvironmentID: id, Phase: Training}
		p.Progress[id] = rec
	}
	return rec
}

// Advance moves to the next environment. Returns false once the list is
// exhausted; the index never wraps.
func (p *Progression) Advance() (Definition, bool) {
	next := p.CurrentIndex + 1
	if next >= len(p.defs) {
		return Definition{}, false
	}

	env := p.defs[next]
	p.CurrentIndex = next

	if !p.IsUnlocked(env.ID) {
		p.Unlocked = append(p.Unlocked, env.ID)
	}
	p.progressFor(env.ID)

	if env.Theme.Index() == 0 && next > 0 {
		p.ThemeCyclesComplete++
	}
	return env, true
}

// IsUnlocked reports whether id has been reached.
func (p *Progression) IsUnlocked(id string) bool {
	for _, u := range p.Unlocked {
		if u == id {
			return true
		}
	}
	return false
}

// HasCompletedThemeCycle reports whether any full theme cycle is done.
func (p *Progression) HasCompletedThemeCycle() bool {
	return p.ThemeCyclesComplete > 0
}

// SetPhase moves the active environment to phase.
func (p *Progression) SetPhase(phase Phase) {
	p.CurrentProgress().Phase = phase
}

// RecordBossDefeated marks the boss beaten and opens the tournament.
func (p *Progression) RecordBossDefeated() {
	rec := p.CurrentProgress()
	rec.BossDefeated = true
	rec.Phase = Tournament
}

// RecordTournamentVictory counts a win in the active environment.
func (p *Progression) RecordTournamentVictory() {
	p.CurrentProgress().TournamentVictories++
}

// RecordTournamentDefeat flags a loss in the active environment. One-way.
func (p *Progression) RecordTournamentDefeat() {
	p.CurrentProgress().TournamentDefeated = true
}
