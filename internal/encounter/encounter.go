// Package encounter runs a single battle between the player and one opponent.
//
// Phases advance Intro → Active → {Victory, Defeat} → Exiting. The caller
// drives damage; Resolve is the only place that decides the outcome.
package encounter

import (
	"fmt"

	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/entropy"
)

// LootEntry is one row of an opponent's loot table.
type LootEntry struct {
	ItemID   string  `yaml:"item" json:"item_id"`
	DropRate float64 `yaml:"drop_rate" json:"drop_rate"` // 0..1
	MinQty   int     `yaml:"min" json:"min_qty"`
	MaxQty   int     `yaml:"max" json:"max_qty"`
}

// Opponent is authored content; the core only consumes it.
type Opponent struct {
	ID              string      `yaml:"id" json:"id"`
	Name            string      `yaml:"name" json:"name"`
	BasePower       float64     `yaml:"base_power" json:"base_power"`
	BaseHP          float64     `yaml:"base_hp" json:"base_hp"`
	BaseDamage      float64     `yaml:"base_damage" json:"base_damage"`
	AttackSpeed     float64     `yaml:"attack_speed" json:"attack_speed"` // Seconds between attacks
	GoldReward      float64     `yaml:"gold" json:"gold_reward"`
	PLReward        float64     `yaml:"power_level" json:"pl_reward"`
	MasteryXPReward float64     `yaml:"mastery_xp" json:"mastery_xp_reward"`
	Loot            []LootEntry `yaml:"loot" json:"loot"`
	EnvironmentID   string      `yaml:"environment" json:"environment_id"`
	Boss            bool        `yaml:"boss" json:"boss"`
}

// Phase of an encounter.
type Phase uint8

const (
	Intro Phase = iota
	Active
	Victory
	Defeat
	Exiting
)

var phaseNames = [...]string{"intro", "active", "victory", "defeat", "exiting"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Drop is one rolled loot item.
type Drop struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// State is one battle in progress.
type State struct {
	Phase       Phase
	Opponent    Opponent
	PlayerHP    float64
	PlayerMaxHP float64
	OpponentHP  float64
	Theme       combat.Theme

	PlayerDamageDealt   float64
	OpponentDamageDealt float64
	Elapsed             float64 // Seconds spent Active
	Loot                []Drop
}

// Start opens an encounter in the Intro phase with the opponent at full HP.
func Start(opp Opponent, playerHP, playerMaxHP float64, theme combat.Theme) *State {
	return &State{
		Phase:       Intro,
		Opponent:    opp,
		PlayerHP:    playerHP,
		PlayerMaxHP: playerMaxHP,
		OpponentHP:  opp.BaseHP,
		Theme:       theme,
	}
}

// Begin moves Intro to Active.
func (s *State) Begin() {
	if s.Phase == Intro {
		s.Phase = Active
	}
}

// Advance accumulates elapsed seconds while Active.
func (s *State) Advance(dt float64) {
	if s.Phase == Active && dt > 0 {
		s.Elapsed += dt
	}
}

// DamageOpponent applies player damage and returns the opponent's remaining HP.
func (s *State) DamageOpponent(damage float64) float64 {
	if damage <= 0 {
		return s.OpponentHP
	}
	s.OpponentHP = max(0, s.OpponentHP-damage)
	s.PlayerDamageDealt += damage
	return s.OpponentHP
}

// DamagePlayer applies opponent damage and returns the player's remaining HP.
func (s *State) DamagePlayer(damage float64) float64 {
	if damage <= 0 {
		return s.PlayerHP
	}
	s.PlayerHP = max(0, s.PlayerHP-damage)
	s.OpponentDamageDealt += damage
	return s.PlayerHP
}

// Resolve checks for a winner while Active. The opponent's HP is checked
// first, so a double knockout is a victory. Loot is rolled on victory.
func (s *State) Resolve(rng entropy.Source) Phase {
	if s.Phase != Active {
		return s.Phase
	}
	switch {
	case s.OpponentHP <= 0:
		s.Phase = Victory
		s.Loot = RollLoot(s.Opponent.Loot, rng)
	case s.PlayerHP <= 0:
		s.Phase = Defeat
	}
	return s.Phase
}

// Exit ends the encounter.
func (s *State) Exit() {
	s.Phase = Exiting
}

// Rewards from a won encounter.
type Rewards struct {
	Gold       float64
	PowerLevel float64
	MasteryXP  float64
	Loot       []Drop
}

// Rewards is zero unless the phase is Victory.
func (s *State) Rewards() Rewards {
	if s.Phase != Victory {
		return Rewards{}
	}
	return Rewards{
		Gold:       s.Opponent.GoldReward,
		PowerLevel: s.Opponent.PLReward,
		MasteryXP:  s.Opponent.MasteryXPReward,
		Loot:       s.Loot,
	}
}

// RollLoot rolls every entry independently, one draw per entry. A draw at or
// under the drop rate drops the item; a drop rate of zero never drops. A nil rng falls back
// to entropy.OrDefault.
func RollLoot(table []LootEntry, rng entropy.Source) []Drop {
	rng = entropy.OrDefault(rng)

	var drops []Drop
	for _, e := range table {
		if r := rng(); e.DropRate <= 0 || r > e.DropRate {
			continue
		}
		qty := e.MinQty
		if e.MaxQty > e.MinQty {
			qty += entropy.Intn(rng, e.MaxQty-e.MinQty+1)
		}
		drops = append(drops, Drop{ItemID: e.ItemID, Quantity: qty})
	}
	return drops
}
