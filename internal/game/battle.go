package game

import (
	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/dungeon"
	"github.com/talgya/dojo-idle/internal/encounter"
	"github.com/talgya/dojo-idle/internal/entropy"
	"github.com/talgya/dojo-idle/internal/variables"
)

// Damage applies the player's power level, active theme, variables and
// mastery to baseDamage.
func (s *State) Damage(baseDamage float64) float64 {
	return combat.Damage(combat.DamageParams{
		BaseDamage: baseDamage,
		PowerLevel: s.PowerLevel.Effective(),
		Theme:      s.ActiveTheme,
		Variables:  s.Variables,
		Mastery:    s.Mastery,
	})
}

// MaxHP is the player's encounter HP.
func (s *State) MaxHP() float64 {
	return variables.MaxHP(s.Variables.Get(variables.Endurance))
}

// StartEncounter opens a battle at full player HP with the active theme.
func (s *State) StartEncounter(opp encounter.Opponent) *encounter.State {
	hp := s.MaxHP()
	return encounter.Start(opp, hp, hp, s.ActiveTheme)
}

// ApplyEncounterRewards credits a finished battle. Non-victories yield zero
// rewards and change nothing. Returns mastery levels gained.
func (s *State) ApplyEncounterRewards(enc *encounter.State) int {
	if enc.Phase != encounter.Victory {
		return 0
	}
	r := enc.Rewards()

	s.Gold.Earn(r.Gold)
	s.PowerLevel.Earn(r.PowerLevel)
	for _, d := range r.Loot {
		s.Inventory[d.ItemID] += d.Quantity
	}
	gained := s.Mastery.AwardXP(enc.Theme, r.MasteryXP)
	s.record("encounter", "defeated "+enc.Opponent.Name)
	return gained
}

// DungeonConfig derives generation parameters from equipment. The mining
// tool's tier gates the catalogue.
func (s *State) DungeonConfig(rng entropy.Source) dungeon.Config {
	cfg := dungeon.DefaultConfig()
	cfg.MaxToolTier = int(s.Equipment.ToolTier(variables.Mining))
	cfg.Rng = rng
	return cfg
}

// GadgetSpeedStat is the gadget effect stat that feeds movement speed.
const GadgetSpeedStat = "speed"

// RefreshGadgetSpeed copies the flat gadget speed bonus into the temporary
// speed component. Call after changing gadgets.
func (s *State) RefreshGadgetSpeed() {
	s.Speed.TempBonusPercent = s.Equipment.Aggregate()[GadgetSpeedStat].Flat
}

// PlayerBaseDamage is the unmodified damage of one player attack.
const PlayerBaseDamage = 10.0

// AutoBattle fights opp to a finish in steps of dt seconds, each side
// attacking on its own cadence. A battle still running after limit seconds
// is lost. Rewards are not applied.
func (s *State) AutoBattle(opp encounter.Opponent, rng entropy.Source, dt, limit float64) *encounter.State {
	if dt <= 0 {
		dt = 0.1
	}
	enc := s.StartEncounter(opp)
	enc.Begin()

	playerEvery := combat.Definitions[s.ActiveTheme.Index()].BaseAttackSpeed
	oppEvery := opp.AttackSpeed
	if oppEvery <= 0 {
		oppEvery = 1
	}

	var playerClock, oppClock float64
	for enc.Phase == encounter.Active && enc.Elapsed < limit {
		enc.Advance(dt)
		playerClock += dt
		oppClock += dt
		for playerClock >= playerEvery {
			playerClock -= playerEvery
			enc.DamageOpponent(s.Damage(PlayerBaseDamage))
		}
		for oppClock >= oppEvery {
			oppClock -= oppEvery
			enc.DamagePlayer(opp.BaseDamage)
		}
		enc.Resolve(rng)
	}

	if enc.Phase == encounter.Active {
		enc.DamagePlayer(enc.PlayerHP)
		enc.Resolve(rng)
	}
	return enc
}

// TournamentOpponent scales a base opponent to the current tournament.
func (s *State) TournamentOpponent(base encounter.Opponent) encounter.Opponent {
	scale := s.TournamentOpponentPower(1)
	opp := base
	opp.BasePower *= scale
	opp.BaseHP *= scale
	opp.BaseDamage *= scale
	return opp
}
