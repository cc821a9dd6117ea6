package game

import (
	"fmt"
	"log/slog"

	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/environment"
)

// MasterResetResult reports a master reset. Advanced is false once the
// authored environments are exhausted; Environment is zero then.
type MasterResetResult struct {
	PowerLevelLost float64
	Advanced       bool
	Environment    environment.Definition
}

// MasterReset zeroes working power level and moves to the next environment,
// switching the active theme to match. Permanent power level, variables,
// gold, speed, mastery, managers and equipment are untouched.
func (s *State) MasterReset() MasterResetResult {
	lost := s.PowerLevel.Reset()
	res := MasterResetResult{PowerLevelLost: lost}

	env, ok := s.Progression.Advance()
	if ok {
		res.Advanced = true
		res.Environment = env
		s.ActiveTheme = env.Theme
		slog.Info("master reset", "lost", lost, "environment", env.ID, "theme", env.Theme)
		s.record("reset", fmt.Sprintf("master reset into %s (%s)", env.Name, env.Theme))
	} else {
		slog.Info("master reset", "lost", lost, "environment", "")
		s.record("reset", "master reset with no further environment")
	}
	return res
}

// TournamentOpponentPower scales basePower by the current environment's tier
// and its tournament win streak.
func (s *State) TournamentOpponentPower(basePower float64) float64 {
	env := s.Progression.Current()
	victories := s.Progression.CurrentProgress().TournamentVictories
	return combat.TournamentOpponentPower(basePower, victories, env.Tier)
}

// RecordTournamentResult counts a win or flags a loss in the current environment.
func (s *State) RecordTournamentResult(victory bool) {
	if victory {
		s.Progression.RecordTournamentVictory()
		s.record("tournament", "tournament victory in "+s.Progression.Current().Name)
		return
	}
	s.Progression.RecordTournamentDefeat()
	s.record("tournament", "tournament defeat in "+s.Progression.Current().Name)
}
