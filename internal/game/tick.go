package game

import (
	"log/slog"
	"math"

	"github.com/talgya/dojo-idle/internal/managers"
	"github.com/talgya/dojo-idle/internal/variables"
)

// Tick advances play time, applies passive manager gains, and, when the
// player is moving, converts effective speed into pedometer steps.
func (s *State) Tick(elapsedSeconds float64, moving bool) {
	s.PlayTime += elapsedSeconds
	s.tickManagers(elapsedSeconds)
	if moving {
		s.tickMovement(elapsedSeconds)
	}
}

// tickManagers trains each automated activity's variable and returns the gains.
func (s *State) tickManagers(elapsedSeconds float64) variables.Variables {
	var gains variables.Variables
	hours := elapsedSeconds / 3600

	for _, t := range managers.AllTypes {
		perHour := s.Managers.PassivePerHour(t)
		if perHour <= 0 {
			continue
		}
		v := variables.ActivityVariable[managers.Activity[t]]
		amount := perHour * hours
		s.Variables.Train(v, amount)
		gains[v] += amount
	}
	return gains
}

// tickMovement adds one step per unit of distance covered.
func (s *State) tickMovement(elapsedSeconds float64) float64 {
	steps := s.Speed.Effective() * elapsedSeconds
	s.Pedometer.AddSteps(steps)
	return steps
}

// PedometerResult reports where a pedometer spend went.
type PedometerResult struct {
	StepsSpent        float64
	SpeedBonusApplied float64
	PowerLevelGranted float64
}

// SpendPedometer spends every step. The bonus goes to speed until the
// pedometer speed cap is hit, then to permanent power level at one point per
// ten percent.
func (s *State) SpendPedometer() PedometerResult {
	spent := s.Pedometer.Spend()
	res := PedometerResult{StepsSpent: spent.StepsSpent}

	if !s.Speed.PedometerCapped() {
		res.SpeedBonusApplied = spent.SpeedBonusPercent
		s.Speed.ApplyPedometerUpgrade(spent.SpeedBonusPercent)
	} else {
		res.PowerLevelGranted = math.Floor(spent.SpeedBonusPercent / 10)
		s.PowerLevel.AddPermanent(res.PowerLevelGranted)
	}

	if res.StepsSpent > 0 {
		s.record("pedometer", "pedometer spent")
	}
	return res
}

// AutoHire lets the VP buy the cheapest affordable task manager.
func (s *State) AutoHire() (managers.Type, bool) {
	t, ok := s.Managers.AutoHire(&s.Gold)
	if ok {
		slog.Debug("manager auto-hired", "type", t, "owned", s.Managers.TaskManagers[t], "gold", s.Gold.Amount)
		s.record("managers", "auto-hired "+t.String())
	}
	return t, ok
}
