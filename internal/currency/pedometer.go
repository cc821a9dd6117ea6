package currency

import "math"

// Milestone gates a reward tier by accumulated steps.
type Milestone struct {
	Steps float64
	Label string
}

// Milestones in ascending order.
var Milestones = []Milestone{
	{Steps: 1_000, Label: "Minor speed upgrade"},
	{Steps: 10_000, Label: "Medium speed upgrade"},
	{Steps: 100_000, Label: "Major speed upgrade"},
	{Steps: 1_000_000, Label: "Speed tile unlock"},
	{Steps: 10_000_000, Label: "Achievement-based Power Level bonuses"},
}

// CurrentMilestone returns the highest milestone reached by steps.
func CurrentMilestone(steps float64) (Milestone, bool) {
	var best Milestone
	found := false
	for _, m := range Milestones {
		if steps >= m.Steps {
			best = m
			found = true
		}
	}
	return best, found
}

// Pedometer counts steps. Count resets on spend; LifetimeSteps never decreases.
type Pedometer struct {
	Count         float64 `json:"count"`
	LifetimeSteps float64 `json:"lifetime_steps"`
	TimesSpent    int     `json:"times_spent"`
}

// AddSteps records movement.
func (p *Pedometer) AddSteps(steps float64) {
	if steps > 0 {
		p.Count += steps
		p.LifetimeSteps += steps
	}
}

// SpendResult describes a full pedometer spend.
type SpendResult struct {
	StepsSpent        float64 `json:"steps_spent"`
	SpeedBonusPercent float64 `json:"speed_bonus_percent"`
}

// SpeedBonus is the percentage granted for spending steps: log10(steps) × 10.
func SpeedBonus(steps float64) float64 {
	if steps <= 0 {
		return 0
	}
	return math.Log10(steps) * 10
}

// Spend spends every accumulated step. It always succeeds, even at zero,
// and always counts as a spend event.
func (p *Pedometer) Spend() SpendResult {
	spent := p.Count
	p.Count = 0
	p.TimesSpent++
	return SpendResult{
		StepsSpent:        spent,
		SpeedBonusPercent: SpeedBonus(spent),
	}
}
