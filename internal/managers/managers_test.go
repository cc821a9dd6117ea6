package managers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/dojo-idle/internal/currency"
	"github.com/talgya/dojo-idle/internal/variables"
)

func TestCosts(t *testing.T) {
	for n, want := range []float64{1000, 2000, 4000, 8000} {
		assert.Equal(t, want, TaskManagerCost(n))
	}
	assert.Equal(t, 7000.0, TotalInvestment(3))
	assert.Equal(t, 0.0, TotalInvestment(0))
	assert.Equal(t, TaskManagerCost(0)+TaskManagerCost(1)+TaskManagerCost(2)+TaskManagerCost(3), TotalInvestment(4))
}

func TestStackEfficiency(t *testing.T) {
	assert.Equal(t, 0.0, StackEfficiency(0))
	assert.Equal(t, 0.5, StackEfficiency(1))
	assert.Equal(t, 0.75, StackEfficiency(2))

	prev := StackEfficiency(0)
	for n := 1; n < 40; n++ {
		e := StackEfficiency(n)
		assert.Greater(t, e, prev)
		assert.LessOrEqual(t, e, 1.0)
		prev = e
	}
}

func TestEfficiency(t *testing.T) {
	var s State
	assert.Equal(t, 0.0, s.Efficiency(MiningForeman))

	s.TaskManagers[MiningForeman] = 1
	assert.Equal(t, 0.5, s.Efficiency(MiningForeman))

	s.PhysicalDirector = true
	assert.Equal(t, 0.625, s.Efficiency(MiningForeman))
	assert.Equal(t, 0.0, s.Efficiency(CourseInstructor))

	s.VP = true
	assert.InDelta(t, 0.9375, s.Efficiency(MiningForeman), 1e-12)
	assert.InDelta(t, 9.375, s.PassivePerHour(MiningForeman), 1e-12)

	t.Run("capped", func(t *testing.T) {
		big := State{PhysicalDirector: true, VP: true, PrestigeLevel: 1000}
		big.TaskManagers[RunningCoach] = 1_000_000
		assert.Equal(t, 1.0, big.Efficiency(RunningCoach))
		assert.Equal(t, CasualRatePerHour, big.PassivePerHour(RunningCoach))
	})

	t.Run("never negative", func(t *testing.T) {
		s := State{PrestigeLevel: -20}
		s.TaskManagers[MiningForeman] = 3
		assert.Equal(t, 0.0, s.Efficiency(MiningForeman))
		assert.Equal(t, 0.0, s.PassivePerHour(MiningForeman))
	})
}

func TestUnlockGates(t *testing.T) {
	var s State
	assert.False(t, s.CanUnlockDepartment(Physical))

	s.TaskManagers[MiningForeman] = 1
	s.TaskManagers[RunningCoach] = 1
	assert.True(t, s.CanUnlockDepartment(Physical))
	assert.False(t, s.CanUnlockDepartment(Mental))

	assert.False(t, s.CanUnlockVP())
	s.PhysicalDirector, s.MentalDirector = true, true
	assert.True(t, s.CanUnlockVP())

	assert.False(t, s.CanUnlockCEO(true))
	s.VP = true
	assert.False(t, s.CanUnlockCEO(false))
	assert.True(t, s.CanUnlockCEO(true))
}

func TestPrestige(t *testing.T) {
	s := State{PhysicalDirector: true, MentalDirector: true, VP: true, VPAutoHire: true, CEO: true, PrestigeLevel: 2}
	s.TaskManagers = [NumTypes]int{3, 2, 1, 4}

	res := s.Prestige()
	assert.Equal(t, 3, res.Level)
	assert.InDelta(t, 1.3, res.Multiplier, 1e-12)
	assert.Equal(t, State{PrestigeLevel: 3}, s)
}

func TestHiring(t *testing.T) {
	gold := &currency.Gold{}
	var s State

	assert.False(t, s.HireTaskManager(gold, MiningForeman))
	assert.Equal(t, 0, s.TaskManagers[MiningForeman])

	gold.Earn(3000)
	assert.True(t, s.HireTaskManager(gold, MiningForeman))
	assert.True(t, s.HireTaskManager(gold, MiningForeman))
	assert.Equal(t, 0.0, gold.Amount)
	assert.Equal(t, 2, s.TaskManagers[MiningForeman])

	assert.False(t, s.HireDepartment(gold, Physical), "cannot afford")
	gold.Earn(DepartmentCost)
	assert.False(t, s.HireDepartment(gold, Mental), "locked")
	assert.True(t, s.HireDepartment(gold, Physical))
	assert.False(t, s.HireDepartment(gold, Physical), "already owned")

	assert.False(t, s.HireVP(gold))
	s.MentalDirector = true
	gold.Earn(VPCost)
	assert.True(t, s.HireVP(gold))
	assert.True(t, s.VPAutoHire)

	gold.Earn(CEOCost)
	assert.False(t, s.HireCEO(gold, false))
	assert.True(t, s.HireCEO(gold, true))
	assert.Equal(t, 0.0, gold.Amount)
}

func TestAutoHire(t *testing.T) {
	gold := &currency.Gold{}
	gold.Earn(1500)
	s := State{}
	_, ok := s.AutoHire(gold)
	assert.False(t, ok, "requires VP")

	s.VP, s.VPAutoHire = true, true
	s.TaskManagers[MiningForeman] = 1
	hired, ok := s.AutoHire(gold)
	assert.True(t, ok)
	assert.Equal(t, CourseInstructor, hired)
	assert.Equal(t, 500.0, gold.Amount)

	_, ok = s.AutoHire(gold)
	assert.False(t, ok, "cannot afford")
}

func TestActivityMapping(t *testing.T) {
	assert.Equal(t, variables.Mining, Activity[MiningForeman])
	assert.Equal(t, variables.DistanceRunning, Activity[RunningCoach])
	assert.Equal(t, Mental, CategoryOf[MeditationGuide])
	assert.Equal(t, "running_coach", RunningCoach.String())

	typ, ok := ParseType("meditation_guide")
	assert.True(t, ok)
	assert.Equal(t, MeditationGuide, typ)
	_, ok = ParseType("intern")
	assert.False(t, ok)

	c, ok := ParseCategory("mental")
	assert.True(t, ok)
	assert.Equal(t, Mental, c)
	_, ok = ParseCategory("legal")
	assert.False(t, ok)
}
