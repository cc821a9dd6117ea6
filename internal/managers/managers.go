// Package managers implements the automation economy: task managers that
// train variables passively, department managers, the VP, the CEO, and
// prestige ("corporate restructuring").
package managers

import (
	"math"

	"github.com/talgya/dojo-idle/internal/currency"
	"github.com/talgya/dojo-idle/internal/mathx"
	"github.com/talgya/dojo-idle/internal/variables"
)

// Type is a task-manager kind. Each automates one training activity.
type Type uint8

const (
	MiningForeman Type = iota
	CourseInstructor
	MeditationGuide
	RunningCoach
)

// NumTypes is the number of task-manager kinds.
const NumTypes = 4

// AllTypes in hiring order.
var AllTypes = [NumTypes]Type{MiningForeman, CourseInstructor, MeditationGuide, RunningCoach}

var typeNames = [NumTypes]string{"mining_foreman", "course_instructor", "meditation_guide", "running_coach"}

func (t Type) String() string {
	if int(t) < NumTypes {
		return typeNames[t]
	}
	return "unknown"
}

// ParseType looks a manager type up by name.
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// Category groups task managers under a department manager.
type Category uint8

const (
	Physical Category = iota
	Mental
)

func (c Category) String() string {
	if c == Mental {
		return "mental"
	}
	return "physical"
}

// ParseCategory accepts "physical" or "mental".
func ParseCategory(name string) (Category, bool) {
	switch name {
	case "physical":
		return Physical, true
	case "mental":
		return Mental, true
	}
	return 0, false
}

// Activity maps each manager type to the activity it automates.
var Activity = [NumTypes]variables.Activity{
	MiningForeman:    variables.Mining,
	CourseInstructor: variables.ObstacleCourse,
	MeditationGuide:  variables.Meditation,
	RunningCoach:     variables.DistanceRunning,
}

// CategoryOf maps each manager type to its department.
var CategoryOf = [NumTypes]Category{
	MiningForeman:    Physical,
	CourseInstructor: Mental,
	MeditationGuide:  Mental,
	RunningCoach:     Physical,
}

// Gold costs.
const (
	TaskManagerBaseCost = 1_000
	DepartmentCost      = 10_000
	VPCost              = 100_000
	CEOCost             = 1_000_000
)

// CasualRatePerHour is the active casual training rate every activity shares.
const CasualRatePerHour = 10.0

// State is the manager roster.
type State struct {
	TaskManagers     [NumTypes]int `json:"task_managers"`
	PhysicalDirector bool          `json:"physical_director"`
	MentalDirector   bool          `json:"mental_director"`
	VP               bool          `json:"vp"`
	VPAutoHire       bool          `json:"vp_auto_hire"`
	CEO              bool          `json:"ceo"`
	PrestigeLevel    int           `json:"prestige_level"`
}

// TaskManagerCost is the price of the next manager given ownedCount already owned.
func TaskManagerCost(ownedCount int) float64 {
	return TaskManagerBaseCost * math.Pow(2, float64(ownedCount))
}

// TotalInvestment is the gold spent on count managers of one type.
func TotalInvestment(count int) float64 {
	if count <= 0 {
		return 0
	}
	return TaskManagerBaseCost * (math.Pow(2, float64(count)) - 1)
}

// StackEfficiency is 1 - 0.5^count: 50%, 75%, 87.5%, ...
func StackEfficiency(count int) float64 {
	if count <= 0 {
		return 0
	}
	return 1 - math.Pow(0.5, float64(count))
}

// PrestigeMultiplier is 1 + 0.1 per prestige level.
func PrestigeMultiplier(level int) float64 {
	return 1.0 + 0.1*float64(level)
}

// CategoryCount sums owned task managers in a category.
func (s *State) CategoryCount(c Category) int {
	n := 0
	for t, qty := range s.TaskManagers {
		if CategoryOf[t] == c {
			n += qty
		}
	}
	return n
}

// HasDepartment reports whether the category's department manager is owned.
func (s *State) HasDepartment(c Category) bool {
	if c == Mental {
		return s.MentalDirector
	}
	return s.PhysicalDirector
}

// CanUnlockDepartment requires two or more task managers in the category.
func (s *State) CanUnlockDepartment(c Category) bool {
	return s.CategoryCount(c) >= 2
}

// CanUnlockVP requires both department managers.
func (s *State) CanUnlockVP() bool {
	return s.PhysicalDirector && s.MentalDirector
}

// CanUnlockCEO requires the VP and a completed theme cycle.
func (s *State) CanUnlockCEO(completedThemeCycle bool) bool {
	return s.VP && completedThemeCycle
}

// Efficiency is the automation efficiency for t, in [0, 1].
func (s *State) Efficiency(t Type) float64 {
	count := s.TaskManagers[t]
	if count <= 0 {
		return 0
	}

	dept := 1.0
	if s.HasDepartment(CategoryOf[t]) {
		dept = 1.25
	}
	exec := 1.0
	if s.VP {
		exec = 1.5
	}

	raw := StackEfficiency(count) * dept * exec * PrestigeMultiplier(s.PrestigeLevel)
	return mathx.Clamp(raw, 0, 1)
}

// PassivePerHour is the variable gain per hour the managers of type t produce.
func (s *State) PassivePerHour(t Type) float64 {
	return s.Efficiency(t) * CasualRatePerHour
}

// PrestigeResult reports a completed prestige.
type PrestigeResult struct {
	Level      int
	Multiplier float64
}

// Prestige increments the prestige level and wipes every manager.
func (s *State) Prestige() PrestigeResult {
	level := s.PrestigeLevel + 1
	*s = State{PrestigeLevel: level}
	return PrestigeResult{Level: level, Multiplier: PrestigeMultiplier(level)}
}

// HireTaskManager buys one manager of type t.
func (s *State) HireTaskManager(gold *currency.Gold, t Type) bool {
	if int(t) >= NumTypes {
		return false
	}
	if !gold.Spend(TaskManagerCost(s.TaskManagers[t])) {
		return false
	}
	s.TaskManagers[t]++
	return true
}

// HireDepartment buys a category's department manager once unlocked.
func (s *State) HireDepartment(gold *currency.Gold, c Category) bool {
	if s.HasDepartment(c) || !s.CanUnlockDepartment(c) {
		return false
	}
	if !gold.Spend(DepartmentCost) {
		return false
	}
	if c == Mental {
		s.MentalDirector = true
	} else {
		s.PhysicalDirector = true
	}
	return true
}

// HireVP buys the VP of Training, which also enables auto-hire.
func (s *State) HireVP(gold *currency.Gold) bool {
	if s.VP || !s.CanUnlockVP() {
		return false
	}
	if !gold.Spend(VPCost) {
		return false
	}
	s.VP = true
	s.VPAutoHire = true
	return true
}

// HireCEO buys the CEO once the VP is owned and a theme cycle is complete.
func (s *State) HireCEO(gold *currency.Gold, completedThemeCycle bool) bool {
	if s.CEO || !s.CanUnlockCEO(completedThemeCycle) {
		return false
	}
	if !gold.Spend(CEOCost) {
		return false
	}
	s.CEO = true
	return true
}

// AutoHire buys the cheapest affordable task manager when the VP's auto-hire
// is on. Ties go to the earlier type. Returns the type hired.
func (s *State) AutoHire(gold *currency.Gold) (Type, bool) {
	if !s.VP || !s.VPAutoHire {
		return 0, false
	}

	best, bestCost := -1, math.Inf(1)
	for _, t := range AllTypes {
		cost := TaskManagerCost(s.TaskManagers[t])
		if cost < bestCost {
			best, bestCost = int(t), cost
		}
	}
	if best < 0 || !gold.CanAfford(bestCost) {
		return 0, false
	}
	s.HireTaskManager(gold, Type(best))
	return Type(best), true
}
