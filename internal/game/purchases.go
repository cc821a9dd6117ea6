package game

import (
	"fmt"
	"log/slog"

	"github.com/talgya/dojo-idle/internal/equipment"
	"github.com/talgya/dojo-idle/internal/managers"
	"github.com/talgya/dojo-idle/internal/speed"
)

// HireTaskManager pays for one more manager of type t.
func (s *State) HireTaskManager(t managers.Type) bool {
	cost := managers.TaskManagerCost(s.Managers.TaskManagers[t])
	if !s.Managers.HireTaskManager(&s.Gold, t) {
		return false
	}
	slog.Debug("manager hired", "type", t, "owned", s.Managers.TaskManagers[t], "cost", cost)
	s.record("managers", "hired "+t.String())
	return true
}

// HireDepartment pays for a category's department manager.
func (s *State) HireDepartment(c managers.Category) bool {
	if !s.Managers.HireDepartment(&s.Gold, c) {
		return false
	}
	slog.Debug("department manager hired", "category", c)
	s.record("managers", "hired "+c.String()+" department manager")
	return true
}

// HireVP pays for the VP of Training, which turns on auto-hire.
func (s *State) HireVP() bool {
	if !s.Managers.HireVP(&s.Gold) {
		return false
	}
	slog.Debug("vp hired")
	s.record("managers", "hired VP of training")
	return true
}

// HireCEO buys the CEO, gated on a completed theme cycle.
func (s *State) HireCEO() bool {
	if !s.Managers.HireCEO(&s.Gold, s.Progression.HasCompletedThemeCycle()) {
		return false
	}
	slog.Debug("ceo hired")
	s.record("managers", "hired CEO")
	return true
}

// Prestige restructures the manager roster for a permanent efficiency
// multiplier. Everything outside the roster is untouched.
func (s *State) Prestige() managers.PrestigeResult {
	res := s.Managers.Prestige()
	slog.Info("prestige", "level", res.Level, "multiplier", res.Multiplier)
	s.record("prestige", fmt.Sprintf("corporate restructuring, level %d", res.Level))
	return res
}

// BuyTile pays for a speed tile and stands on it.
func (s *State) BuyTile(tile speed.TileType) bool {
	if !speed.BuyTile(&s.Gold, tile) {
		return false
	}
	s.Speed.StandOn(tile)
	s.record("speed", "placed "+tile.String())
	return true
}

// EquipTool fills the tool's activity slot and returns the tool it replaced.
func (s *State) EquipTool(tool equipment.Tool) *equipment.Tool {
	prev := s.Equipment.EquipTool(tool)
	s.record("equipment", "equipped "+tool.Name)
	return prev
}

// EquipGadget takes a free gadget slot and refreshes the gadget speed bonus.
func (s *State) EquipGadget(g equipment.Gadget) bool {
	if !s.Equipment.EquipGadget(g) {
		return false
	}
	s.RefreshGadgetSpeed()
	s.record("equipment", "equipped "+g.Name)
	return true
}

// UnequipGadget frees the gadget slot at index.
func (s *State) UnequipGadget(index int) *equipment.Gadget {
	g := s.Equipment.UnequipGadget(index)
	if g == nil {
		return nil
	}
	s.RefreshGadgetSpeed()
	s.record("equipment", "removed "+g.Name)
	return g
}
