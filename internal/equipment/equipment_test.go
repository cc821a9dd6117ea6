package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/dojo-idle/internal/variables"
)

func TestTools(t *testing.T) {
	s := New()
	assert.Equal(t, TierNone, s.ToolTier(variables.Mining))
	assert.Equal(t, 1.0, s.ToolEfficiency(variables.Mining))

	pick := Tool{ID: "iron_pick", Activity: variables.Mining, Tier: TierIron, Efficiency: 1.5}
	assert.Nil(t, s.EquipTool(pick))
	assert.Equal(t, TierIron, s.ToolTier(variables.Mining))
	assert.Equal(t, 1.5, s.ToolEfficiency(variables.Mining))

	better := Tool{ID: "steel_pick", Activity: variables.Mining, Tier: TierSteel, Efficiency: 2}
	prev := s.EquipTool(better)
	require.NotNil(t, prev)
	assert.Equal(t, "iron_pick", prev.ID)

	assert.Nil(t, s.Tool(variables.Fishing))
	removed := s.UnequipTool(variables.Mining)
	require.NotNil(t, removed)
	assert.Equal(t, "steel_pick", removed.ID)
	assert.Nil(t, s.UnequipTool(variables.Mining))
}

func TestGadgetSlots(t *testing.T) {
	s := New()
	ring := Gadget{ID: "ring", Slot: Offensive}
	boots := Gadget{ID: "boots", Slot: Utility}

	assert.True(t, s.EquipGadget(ring))
	assert.False(t, s.EquipGadget(boots))

	s.ExpandGadgetSlots(0)
	s.ExpandGadgetSlots(-2)
	assert.Equal(t, StartingGadgetSlots, s.MaxGadgets)

	s.ExpandGadgetSlots(1)
	assert.True(t, s.EquipGadget(boots))

	assert.Nil(t, s.UnequipGadget(2))
	assert.Nil(t, s.UnequipGadget(-1))
	g := s.UnequipGadget(0)
	require.NotNil(t, g)
	assert.Equal(t, "ring", g.ID)
	require.Len(t, s.Gadgets, 1)
	assert.Equal(t, "boots", s.Gadgets[0].ID)
}

func TestAggregate(t *testing.T) {
	s := New()
	s.ExpandGadgetSlots(2)
	s.EquipGadget(Gadget{ID: "a", Effects: []Effect{{Stat: "speed", Flat: 10, Percent: 1.1}, {Stat: "crit", Flat: 0.01, Percent: 1}}})
	s.EquipGadget(Gadget{ID: "b", Effects: []Effect{{Stat: "speed", Flat: 5, Percent: 1.2}}})

	totals := s.Aggregate()
	assert.Len(t, totals, 2)
	assert.Equal(t, 15.0, totals["speed"].Flat)
	assert.InDelta(t, 1.32, totals["speed"].Percent, 1e-12)
	assert.Equal(t, Bonus{Flat: 0.01, Percent: 1}, totals["crit"])

	empty := New()
	assert.Empty(t, empty.Aggregate())
}
