package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/dojo-idle/internal/dungeon"
	"github.com/talgya/dojo-idle/internal/game"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "1,234", Number(1234))
	assert.Equal(t, "12.5", Number(12.5))
	assert.Equal(t, "2.5M", Number(2_500_000))
	assert.Equal(t, "40%", Percent(40))
	assert.Equal(t, "5%", Ratio(0.05))
}

func TestDungeonMap(t *testing.T) {
	d := &dungeon.Dungeon{Occupied: mapset.New[dungeon.Pos]()}
	add := func(pos dungeon.Pos, c dungeon.Content, entrance bool) {
		d.Pieces = append(d.Pieces, &dungeon.Placed{Piece: &dungeon.Registry[0], Pos: pos, Content: c, Entrance: entrance})
		d.Occupied.Put(pos)
	}
	add(dungeon.Pos{}, dungeon.ContentOpponent, true)
	add(dungeon.Pos{X: 1}, dungeon.ContentTreasure, true)
	add(dungeon.Pos{Y: 1}, dungeon.ContentHazard, false)
	add(dungeon.Pos{X: -1, Y: -1}, dungeon.ContentEmpty, false)

	assert.Equal(t, ".\n @t\n H\n", DungeonMap(d))
	assert.Equal(t, "empty=1 mining_node=0 opponent=1 treasure=1 tool_gate=0 hazard=1", ContentSummary(d))
	assert.Empty(t, DungeonMap(&dungeon.Dungeon{Occupied: mapset.New[dungeon.Pos]()}))
}

func TestStatus(t *testing.T) {
	st := game.New(nil)
	st.Gold.Earn(1500)
	out := Status(st)
	assert.Contains(t, out, "Forest Dojo")
	assert.Contains(t, out, "Master Chen")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "armed lvl 0")
}
