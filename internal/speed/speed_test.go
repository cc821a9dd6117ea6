package speed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/dojo-idle/internal/currency"
)

func TestEffective(t *testing.T) {
	var s State
	assert.Equal(t, BaseSpeed, s.Effective())

	s.PedometerBonusPercent = 100
	s.TileBonusPercent = 50
	s.TempBonusPercent = 50
	assert.Equal(t, 300.0, s.Effective())
}

func TestApplyPedometerUpgrade_Caps(t *testing.T) {
	var s State
	s.ApplyPedometerUpgrade(40)
	assert.Equal(t, 40.0, s.PedometerBonusPercent)
	assert.False(t, s.PedometerCapped())

	s.ApplyPedometerUpgrade(1000)
	assert.Equal(t, PedometerCapPercent, s.PedometerBonusPercent)
	assert.True(t, s.PedometerCapped())

	s.ApplyPedometerUpgrade(-50)
	assert.Equal(t, PedometerCapPercent, s.PedometerBonusPercent)
}

func TestTiles(t *testing.T) {
	var s State
	s.StandOn(TileSpeedRail)
	assert.Equal(t, 200.0, s.Effective())
	s.StandOn(TileNone)
	assert.Equal(t, BaseSpeed, s.Effective())

	g := currency.Gold{Amount: 600}
	assert.True(t, BuyTile(&g, TileCobblestone))
	assert.Equal(t, 100.0, g.Amount)
	assert.False(t, BuyTile(&g, TilePavedRoad))
	assert.False(t, BuyTile(&g, TileNone))

	tile, ok := ParseTile("speed_rail")
	assert.True(t, ok)
	assert.Equal(t, TileSpeedRail, tile)
	assert.Equal(t, "speed_rail", tile.String())
	_, ok = ParseTile("none")
	assert.False(t, ok)
}

func TestMinimumAndStatus(t *testing.T) {
	assert.Equal(t, 225.0, MinimumForTier(3))
	assert.Equal(t, 500.0, MinimumForTier(9))
	assert.Equal(t, 100.0, MinimumForTier(0))

	assert.Equal(t, BelowMinimum, StatusForTier(140, 2))
	assert.Equal(t, Normal, StatusForTier(150, 2))
	assert.Equal(t, Advantaged, StatusForTier(187.5, 2))
}
