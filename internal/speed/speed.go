// Package speed provides the movement speed model: additive percentage
// bonuses over a base rate, speed tiles, and environment minimum speeds.
package speed

import (
	"github.com/talgya/dojo-idle/internal/currency"
	"github.com/talgya/dojo-idle/internal/mathx"
)

// BaseSpeed is movement in units per second before bonuses.
const BaseSpeed = 100.0

// PedometerCapPercent caps the bonus purchasable with pedometer spends.
const PedometerCapPercent = 500.0

// State holds the bonus layers, all in percentage points.
type State struct {
	PedometerBonusPercent float64 `json:"pedometer_bonus_percent"` // Capped at PedometerCapPercent
	TileBonusPercent      float64 `json:"tile_bonus_percent"`      // Tile under the player, uncapped
	TempBonusPercent      float64 `json:"temp_bonus_percent"`      // Equipment and consumables
}

// ApplyPedometerUpgrade adds a permanent bonus, enforcing the cap.
func (s *State) ApplyPedometerUpgrade(bonusPercent float64) {
	if bonusPercent <= 0 {
		return
	}
	s.PedometerBonusPercent = mathx.Cap(s.PedometerBonusPercent+bonusPercent, PedometerCapPercent)
}

// PedometerCapped reports whether pedometer spends no longer raise speed.
func (s State) PedometerCapped() bool {
	return s.PedometerBonusPercent >= PedometerCapPercent
}

// Effective returns units per second: BaseSpeed × (1 + total% / 100).
func (s State) Effective() float64 {
	total := s.PedometerBonusPercent + s.TileBonusPercent + s.TempBonusPercent
	return BaseSpeed * (1 + total/100)
}

// StandOn sets the tile bonus to the tile under the player.
func (s *State) StandOn(tile TileType) {
	s.TileBonusPercent = Tiles[tile].SpeedBonusPercent
}

// TileType enumerates placeable speed tiles.
type TileType uint8

const (
	TileNone TileType = iota
	TileDirtPath
	TileCobblestone
	TilePavedRoad
	TileSpeedRail
	TileTeleportPad // Instant travel; no speed bonus
)

// TileDefinition describes a speed tile.
type TileDefinition struct {
	Name              string
	SpeedBonusPercent float64
	GoldCost          float64
	Size              string
}

// Tiles indexed by TileType.
var Tiles = [...]TileDefinition{
	TileNone:        {Name: "none", Size: "1x1"},
	TileDirtPath:    {Name: "dirt_path", SpeedBonusPercent: 10, GoldCost: 100, Size: "1x1"},
	TileCobblestone: {Name: "cobblestone", SpeedBonusPercent: 25, GoldCost: 500, Size: "1x1"},
	TilePavedRoad:   {Name: "paved_road", SpeedBonusPercent: 50, GoldCost: 2_500, Size: "1x1"},
	TileSpeedRail:   {Name: "speed_rail", SpeedBonusPercent: 100, GoldCost: 10_000, Size: "1x3"},
	TileTeleportPad: {Name: "teleport_pad", SpeedBonusPercent: 0, GoldCost: 50_000, Size: "1x1"},
}

func (t TileType) String() string {
	if int(t) < len(Tiles) {
		return Tiles[t].Name
	}
	return "unknown"
}

// ParseTile looks a placeable tile up by name.
func ParseTile(name string) (TileType, bool) {
	for i, def := range Tiles {
		if i > int(TileNone) && def.Name == name {
			return TileType(i), true
		}
	}
	return TileNone, false
}

// BuyTile pays for a tile. Returns false if gold is insufficient.
func BuyTile(gold *currency.Gold, tile TileType) bool {
	if tile == TileNone {
		return false
	}
	return gold.Spend(Tiles[tile].GoldCost)
}

// minimumSpeeds per environment tier 1..5.
var minimumSpeeds = map[int]float64{
	1: 100,
	2: 150,
	3: 225,
	4: 350,
	5: 500,
}

// MinimumForTier returns the minimum speed an environment tier expects.
// Tier 6+ uses 500; anything else unknown uses 100.
func MinimumForTier(tier int) float64 {
	if m, ok := minimumSpeeds[tier]; ok {
		return m
	}
	if tier >= 6 {
		return 500
	}
	return 100
}

// Status grades current speed against a tier's minimum.
type Status uint8

const (
	BelowMinimum Status = iota // Severe movement penalty
	Normal
	Advantaged // At least 1.25× the minimum
)

func (s Status) String() string {
	switch s {
	case BelowMinimum:
		return "below_minimum"
	case Advantaged:
		return "advantaged"
	default:
		return "normal"
	}
}

// StatusForTier classifies current speed for an environment tier.
func StatusForTier(current float64, tier int) Status {
	min := MinimumForTier(tier)
	if current < min {
		return BelowMinimum
	}
	if current >= min*1.25 {
		return Advantaged
	}
	return Normal
}
