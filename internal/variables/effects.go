package variables

import "github.com/talgya/dojo-idle/internal/mathx"

// BonusKey selects the per-point weight column a combat theme scales with.
type BonusKey uint8

const (
	UnarmedDamage BonusKey = iota
	ArmedDamage
	RangedBonus
	EnergyBonus
)

// Effects holds the per-point effect weights of one variable.
type Effects struct {
	PerPoint     [4]float64 // indexed by BonusKey
	GeneralBonus string
	GeneralValue float64
}

// EffectTable is the dense theme × variable weight table.
var EffectTable = [NumKinds]Effects{
	Strength: {
		PerPoint:     [4]float64{0.02, 0.02, 0.005, 0.005},
		GeneralBonus: "carry capacity",
		GeneralValue: 1,
	},
	Dexterity: {
		PerPoint:     [4]float64{0.005, 0.005, 0.01, 0.005},
		GeneralBonus: "movement efficiency",
		GeneralValue: 0.005,
	},
	Focus: {
		PerPoint:     [4]float64{0.005, 0.005, 0.005, 0.01},
		GeneralBonus: "training efficiency",
		GeneralValue: 0.01,
	},
	Endurance: {
		PerPoint:     [4]float64{0.005, 0.005, 0.005, 0.01},
		GeneralBonus: "max HP / stamina regen",
		GeneralValue: 1,
	},
	Luck: {
		PerPoint:     [4]float64{0.002, 0.002, 0.002, 0.002},
		GeneralBonus: "crit chance / loot quality",
		GeneralValue: 0.005,
	},
}

// Scaling sums value × per-point weight over every variable for one column.
func Scaling(v Variables, key BonusKey) float64 {
	total := 0.0
	for _, k := range AllKinds {
		total += v[k] * EffectTable[k].PerPoint[key]
	}
	return total
}

// Derived stat bases.
const (
	BaseHP            = 100.0
	BaseEnergyPool    = 100.0
	BaseEnergyRegen   = 5.0
	BaseCritChance    = 0.05
	CritChancePerLuck = 0.005
	MaxCritChance     = 0.5
)

// MaxHP is base HP plus one per Endurance point.
func MaxHP(endurance float64) float64 {
	return BaseHP + endurance
}

// EnergyPoolSize is 100 + 5 per Focus point.
func EnergyPoolSize(focus float64) float64 {
	return BaseEnergyPool + focus*5
}

// EnergyRegenRate is energy per second: 5 + 0.5 per Focus point.
func EnergyRegenRate(focus float64) float64 {
	return BaseEnergyRegen + focus*0.5
}

// CritChance is 5% + 0.5% per Luck point, capped at 50%.
func CritChance(luck float64) float64 {
	return mathx.Cap(BaseCritChance+luck*CritChancePerLuck, MaxCritChance)
}

// LootQualityMultiplier gives +1% better drops per Luck point.
func LootQualityMultiplier(luck float64) float64 {
	return 1.0 + luck*0.01
}
