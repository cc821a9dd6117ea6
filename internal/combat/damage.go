package combat

import (
	"math"

	"github.com/talgya/dojo-idle/internal/variables"
)

// themeMultiplier is flat for now; differentiation comes from attack speed.
var themeMultiplier = [NumThemes]float64{1.0, 1.0, 1.0, 1.0}

// DamageParams are the inputs to Damage.
type DamageParams struct {
	BaseDamage float64
	PowerLevel float64 // Effective power level
	Theme      Theme
	Variables  variables.Variables
	Mastery    Mastery
}

// Damage computes
//
//	base × (1 + PL/100) × themeMult × (1 + variableScaling) × (1 + crossThemeBonus)
func Damage(p DamageParams) float64 {
	powerMult := 1 + p.PowerLevel/100
	themeMult := themeMultiplier[p.Theme.Index()]
	varScale := 1 + variables.Scaling(p.Variables, p.Theme.BonusKey())
	cross := 1 + p.Mastery.CrossThemeBonus()
	return p.BaseDamage * powerMult * themeMult * varScale * cross
}

// TournamentOpponentPower is base × 1.05^victories × environment tier.
func TournamentOpponentPower(basePower float64, victoryCount int, environmentTier int) float64 {
	return basePower * math.Pow(1.05, float64(victoryCount)) * float64(environmentTier)
}

// ExpectedLoss reports whether the opponent outclasses the player by more than 20%.
func ExpectedLoss(opponentPower, playerPower float64) bool {
	return opponentPower > playerPower*1.2
}
