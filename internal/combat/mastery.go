package combat

import "math"

// MaxMasteryLevel caps every theme's mastery.
const MaxMasteryLevel = 100

// UnlockLevel is the mastery a theme needs before the next theme unlocks.
const UnlockLevel = 10

// XPRequired returns the XP needed to advance into level: floor(100 × level^1.5).
// Level 0 requires nothing.
func XPRequired(level int) int {
	if level <= 0 {
		return 0
	}
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// ThemeMastery is one theme's level and XP banked toward the next level.
type ThemeMastery struct {
	Level int     `json:"level"`
	XP    float64 `json:"xp"`
}

// Mastery tracks every theme, indexed by Theme.
type Mastery [NumThemes]ThemeMastery

// Level returns a theme's mastery level.
func (m Mastery) Level(t Theme) int {
	return m[t.Index()].Level
}

// AwardXP banks xp on a theme and levels it up as far as the bank allows.
// XP at the level cap is discarded. Returns the levels gained.
func (m *Mastery) AwardXP(t Theme, xp float64) int {
	if !(xp > 0) {
		return 0
	}
	entry := &m[t.Index()]
	entry.XP += xp

	gained := 0
	for entry.Level < MaxMasteryLevel {
		required := float64(XPRequired(entry.Level + 1))
		if entry.XP < required {
			break
		}
		entry.XP -= required
		entry.Level++
		gained++
	}

	if entry.Level >= MaxMasteryLevel {
		entry.XP = 0
	}
	return gained
}

// Unlocked reports whether a theme is available. Each theme after Unarmed
// requires the previous theme at UnlockLevel.
func (m Mastery) Unlocked(t Theme) bool {
	idx := t.Index()
	if idx == 0 {
		return true
	}
	return m[idx-1].Level >= UnlockLevel
}

// crossThemeTable maps the number of themes at level 50+ to a damage bonus.
var crossThemeTable = [NumThemes + 1]float64{0, 0, 0.05, 0.10, 0.20}

// CrossThemeBonus is the damage bonus granted to every theme by high mastery elsewhere.
func (m Mastery) CrossThemeBonus() float64 {
	count := 0
	for _, tm := range m {
		if tm.Level >= 50 {
			count++
		}
	}
	return crossThemeTable[count]
}
