package combat

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/dojo-idle/internal/variables"
)

func TestThemeCycle(t *testing.T) {
	assert.Equal(t, Armed, Next(Unarmed))
	assert.Equal(t, Unarmed, Next(Energy))
	assert.Equal(t, variables.RangedBonus, Ranged.BonusKey())

	b, err := json.Marshal(Energy)
	require.NoError(t, err)
	assert.Equal(t, `"energy"`, string(b))

	var th Theme
	require.NoError(t, json.Unmarshal([]byte(`"armed"`), &th))
	assert.Equal(t, Armed, th)
	assert.Error(t, json.Unmarshal([]byte(`"psychic"`), &th))
}

func TestXPRequired(t *testing.T) {
	assert.Equal(t, 0, XPRequired(0))
	assert.Equal(t, 0, XPRequired(-2))
	assert.Equal(t, 100, XPRequired(1))
	assert.Equal(t, int(math.Floor(100*math.Pow(10, 1.5))), XPRequired(10))

	for level := 1; level < MaxMasteryLevel+5; level++ {
		assert.Greater(t, XPRequired(level+1), XPRequired(level), "level %d", level)
	}
}

func TestAwardXP(t *testing.T) {
	t.Run("banks remainder", func(t *testing.T) {
		var m Mastery
		gained := m.AwardXP(Unarmed, 150)
		assert.Equal(t, 1, gained)
		assert.Equal(t, 1, m.Level(Unarmed))
		assert.Equal(t, 50.0, m[Unarmed].XP)
	})

	t.Run("ignores non-positive", func(t *testing.T) {
		var m Mastery
		assert.Equal(t, 0, m.AwardXP(Armed, 0))
		assert.Equal(t, 0, m.AwardXP(Armed, -100))
		assert.Equal(t, 0, m.AwardXP(Armed, math.NaN()))
		assert.Equal(t, ThemeMastery{}, m[Armed])
	})

	t.Run("multi-level gain", func(t *testing.T) {
		var m Mastery
		xp := float64(XPRequired(1) + XPRequired(2) + XPRequired(3))
		assert.Equal(t, 3, m.AwardXP(Ranged, xp))
		assert.Equal(t, 0.0, m[Ranged].XP)
	})

	t.Run("caps at max level", func(t *testing.T) {
		var m Mastery
		m.AwardXP(Energy, 1e12)
		assert.Equal(t, MaxMasteryLevel, m.Level(Energy))
		assert.Equal(t, 0.0, m[Energy].XP)

		assert.Equal(t, 0, m.AwardXP(Energy, 5000))
		assert.Equal(t, MaxMasteryLevel, m.Level(Energy))
		assert.Equal(t, 0.0, m[Energy].XP)
	})
}

func TestUnlocked(t *testing.T) {
	var m Mastery
	assert.True(t, m.Unlocked(Unarmed))
	assert.False(t, m.Unlocked(Armed))

	m[Unarmed].Level = 10
	assert.True(t, m.Unlocked(Armed))
	assert.False(t, m.Unlocked(Ranged))

	m[Armed].Level = 10
	m[Ranged].Level = 9
	assert.True(t, m.Unlocked(Ranged))
	assert.False(t, m.Unlocked(Energy))
}

func TestCrossThemeBonus(t *testing.T) {
	want := []float64{0, 0, 0.05, 0.10, 0.20}
	for count, bonus := range want {
		var m Mastery
		for i := 0; i < count; i++ {
			m[i].Level = 50
		}
		assert.Equal(t, bonus, m.CrossThemeBonus(), "count %d", count)
	}
}

func TestDamage(t *testing.T) {
	var vars variables.Variables
	assert.Equal(t, 10.0, Damage(DamageParams{BaseDamage: 10, Theme: Unarmed, Variables: vars}))

	vars[variables.Strength] = 10 // +20% unarmed
	var m Mastery
	m[0].Level, m[1].Level = 50, 50 // +5%
	got := Damage(DamageParams{
		BaseDamage: 10,
		PowerLevel: 100,
		Theme:      Unarmed,
		Variables:  vars,
		Mastery:    m,
	})
	assert.InDelta(t, 10*2*1.2*1.05, got, 1e-9)
}

func TestTournament(t *testing.T) {
	p := TournamentOpponentPower(100, 10, 1)
	assert.InDelta(t, 100*math.Pow(1.05, 10), p, 1e-9)
	assert.Equal(t, 3*p, TournamentOpponentPower(100, 10, 3))

	assert.True(t, ExpectedLoss(121, 100))
	assert.False(t, ExpectedLoss(120, 100))
}
