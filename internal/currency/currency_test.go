package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerLevel(t *testing.T) {
	t.Run("starts at one", func(t *testing.T) {
		p := NewPowerLevel()
		assert.Equal(t, 1.0, p.Current)
		assert.Equal(t, 0.0, p.Permanent)
		assert.Equal(t, 1.0, p.Effective())
	})

	t.Run("earn ignores non-positive", func(t *testing.T) {
		p := NewPowerLevel()
		p.Earn(10)
		p.Earn(0)
		p.Earn(-5)
		assert.Equal(t, 11.0, p.Current)
		assert.Equal(t, 10.0, p.LifetimeEarned)
	})

	t.Run("spend checks affordability", func(t *testing.T) {
		p := NewPowerLevel()
		p.Earn(99)
		assert.False(t, p.Spend(101))
		assert.Equal(t, 100.0, p.Current)
		assert.True(t, p.Spend(40))
		assert.Equal(t, 60.0, p.Current)
		assert.Equal(t, 40.0, p.LifetimeSpent)
		assert.True(t, p.Spend(0))
		assert.True(t, p.Spend(-3))
		assert.Equal(t, 60.0, p.Current)
	})

	t.Run("permanent upgrade has independent gain", func(t *testing.T) {
		p := NewPowerLevel()
		p.Earn(499)
		assert.True(t, p.BuyPermanent(200, 20))
		assert.Equal(t, 300.0, p.Current)
		assert.Equal(t, 20.0, p.Permanent)
		assert.False(t, p.BuyPermanent(1000, 50))
		assert.Equal(t, 20.0, p.Permanent)
	})

	t.Run("reset returns lost current and keeps permanent", func(t *testing.T) {
		for _, earned := range []float64{0, 1, 57.5, 1e9} {
			p := NewPowerLevel()
			p.Earn(earned)
			p.AddPermanent(12)
			before := p.Current
			assert.Equal(t, before, p.Reset())
			assert.Equal(t, p.Permanent+1, p.Effective())
			assert.Equal(t, 12.0, p.Permanent)
			assert.Equal(t, 1, p.TimesReset)
		}
	})

	t.Run("add permanent ignores non-positive", func(t *testing.T) {
		p := NewPowerLevel()
		p.AddPermanent(-1)
		p.AddPermanent(0)
		p.AddPermanent(3)
		assert.Equal(t, 3.0, p.Permanent)
		assert.Equal(t, 1.0, p.Current)
	})
}

func TestPedometer(t *testing.T) {
	t.Run("add steps ignores non-positive", func(t *testing.T) {
		var p Pedometer
		p.AddSteps(-4)
		p.AddSteps(0)
		p.AddSteps(25)
		assert.Equal(t, 25.0, p.Count)
		assert.Equal(t, 25.0, p.LifetimeSteps)
	})

	t.Run("spending ten thousand steps", func(t *testing.T) {
		var p Pedometer
		p.AddSteps(10_000)
		res := p.Spend()
		assert.Equal(t, 10_000.0, res.StepsSpent)
		assert.InDelta(t, 40.0, res.SpeedBonusPercent, 1e-9)
		assert.Equal(t, 0.0, p.Count)
		assert.Equal(t, 1, p.TimesSpent)
		assert.Equal(t, 10_000.0, p.LifetimeSteps)
	})

	t.Run("spending zero still counts", func(t *testing.T) {
		var p Pedometer
		res := p.Spend()
		assert.Equal(t, 0.0, res.StepsSpent)
		assert.Equal(t, 0.0, res.SpeedBonusPercent)
		assert.Equal(t, 1, p.TimesSpent)
	})

	t.Run("milestones", func(t *testing.T) {
		_, ok := CurrentMilestone(999)
		assert.False(t, ok)
		m, ok := CurrentMilestone(150_000)
		assert.True(t, ok)
		assert.Equal(t, "Major speed upgrade", m.Label)
	})
}

func TestGold(t *testing.T) {
	var g Gold
	g.Earn(100)
	g.Earn(-10)
	assert.Equal(t, 100.0, g.Amount)
	assert.Equal(t, 100.0, g.LifetimeEarned)

	assert.False(t, g.Spend(150))
	assert.Equal(t, 100.0, g.Amount)
	assert.True(t, g.Spend(60))
	assert.Equal(t, 40.0, g.Amount)
	assert.Equal(t, 100.0, g.LifetimeEarned)
	assert.True(t, g.CanAfford(40))
	assert.False(t, g.CanAfford(41))
}
