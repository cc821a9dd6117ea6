// Package currency provides the three core currencies: the layered Power
// Level, the Pedometer, and Gold.
// Invalid amounts are ignored rather than reported; spends report affordability.
package currency

// PowerLevel has two layers.
//
// Current is the working number for one master cycle: it starts at 1, is
// earned and spent, and drops back to 1 on a master reset. Permanent only
// grows and survives resets. Effective = Permanent + Current.
type PowerLevel struct {
	Current        float64 `json:"current"`
	Permanent      float64 `json:"permanent"`
	LifetimeEarned float64 `json:"lifetime_earned"`
	LifetimeSpent  float64 `json:"lifetime_spent"`
	TimesReset     int     `json:"times_reset"`
}

// NewPowerLevel returns a fresh ledger with Current = 1.
func NewPowerLevel() PowerLevel {
	return PowerLevel{Current: 1}
}

// Effective is the value used in all combat and progression formulas.
func (p PowerLevel) Effective() float64 {
	return p.Permanent + p.Current
}

// Earn adds to Current from training, victories, milestones.
func (p *PowerLevel) Earn(amount float64) {
	if amount > 0 {
		p.Current += amount
		p.LifetimeEarned += amount
	}
}

// Spend deducts an iterative upgrade cost from Current.
// Non-positive costs succeed without effect.
func (p *PowerLevel) Spend(cost float64) bool {
	if cost <= 0 {
		return true
	}
	if p.Current < cost {
		return false
	}
	p.Current -= cost
	p.LifetimeSpent += cost
	return true
}

// BuyPermanent spends cost from Current and adds permGain to Permanent.
// Cost and gain are independent; the conversion rate is a balancing knob.
func (p *PowerLevel) BuyPermanent(cost, permGain float64) bool {
	if cost <= 0 {
		return true
	}
	if p.Current < cost {
		return false
	}
	p.Current -= cost
	p.LifetimeSpent += cost
	if permGain > 0 {
		p.Permanent += permGain
	}
	return true
}

// Reset sets Current back to 1 and returns the value it held.
// Permanent is untouched.
func (p *PowerLevel) Reset() float64 {
	lost := p.Current
	p.Current = 1
	p.TimesReset++
	return lost
}

// AddPermanent grants Permanent directly, bypassing Current.
func (p *PowerLevel) AddPermanent(amount float64) {
	if amount > 0 {
		p.Permanent += amount
	}
}
