package currency

// Gold is the active economy currency. Amount never goes negative.
type Gold struct {
	Amount         float64 `json:"amount"`
	LifetimeEarned float64 `json:"lifetime_earned"`
}

// Earn adds gold from loot sales, rewards, etc.
func (g *Gold) Earn(amount float64) {
	if amount > 0 {
		g.Amount += amount
		g.LifetimeEarned += amount
	}
}

// CanAfford reports whether cost can be paid.
func (g Gold) CanAfford(cost float64) bool {
	return cost <= 0 || g.Amount >= cost
}

// Spend deducts cost, or returns false with the balance unchanged.
func (g *Gold) Spend(cost float64) bool {
	if cost <= 0 {
		return true
	}
	if g.Amount < cost {
		return false
	}
	g.Amount -= cost
	return true
}
