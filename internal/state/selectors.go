package state

import (
	"math"
	"time"

	"github.com/jpbranski/clickfluencer/internal/config"
)

// Notoriety upgrade ids the primary-economy selectors need to read.
// The full notoriety roster lives in internal/notoriety.
const (
	NotorietySpinDoctors = "spin_doctors"
	NotorietyDramaEngine = "drama_engine"
)

// Unreachable is the sentinel duration for "current production can
// never afford this".
const Unreachable = time.Duration(math.MaxInt64)

func pow(base float64, exp int) float64 {
	return math.Pow(base, float64(exp))
}

// Cost prices the next unit: floor(baseCost x costMultiplier^count).
// Strictly increasing in count for multipliers > 1.
func (g Generator) Cost() float64 {
	return math.Floor(g.BaseCost * pow(g.CostMultiplier, g.Count))
}

// BulkCost prices the next qty units as the sum of the next qty
// floored unit costs, so an all-or-nothing bulk purchase debits
// exactly what qty single purchases would. Quantities are small UI
// steps, so the loop beats a closed form that rounds differently.
func (g Generator) BulkCost(qty int) float64 {
	if qty <= 0 {
		return 0
	}
	sum := 0.0
	next := g
	for i := 0; i < qty; i++ {
		sum += next.Cost()
		next.Count++
	}
	return sum
}

// ShouldUnlock reports whether a generator becomes visible: creds have
// reached UnlockFraction of its base cost. Unlock is one-way; the tick
// keeps the flag set once true.
func ShouldUnlock(g Generator, creds float64, bal config.Balance) bool {
	return creds >= g.BaseCost*bal.UnlockFraction
}

// CanAfford is the single affordability predicate used everywhere.
func CanAfford(balance, cost float64) bool {
	return balance >= cost
}

// PrestigeMultiplier is the permanent bonus from accumulated prestige,
// scaled up by the drama-engine notoriety upgrade.
func (s *GameState) PrestigeMultiplier(bal config.Balance) float64 {
	drama := float64(s.NotorietyUpgrades[NotorietyDramaEngine])
	return 1 + s.Prestige*bal.PrestigeBonusPerPoint*(1+drama*bal.DramaBonusPerLevel)
}

// globalMultiplier folds every purchased global-multiplier upgrade.
func (s *GameState) globalMultiplier() float64 {
	m := 1.0
	for _, u := range s.Upgrades {
		if u.Effect == EffectGlobalMult {
			m *= u.Multiplier()
		}
	}
	return m
}

// ClickPower derives the creds gained by one manual click, before any
// active click-event multiplier. Additive terms combine first, then
// every multiplicative term applies.
func (s *GameState) ClickPower(bal config.Balance) float64 {
	additive := 1.0
	mult := 1.0

	for _, u := range s.Upgrades {
		switch u.Effect {
		case EffectClickAdd:
			additive += u.ClickBonus()
		case EffectClickMult:
			mult *= u.Multiplier()
		}
	}

	theme := s.ActiveTheme()
	if theme != nil {
		additive += theme.ClickBonus
		mult *= theme.Multiplier
	}

	mult *= s.globalMultiplier()
	mult *= s.PrestigeMultiplier(bal)

	return additive * mult
}

// EventMultiplier is the product of all active event multipliers for
// the given scope. Expired events are pruned every tick, so no time
// check happens here.
func (s *GameState) EventMultiplier(scope EventScope) float64 {
	m := 1.0
	for _, ev := range s.ActiveEvents {
		if ev.Scope == scope {
			m *= ev.Multiplier
		}
	}
	return m
}

// generatorMultiplier folds every purchased upgrade targeting one
// generator.
func (s *GameState) generatorMultiplier(id string) float64 {
	m := 1.0
	for _, u := range s.Upgrades {
		if u.Effect == EffectGeneratorMult && u.Target == id {
			m *= u.Multiplier()
		}
	}
	return m
}

// ProductionPerSecond derives the automated creds income rate: each
// generator's base yield scaled by its targeted upgrades, summed, then
// scaled by the global, prestige, theme, event, and notoriety terms.
func (s *GameState) ProductionPerSecond(bal config.Balance) float64 {
	sum := 0.0
	for _, g := range s.Generators {
		if g.Count == 0 {
			continue
		}
		sum += g.BaseRate * float64(g.Count) * s.generatorMultiplier(g.ID)
	}

	sum *= s.globalMultiplier()
	sum *= s.PrestigeMultiplier(bal)
	if theme := s.ActiveTheme(); theme != nil {
		sum *= theme.Multiplier
	}
	sum *= s.EventMultiplier(ScopeProduction)

	spin := float64(s.NotorietyUpgrades[NotorietySpinDoctors])
	sum *= 1 + spin*bal.NotorietyProductionBoost

	return sum
}

// TimeToAfford inverts a production rate against a price. Zero for
// already affordable, Unreachable when the rate is zero or negative.
func (s *GameState) TimeToAfford(cost, perSecond float64) time.Duration {
	if s.Creds >= cost {
		return 0
	}
	if perSecond <= 0 {
		return Unreachable
	}
	seconds := (cost - s.Creds) / perSecond
	return time.Duration(seconds * float64(time.Second))
}

// OfflineEfficiency is the fraction of normal production earned while
// away, lifted from the floor by the offline-bonus upgrade tiers.
func (s *GameState) OfflineEfficiency(bal config.Balance) float64 {
	eff := bal.OfflineBaseEfficiency
	for _, u := range s.Upgrades {
		if u.Effect == EffectOfflineBonus {
			eff += float64(u.Tier) * bal.OfflineEfficiencyPerTier
		}
	}
	if eff > 1 {
		eff = 1
	}
	return eff
}
