// Package notoriety implements the secondary economy: drama producers
// that trade creds upkeep for notoriety, and the permanent upgrade
// tree that notoriety buys.
package notoriety

import (
	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// TotalUpkeepPerSecond sums the creds/s drain of every owned drama
// unit.
func TotalUpkeepPerSecond(s *state.GameState) float64 {
	total := 0.0
	for _, g := range Generators() {
		level := s.NotorietyGenerators[g.ID]
		total += g.Upkeep * float64(level)
	}
	return total
}

// TotalYieldPerSecond sums the notoriety/s output of every owned drama
// unit, scaled by the tabloid-reach upgrade.
func TotalYieldPerSecond(s *state.GameState) float64 {
	total := 0.0
	for _, g := range Generators() {
		level := s.NotorietyGenerators[g.ID]
		total += g.YieldPerSecond() * float64(level)
	}

	if reach, ok := FindUpgrade(TabloidReach); ok {
		total *= 1 + float64(s.NotorietyUpgrades[TabloidReach])*reach.EffectPerLevel
	}
	return total
}

// CachePayoutMultiplier scales the clickbait-cache payout by the
// hype-vault upgrade.
func CachePayoutMultiplier(s *state.GameState) float64 {
	vault, ok := FindUpgrade(HypeVault)
	if !ok {
		return 1
	}
	return 1 + float64(s.NotorietyUpgrades[HypeVault])*vault.EffectPerLevel
}

// PrestigeGainMultiplier scales the points granted on a prestige reset
// by the legacy-press upgrade.
func PrestigeGainMultiplier(s *state.GameState) float64 {
	press, ok := FindUpgrade(LegacyPress)
	if !ok {
		return 1
	}
	return 1 + float64(s.NotorietyUpgrades[LegacyPress])*press.EffectPerLevel
}

// GeneratorDenial explains why a drama producer cannot be bought right
// now. Empty means the purchase is allowed.
func GeneratorDenial(s *state.GameState, bal config.Balance, gen Generator) string {
	level := s.NotorietyGenerators[gen.ID]
	if level >= gen.MaxLevel {
		return "already at max level"
	}

	cost := gen.Cost(level)
	if !state.CanAfford(s.Creds, cost) {
		return "not enough creds"
	}

	// The guard prices the hypothetical post-purchase upkeep, not just
	// the sticker cost: net production must stay at or above the floor
	// once the new unit starts draining.
	upkeepAfter := TotalUpkeepPerSecond(s) + gen.Upkeep
	net := s.ProductionPerSecond(bal) - upkeepAfter
	if net < bal.NotorietyNetFloor {
		return "upkeep would starve production"
	}

	return ""
}
