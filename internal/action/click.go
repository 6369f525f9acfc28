package action

import (
	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/notoriety"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// ClickResult reports what a single manual click produced.
type ClickResult struct {
	Gained       float64 `json:"gained"`
	AwardDropped bool    `json:"award_dropped"`
	CacheDropped bool    `json:"cache_dropped"`
	CacheAmount  float64 `json:"cache_amount"`
}

// Click applies one manual click: the click-power gain, an independent
// award drop roll, and an independent cred-cache roll. All three are
// computed from the pre-mutation state and applied together; no roll
// sees another roll's effect.
func Click(s *state.GameState, bal config.Balance, rng RNG) ClickResult {
	gained := s.ClickPower(bal) * s.EventMultiplier(state.ScopeClick)

	awardChance := bal.AwardDropBase
	cacheChance := bal.CacheChanceBase
	for _, u := range s.Upgrades {
		switch u.Effect {
		case state.EffectAwardDrop:
			awardChance += float64(u.Tier) * bal.AwardPerTier
		case state.EffectCacheChance:
			cacheChance += float64(u.Tier) * bal.CachePerTier
		}
	}

	res := ClickResult{Gained: gained}
	res.AwardDropped = rng.Float64() < awardChance

	if rng.Float64() < cacheChance {
		res.CacheDropped = true
		band := bal.CacheMinFraction + rng.Float64()*(bal.CacheMaxFraction-bal.CacheMinFraction)
		res.CacheAmount = s.Creds * band * notoriety.CachePayoutMultiplier(s)
	}

	s.Creds += gained + res.CacheAmount
	if res.AwardDropped {
		s.Awards++
	}
	s.Stats.TotalClicks++
	s.Stats.CredsEarned += gained + res.CacheAmount

	return res
}
