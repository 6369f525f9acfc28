// Package prestige implements the career reboot: reaching the creds
// threshold lets the player trade all primary progress for permanent
// prestige points. Threshold model: the reset clears creds, producers,
// and non-infinite upgrade progress; awards, notoriety, themes, and
// infinite upgrade levels survive.
package prestige

import (
	"math"
	"time"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/notoriety"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// Points computes the prestige points a reset would grant right now:
// floor((creds/threshold)^exponent x legacy-press multiplier). Zero
// below the threshold.
func Points(s *state.GameState, bal config.Balance) float64 {
	if s.Creds < bal.PrestigeThreshold {
		return 0
	}
	base := math.Pow(s.Creds/bal.PrestigeThreshold, bal.PrestigeExponent)
	return math.Floor(base * notoriety.PrestigeGainMultiplier(s))
}

// CanReset reports whether a reset would grant at least one point.
func CanReset(s *state.GameState, bal config.Balance) bool {
	return Points(s, bal) >= 1
}

// ResetResult reports what a prestige reset granted.
type ResetResult struct {
	OK            bool    `json:"success"`
	Message       string  `json:"message,omitempty"`
	PointsGained  float64 `json:"points_gained"`
	TotalPrestige float64 `json:"total_prestige"`
}

// Reset performs the prestige reset. Rejected below the threshold; the
// state is untouched on rejection.
func Reset(s *state.GameState, bal config.Balance) ResetResult {
	gained := Points(s, bal)
	if gained < 1 {
		return ResetResult{Message: "threshold not reached"}
	}

	s.Prestige += gained
	s.Creds = 0
	s.ActiveEvents = []state.ActiveEvent{}

	fresh := state.DefaultGenerators()
	for i := range s.Generators {
		s.Generators[i].Count = 0
		s.Generators[i].Unlocked = fresh[i].Unlocked
	}

	for i := range s.Upgrades {
		switch s.Upgrades[i].Kind {
		case state.KindTiered:
			s.Upgrades[i].Tier = 0
			s.Upgrades[i].Purchased = false
		case state.KindOneShot:
			s.Upgrades[i].Purchased = false
		}
		// Infinite levels are the long game; they survive the reboot.
	}

	s.Stats.PrestigeCount++

	return ResetResult{
		OK:            true,
		PointsGained:  gained,
		TotalPrestige: s.Prestige,
	}
}

// EstimateTime inverts the current production rate against the
// prestige threshold. state.Unreachable when production is zero or
// negative (upkeep counts against the rate).
func EstimateTime(s *state.GameState, bal config.Balance) time.Duration {
	net := s.ProductionPerSecond(bal) - notoriety.TotalUpkeepPerSecond(s)
	return s.TimeToAfford(bal.PrestigeThreshold, net)
}
