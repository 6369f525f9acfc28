package action

import (
	"fmt"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/notoriety"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// BuyNotorietyGenerator purchases one drama producer unit, enforcing
// the post-purchase net-production floor.
func BuyNotorietyGenerator(s *state.GameState, bal config.Balance, id string) (Result, error) {
	gen, ok := notoriety.FindGenerator(id)
	if !ok {
		return Result{}, fmt.Errorf("unknown notoriety generator: %s", id)
	}

	if denial := notoriety.GeneratorDenial(s, bal, gen); denial != "" {
		return reject(denial), nil
	}

	cost := gen.Cost(s.NotorietyGenerators[gen.ID])
	s.Creds -= cost
	s.NotorietyGenerators[gen.ID]++
	s.Stats.CredsSpent += cost
	return accept(), nil
}

// BuyNotorietyUpgrade spends notoriety on the permanent tree. Instant
// upgrades credit creds immediately instead of persisting as a rate
// modifier.
func BuyNotorietyUpgrade(s *state.GameState, bal config.Balance, id string) (Result, error) {
	up, ok := notoriety.FindUpgrade(id)
	if !ok {
		return Result{}, fmt.Errorf("unknown notoriety upgrade: %s", id)
	}

	level := s.NotorietyUpgrades[up.ID]
	if up.Maxed(level) {
		return reject("already at max level"), nil
	}

	cost := up.Cost(level)
	if !state.CanAfford(s.Notoriety, cost) {
		return reject("not enough notoriety"), nil
	}

	s.Notoriety -= cost
	s.NotorietyUpgrades[up.ID]++

	if up.Instant {
		windfall := s.ProductionPerSecond(bal) * up.InstantSeconds
		s.Creds += windfall
		s.Stats.CredsEarned += windfall
	}

	return accept(), nil
}
