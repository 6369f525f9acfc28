package action

import (
	"fmt"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// BuyGenerator purchases one unit of a primary generator. The error
// return fires only for unknown ids.
func BuyGenerator(s *state.GameState, bal config.Balance, id string) (Result, error) {
	gen, ok := s.Generator(id)
	if !ok {
		return Result{}, fmt.Errorf("unknown generator: %s", id)
	}
	if !gen.Unlocked {
		return reject("not unlocked yet"), nil
	}

	cost := gen.Cost()
	if !state.CanAfford(s.Creds, cost) {
		return reject("not enough creds"), nil
	}

	s.Creds -= cost
	gen.Count++
	s.Stats.CredsSpent += cost
	s.Stats.GeneratorsBought++
	return accept(), nil
}

// BulkResult reports a best-effort bulk purchase.
type BulkResult struct {
	Result
	Bought int     `json:"bought"`
	Spent  float64 `json:"spent"`
}

// BuyGeneratorBulk applies BuyGenerator up to n times, stopping at the
// first unaffordable unit. Rejected only when not a single unit could
// be bought.
func BuyGeneratorBulk(s *state.GameState, bal config.Balance, id string, n int) (BulkResult, error) {
	before := s.Stats.CredsSpent
	bought := 0
	for i := 0; i < n; i++ {
		res, err := BuyGenerator(s, bal, id)
		if err != nil {
			return BulkResult{}, err
		}
		if !res.OK {
			break
		}
		bought++
	}

	out := BulkResult{Bought: bought, Spent: s.Stats.CredsSpent - before}
	if bought == 0 {
		out.Result = reject("not enough creds")
	} else {
		out.Result = accept()
	}
	return out, nil
}

// BuyGeneratorBulkExact is the all-or-nothing variant behind the UI's
// "x10" affordance: it debits the bulk price once and credits all n
// units, or does nothing. BulkCost guarantees the debit equals n
// single purchases.
func BuyGeneratorBulkExact(s *state.GameState, bal config.Balance, id string, n int) (Result, error) {
	gen, ok := s.Generator(id)
	if !ok {
		return Result{}, fmt.Errorf("unknown generator: %s", id)
	}
	if !gen.Unlocked {
		return reject("not unlocked yet"), nil
	}
	if n <= 0 {
		return reject("quantity must be positive"), nil
	}

	cost := gen.BulkCost(n)
	if !state.CanAfford(s.Creds, cost) {
		return reject("not enough creds"), nil
	}

	s.Creds -= cost
	gen.Count += n
	s.Stats.CredsSpent += cost
	s.Stats.GeneratorsBought += int64(n)
	return accept(), nil
}

// BuyUpgrade purchases the next step of an upgrade, dispatching on its
// kind tag.
func BuyUpgrade(s *state.GameState, bal config.Balance, id string) (Result, error) {
	up, ok := s.Upgrade(id)
	if !ok {
		return Result{}, fmt.Errorf("unknown upgrade: %s", id)
	}
	if up.Maxed() {
		if up.Kind == state.KindOneShot {
			return reject("already purchased"), nil
		}
		return reject("already at max tier"), nil
	}

	cost := up.Cost()
	if !state.CanAfford(s.Creds, cost) {
		return reject("not enough creds"), nil
	}

	s.Creds -= cost
	switch up.Kind {
	case state.KindTiered:
		up.Tier++
		if up.Tier >= up.MaxTier {
			up.Purchased = true
		}
	case state.KindInfinite:
		up.Level++
	case state.KindOneShot:
		up.Purchased = true
	}
	s.Stats.CredsSpent += cost
	s.Stats.UpgradesBought++
	return accept(), nil
}

// PurchaseTheme spends awards to unlock a theme. Activation is a
// separate action.
func PurchaseTheme(s *state.GameState, id string) (Result, error) {
	theme, ok := s.Theme(id)
	if !ok {
		return Result{}, fmt.Errorf("unknown theme: %s", id)
	}
	if theme.Unlocked {
		return reject("already unlocked"), nil
	}
	if !state.CanAfford(s.Awards, theme.Cost) {
		return reject("not enough awards"), nil
	}

	s.Awards -= theme.Cost
	theme.Unlocked = true
	return accept(), nil
}

// ActivateTheme makes one unlocked theme active and clears all others,
// keeping the exactly-one-active invariant.
func ActivateTheme(s *state.GameState, id string) (Result, error) {
	theme, ok := s.Theme(id)
	if !ok {
		return Result{}, fmt.Errorf("unknown theme: %s", id)
	}
	if !theme.Unlocked {
		return reject("not unlocked yet"), nil
	}

	for i := range s.Themes {
		s.Themes[i].Active = false
	}
	theme.Active = true
	return accept(), nil
}

// UpdateSetting flips one named engine toggle. Settings never alter
// economy formulas.
func UpdateSetting(s *state.GameState, key string, value bool) (Result, error) {
	switch key {
	case "autoSave":
		s.Settings.AutoSave = value
	case "showNotifications":
		s.Settings.ShowNotifications = value
	case "soundEnabled":
		s.Settings.SoundEnabled = value
	case "offlineProgressEnabled":
		s.Settings.OfflineProgress = value
	default:
		return Result{}, fmt.Errorf("unknown setting: %s", key)
	}
	return accept(), nil
}
