package notoriety

import (
	"math"

	"github.com/jpbranski/clickfluencer/internal/state"
)

// Upgrade is a permanent purchase in the notoriety tree. Leveled
// upgrades grant EffectPerLevel per owned level; Instant upgrades
// credit creds immediately on purchase instead of persisting as a
// rate modifier.
type Upgrade struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	BaseCost       float64 `json:"base_cost"` // notoriety
	Growth         float64 `json:"growth"`
	MaxLevel       int     `json:"max_level"` // 0 = uncapped
	EffectPerLevel float64 `json:"effect_per_level"`
	Instant        bool    `json:"instant"`
	InstantSeconds float64 `json:"instant_seconds"`
}

// Upgrade ids beyond the two that internal/state reads directly.
const (
	TabloidReach  = "tabloid_reach"
	HypeVault     = "hype_vault"
	LegacyPress   = "legacy_press"
	BreakingStory = "breaking_story"
)

// Upgrades returns the fixed notoriety upgrade roster.
func Upgrades() []Upgrade {
	return []Upgrade{
		{
			ID:             state.NotorietySpinDoctors,
			Name:           "Spin Doctors",
			Description:    "+1% creds production per level.",
			BaseCost:       10,
			Growth:         1.5,
			EffectPerLevel: 0.01,
		},
		{
			ID:             TabloidReach,
			Name:           "Tabloid Reach",
			Description:    "+5% notoriety yield per level.",
			BaseCost:       25,
			Growth:         1.6,
			MaxLevel:       20,
			EffectPerLevel: 0.05,
		},
		{
			ID:             HypeVault,
			Name:           "Hype Vault",
			Description:    "+10% clickbait cache payout per level.",
			BaseCost:       40,
			Growth:         1.8,
			MaxLevel:       10,
			EffectPerLevel: 0.10,
		},
		{
			ID:             state.NotorietyDramaEngine,
			Name:           "Drama Engine",
			Description:    "+2% to the prestige bonus per level.",
			BaseCost:       100,
			Growth:         2.0,
			MaxLevel:       10,
			EffectPerLevel: 0.02,
		},
		{
			ID:             LegacyPress,
			Name:           "Legacy Press",
			Description:    "+25% prestige points on reset per level.",
			BaseCost:       500,
			Growth:         3.0,
			MaxLevel:       4,
			EffectPerLevel: 0.25,
		},
		{
			ID:             BreakingStory,
			Name:           "Breaking Story",
			Description:    "Instantly banks 30 minutes of production.",
			BaseCost:       75,
			Growth:         2.5,
			Instant:        true,
			InstantSeconds: 1800,
		},
	}
}

// FindUpgrade looks up a notoriety upgrade by id.
func FindUpgrade(id string) (Upgrade, bool) {
	for _, u := range Upgrades() {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// Cost prices the next level of this upgrade.
func (u Upgrade) Cost(level int) float64 {
	return math.Floor(u.BaseCost * math.Pow(u.Growth, float64(level)))
}

// Maxed reports whether the upgrade cannot be bought again.
func (u Upgrade) Maxed(level int) bool {
	return u.MaxLevel > 0 && level >= u.MaxLevel
}
