package state

// UpgradeKind is the tag of the upgrade union. Cost and purchase logic
// dispatch on Kind only; the Tier/Level fields are meaningful for the
// matching kind alone.
type UpgradeKind string

const (
	KindOneShot  UpgradeKind = "one_shot"
	KindTiered   UpgradeKind = "tiered"
	KindInfinite UpgradeKind = "infinite"
)

// UpgradeEffect names what a purchased upgrade modifies.
type UpgradeEffect string

const (
	// EffectClickAdd adds the tier-table bonus to base click power.
	EffectClickAdd UpgradeEffect = "click_add"
	// EffectClickMult multiplies click power by Rate^Level (infinite)
	// or Rate once (one-shot).
	EffectClickMult UpgradeEffect = "click_mult"
	// EffectGlobalMult multiplies both click power and production.
	EffectGlobalMult UpgradeEffect = "global_mult"
	// EffectGeneratorMult multiplies one generator's rate; Target
	// holds the generator id.
	EffectGeneratorMult UpgradeEffect = "generator_mult"
	// EffectAwardDrop raises the per-click award drop probability by
	// Tier x Balance.AwardPerTier.
	EffectAwardDrop UpgradeEffect = "award_drop"
	// EffectCacheChance raises the per-click cred-cache probability by
	// Tier x Balance.CachePerTier.
	EffectCacheChance UpgradeEffect = "cache_chance"
	// EffectOfflineBonus raises offline catch-up efficiency by
	// Tier x Balance.OfflineEfficiencyPerTier.
	EffectOfflineBonus UpgradeEffect = "offline_bonus"
)

// ClickTierBonus maps the tier of the additive click upgrade to its
// bonus. Deliberately non-linear.
var ClickTierBonus = [...]float64{1, 2, 3, 5, 8, 15, 25}

// Upgrade is a permanent modifier. Exactly one of the three kinds;
// which progress field applies follows from Kind.
type Upgrade struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Kind        UpgradeKind   `json:"kind"`
	Effect      UpgradeEffect `json:"effect"`
	Target      string        `json:"target,omitempty"` // generator id for EffectGeneratorMult
	Rate        float64       `json:"rate,omitempty"`   // multiplier per application

	BaseCost       float64 `json:"base_cost"`
	CostMultiplier float64 `json:"cost_multiplier,omitempty"`

	MaxTier   int  `json:"max_tier,omitempty"` // tiered only
	Tier      int  `json:"tier,omitempty"`     // tiered progress
	Level     int  `json:"level,omitempty"`    // infinite progress
	Purchased bool `json:"purchased"`          // one-shot bought, or tiered capped
}

// Cost returns the price of the next purchase of this upgrade.
func (u Upgrade) Cost() float64 {
	switch u.Kind {
	case KindTiered:
		return u.BaseCost * pow(u.CostMultiplier, u.Tier)
	case KindInfinite:
		return u.BaseCost * pow(u.CostMultiplier, u.Level)
	default:
		return u.BaseCost
	}
}

// Maxed reports whether no further purchase is possible.
func (u Upgrade) Maxed() bool {
	switch u.Kind {
	case KindTiered:
		return u.Tier >= u.MaxTier
	case KindInfinite:
		return false
	default:
		return u.Purchased
	}
}

// ClickBonus returns the additive click bonus of a tiered click
// upgrade at its current tier, zero for anything else.
func (u Upgrade) ClickBonus() float64 {
	if u.Effect != EffectClickAdd || u.Tier == 0 {
		return 0
	}
	idx := u.Tier - 1
	if idx >= len(ClickTierBonus) {
		idx = len(ClickTierBonus) - 1
	}
	return ClickTierBonus[idx]
}

// Multiplier returns the multiplicative contribution of this upgrade:
// Rate^Level for infinite upgrades, Rate for purchased one-shots, 1
// otherwise.
func (u Upgrade) Multiplier() float64 {
	switch u.Kind {
	case KindInfinite:
		if u.Level == 0 {
			return 1
		}
		return pow(u.Rate, u.Level)
	case KindOneShot:
		if u.Purchased {
			return u.Rate
		}
		return 1
	default:
		return 1
	}
}

// DefaultUpgrades returns the fixed upgrade roster.
func DefaultUpgrades() []Upgrade {
	return []Upgrade{
		{
			ID:             "golden_fingers",
			Name:           "Golden Fingers",
			Description:    "Every tap lands harder.",
			Kind:           KindTiered,
			Effect:         EffectClickAdd,
			BaseCost:       100,
			CostMultiplier: 5,
			MaxTier:        len(ClickTierBonus),
		},
		{
			ID:             "ring_light",
			Name:           "Ring Light",
			Description:    "Awards notice you more often.",
			Kind:           KindTiered,
			Effect:         EffectAwardDrop,
			BaseCost:       500,
			CostMultiplier: 6,
			MaxTier:        5,
		},
		{
			ID:             "clickbait_cache",
			Name:           "Clickbait Cache",
			Description:    "Occasional windfalls of banked creds.",
			Kind:           KindTiered,
			Effect:         EffectCacheChance,
			BaseCost:       750,
			CostMultiplier: 6,
			MaxTier:        5,
		},
		{
			ID:             "night_shift_manager",
			Name:           "Night Shift Manager",
			Description:    "Someone minds the channel while you're away.",
			Kind:           KindTiered,
			Effect:         EffectOfflineBonus,
			BaseCost:       2_000,
			CostMultiplier: 8,
			MaxTier:        5,
		},
		{
			ID:             "viral_scripts",
			Name:           "Viral Scripts",
			Description:    "x1.25 click power per level.",
			Kind:           KindInfinite,
			Effect:         EffectClickMult,
			Rate:           1.25,
			BaseCost:       250,
			CostMultiplier: 3.5,
		},
		{
			ID:             "trend_engine",
			Name:           "Trend Engine",
			Description:    "x1.10 to everything per level.",
			Kind:           KindInfinite,
			Effect:         EffectGlobalMult,
			Rate:           1.10,
			BaseCost:       1_000,
			CostMultiplier: 4,
		},
		{
			ID:          "verified_badge",
			Name:        "Verified Badge",
			Description: "The little checkmark. Doubles everything.",
			Kind:        KindOneShot,
			Effect:      EffectGlobalMult,
			Rate:        2,
			BaseCost:    50_000,
		},
		{
			ID:          "meme_accelerator",
			Name:        "Meme Accelerator",
			Description: "Meme Farms output twice the memes.",
			Kind:        KindOneShot,
			Effect:      EffectGeneratorMult,
			Target:      "meme_farm",
			Rate:        2,
			BaseCost:    5_000,
		},
		{
			ID:          "render_farm",
			Name:        "Render Farm",
			Description: "Edit Bays cut twice as fast.",
			Kind:        KindOneShot,
			Effect:      EffectGeneratorMult,
			Target:      "edit_bay",
			Rate:        2,
			BaseCost:    60_000,
		},
		{
			ID:          "agency_contacts",
			Name:        "Agency Contacts",
			Description: "Collab Networks double their reach.",
			Kind:        KindOneShot,
			Effect:      EffectGeneratorMult,
			Target:      "collab_network",
			Rate:        2,
			BaseCost:    500_000,
		},
	}
}
