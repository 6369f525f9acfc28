package config

import "time"

// Balance holds every numeric tuning knob the simulation reads.
// Formula code never embeds magic literals; it asks Balance.
type Balance struct {
	// Engine timing
	TickInterval       time.Duration `yaml:"tick_interval" json:"tick_interval"`
	EventCheckInterval time.Duration `yaml:"event_check_interval" json:"event_check_interval"`
	AutosaveDebounce   time.Duration `yaml:"autosave_debounce" json:"autosave_debounce"`

	// Random events
	EventChance     float64 `yaml:"event_chance" json:"event_chance"`
	MaxActiveEvents int     `yaml:"max_active_events" json:"max_active_events"`

	// Generators
	UnlockFraction float64 `yaml:"unlock_fraction" json:"unlock_fraction"`

	// Click drops
	AwardDropBase    float64 `yaml:"award_drop_base" json:"award_drop_base"`
	AwardPerTier     float64 `yaml:"award_per_tier" json:"award_per_tier"`
	CacheChanceBase  float64 `yaml:"cache_chance_base" json:"cache_chance_base"`
	CachePerTier     float64 `yaml:"cache_per_tier" json:"cache_per_tier"`
	CacheMinFraction float64 `yaml:"cache_min_fraction" json:"cache_min_fraction"`
	CacheMaxFraction float64 `yaml:"cache_max_fraction" json:"cache_max_fraction"`

	// Prestige
	PrestigeThreshold     float64 `yaml:"prestige_threshold" json:"prestige_threshold"`
	PrestigeExponent      float64 `yaml:"prestige_exponent" json:"prestige_exponent"`
	PrestigeBonusPerPoint float64 `yaml:"prestige_bonus_per_point" json:"prestige_bonus_per_point"`

	// Notoriety
	NotorietyNetFloor        float64 `yaml:"notoriety_net_floor" json:"notoriety_net_floor"`
	NotorietyProductionBoost float64 `yaml:"notoriety_production_boost" json:"notoriety_production_boost"`
	DramaBonusPerLevel       float64 `yaml:"drama_bonus_per_level" json:"drama_bonus_per_level"`

	// Offline catch-up
	OfflineMinGap            time.Duration `yaml:"offline_min_gap" json:"offline_min_gap"`
	OfflineCap               time.Duration `yaml:"offline_cap" json:"offline_cap"`
	OfflineBaseEfficiency    float64       `yaml:"offline_base_efficiency" json:"offline_base_efficiency"`
	OfflineEfficiencyPerTier float64       `yaml:"offline_efficiency_per_tier" json:"offline_efficiency_per_tier"`
}

// Default returns the shipping balance configuration.
func Default() Balance {
	return Balance{
		TickInterval:       250 * time.Millisecond,
		EventCheckInterval: 30 * time.Second,
		AutosaveDebounce:   5 * time.Second,

		EventChance:     0.05,
		MaxActiveEvents: 3,

		UnlockFraction: 0.5,

		AwardDropBase:    0.001,
		AwardPerTier:     0.005,
		CacheChanceBase:  0.002,
		CachePerTier:     0.004,
		CacheMinFraction: 0.01,
		CacheMaxFraction: 0.05,

		PrestigeThreshold:     1_000_000,
		PrestigeExponent:      0.4,
		PrestigeBonusPerPoint: 0.1,

		NotorietyNetFloor:        1.0,
		NotorietyProductionBoost: 0.01,
		DramaBonusPerLevel:       0.02,

		OfflineMinGap:            60 * time.Second,
		OfflineCap:               8 * time.Hour,
		OfflineBaseEfficiency:    0.5,
		OfflineEfficiencyPerTier: 0.1,
	}
}

// Casual returns easier balance: faster prestige, friendlier drops.
func Casual() Balance {
	cfg := Default()
	cfg.PrestigeThreshold = 250_000
	cfg.AwardDropBase = 0.002
	cfg.EventChance = 0.08
	cfg.OfflineCap = 12 * time.Hour
	cfg.OfflineBaseEfficiency = 0.6
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.PrestigeThreshold = 5_000_000
	cfg.AwardDropBase = 0.0005
	cfg.EventChance = 0.03
	cfg.OfflineCap = 4 * time.Hour
	cfg.NotorietyNetFloor = 2.0
	return cfg
}
