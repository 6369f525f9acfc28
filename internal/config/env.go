package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv loads balance configuration from environment variables.
// Falls back to defaults if variables are not set.
func FromEnv() Balance {
	return ApplyEnvOverrides(Default())
}

// ApplyEnvOverrides layers environment overrides on top of an already
// resolved balance.
func ApplyEnvOverrides(cfg Balance) Balance {
	// Preset modes apply first so individual overrides stack on top.
	switch os.Getenv("DIFFICULTY") {
	case "casual":
		cfg = Casual()
	case "hard":
		cfg = Hard()
	}

	if val := getEnvFloat("PRESTIGE_THRESHOLD"); val > 0 {
		cfg.PrestigeThreshold = val
	}
	if val := getEnvFloat("UNLOCK_FRACTION"); val > 0 {
		cfg.UnlockFraction = val
	}
	if val := getEnvFloat("EVENT_CHANCE"); val > 0 {
		cfg.EventChance = val
	}
	if val := getEnvInt("MAX_ACTIVE_EVENTS"); val > 0 {
		cfg.MaxActiveEvents = val
	}
	if val := getEnvFloat("AWARD_DROP_BASE"); val > 0 {
		cfg.AwardDropBase = val
	}
	if val := getEnvFloat("NOTORIETY_NET_FLOOR"); val > 0 {
		cfg.NotorietyNetFloor = val
	}
	if val := getEnvDuration("TICK_INTERVAL"); val > 0 {
		cfg.TickInterval = val
	}
	if val := getEnvDuration("OFFLINE_CAP"); val > 0 {
		cfg.OfflineCap = val
	}
	if val := getEnvDuration("AUTOSAVE_DEBOUNCE"); val > 0 {
		cfg.AutosaveDebounce = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}

func getEnvDuration(key string) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0
	}
	return d
}
