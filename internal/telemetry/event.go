package telemetry

import "time"

type EventType string

const (
	EventClick              EventType = "click"
	EventAwardDropped       EventType = "award_dropped"
	EventCacheDropped       EventType = "cache_dropped"
	EventGeneratorPurchased EventType = "generator_purchased"
	EventUpgradePurchased   EventType = "upgrade_purchased"
	EventThemePurchased     EventType = "theme_purchased"
	EventThemeActivated     EventType = "theme_activated"
	EventNotorietyGenerator EventType = "notoriety_generator_purchased"
	EventNotorietyUpgrade   EventType = "notoriety_upgrade_purchased"
	EventSettingUpdated     EventType = "setting_updated"
	EventRandomEvent        EventType = "event_triggered"
	EventPrestigeReset      EventType = "prestige_reset"
	EventGameReset          EventType = "game_reset"
	EventOfflineApplied     EventType = "offline_applied"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
