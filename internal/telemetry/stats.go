package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period            string            `json:"period"`
	EventCounts       map[EventType]int `json:"event_counts"`
	Clicks            int               `json:"clicks"`
	GeneratorsBought  int               `json:"generators_bought"`
	UpgradesBought    int               `json:"upgrades_bought"`
	PrestigeResets    int               `json:"prestige_resets"`
	RandomEvents      int               `json:"random_events"`
	EventsByID        map[string]int    `json:"events_by_id"`
	GeneratorsByID    map[string]int    `json:"generators_by_id"`
	ClicksPerHour     float64           `json:"clicks_per_hour"`
	PurchasesPerHour  float64           `json:"purchases_per_hour"`
	CredsFromClicking float64           `json:"creds_from_clicking"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:         since.Format("2006-01-02"),
		EventCounts:    make(map[EventType]int),
		EventsByID:     make(map[string]int),
		GeneratorsByID: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var meta EventMetadata
		if event.Metadata != "" {
			if err := json.Unmarshal([]byte(event.Metadata), &meta); err != nil {
				return Stats{}, err
			}
		}

		switch event.Type {
		case EventClick:
			stats.Clicks++
			if gained, ok := meta["gained"].(float64); ok {
				stats.CredsFromClicking += gained
			}
		case EventGeneratorPurchased:
			stats.GeneratorsBought++
			if id, ok := meta["id"].(string); ok {
				stats.GeneratorsByID[id]++
			}
		case EventUpgradePurchased:
			stats.UpgradesBought++
		case EventPrestigeReset:
			stats.PrestigeResets++
		case EventRandomEvent:
			stats.RandomEvents++
			if id, ok := meta["event_id"].(string); ok {
				stats.EventsByID[id]++
			}
		}
	}

	hours := time.Since(since).Hours()
	if hours > 0 {
		stats.ClicksPerHour = float64(stats.Clicks) / hours
		stats.PurchasesPerHour = float64(stats.GeneratorsBought+stats.UpgradesBought) / hours
	}

	return stats, nil
}
