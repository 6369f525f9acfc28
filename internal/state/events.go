package state

import "time"

// EventScope says which side of the economy a random event boosts.
type EventScope string

const (
	ScopeProduction EventScope = "production"
	ScopeClick      EventScope = "click"
)

// EventDef is a random-event template. Weight drives the engine's
// weighted pick; Duration bounds the resulting ActiveEvent.
type EventDef struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Scope       EventScope    `json:"scope"`
	Multiplier  float64       `json:"multiplier"`
	Duration    time.Duration `json:"duration"`
	Weight      int           `json:"weight"`
}

// DefaultEventDefs returns the fixed random-event table.
func DefaultEventDefs() []EventDef {
	return []EventDef{
		{
			ID:          "viral_post",
			Name:        "Viral Post",
			Description: "x2 production for 30s.",
			Scope:       ScopeProduction,
			Multiplier:  2,
			Duration:    30 * time.Second,
			Weight:      50,
		},
		{
			ID:          "celebrity_shoutout",
			Name:        "Celebrity Shoutout",
			Description: "x3 click power for 20s.",
			Scope:       ScopeClick,
			Multiplier:  3,
			Duration:    20 * time.Second,
			Weight:      30,
		},
		{
			ID:          "trending_topic",
			Name:        "Trending Topic",
			Description: "x5 production for 15s.",
			Scope:       ScopeProduction,
			Multiplier:  5,
			Duration:    15 * time.Second,
			Weight:      15,
		},
		{
			ID:          "sponsor_blitz",
			Name:        "Sponsor Blitz",
			Description: "x8 production for 10s.",
			Scope:       ScopeProduction,
			Multiplier:  8,
			Duration:    10 * time.Second,
			Weight:      5,
		},
	}
}

// EventDef looks up a template by id.
func FindEventDef(id string) (EventDef, bool) {
	for _, def := range DefaultEventDefs() {
		if def.ID == id {
			return def, true
		}
	}
	return EventDef{}, false
}
