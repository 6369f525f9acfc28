package state

import "time"

// SchemaVersion is stamped into every save document. The migration
// chain in internal/save upgrades older documents to this shape.
const SchemaVersion = "1.2.0"

// GameState is the single root snapshot of a game in progress. It is
// created by New, mutated only through internal/action, and advanced
// by the engine's tick. Callers outside those packages treat it as
// read-only.
type GameState struct {
	Creds     float64 `json:"creds"`
	Awards    float64 `json:"awards"`
	Prestige  float64 `json:"prestige"`
	Notoriety float64 `json:"notoriety"`

	Generators          []Generator    `json:"generators"`
	NotorietyGenerators map[string]int `json:"notoriety_generators"`
	Upgrades            []Upgrade      `json:"upgrades"`
	NotorietyUpgrades   map[string]int `json:"notoriety_upgrades"`
	Themes              []Theme        `json:"themes"`
	ActiveEvents        []ActiveEvent  `json:"active_events"`

	Stats    Statistics `json:"stats"`
	Settings Settings   `json:"settings"`

	Version      string `json:"version"`
	LastSaveTime int64  `json:"last_save_time"` // epoch ms
}

// Statistics tracks lifetime counters. Everything here only grows,
// except the session marker which restarts each session.
type Statistics struct {
	TotalClicks      int64         `json:"total_clicks"`
	CredsEarned      float64       `json:"creds_earned"`
	CredsSpent       float64       `json:"creds_spent"`
	GeneratorsBought int64         `json:"generators_bought"`
	UpgradesBought   int64         `json:"upgrades_bought"`
	NotorietyEarned  float64       `json:"notoriety_earned"`
	PrestigeCount    int           `json:"prestige_count"`
	PlayTime         time.Duration `json:"play_time"`
	SessionStart     int64         `json:"session_start"` // epoch ms
}

// Settings gate engine behavior only; they never alter the economy.
type Settings struct {
	AutoSave          bool `json:"auto_save"`
	ShowNotifications bool `json:"show_notifications"`
	SoundEnabled      bool `json:"sound_enabled"`
	OfflineProgress   bool `json:"offline_progress"`
}

// ActiveEvent is a time-boxed multiplicative buff currently in effect.
type ActiveEvent struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Scope      EventScope `json:"scope"`
	Multiplier float64    `json:"multiplier"`
	EndTime    int64      `json:"end_time"` // epoch ms
}

// New assembles a fresh GameState with the fixed rosters and zeroed
// progress. now anchors the session marker and save timestamp.
func New(now time.Time) *GameState {
	return &GameState{
		Generators:          DefaultGenerators(),
		NotorietyGenerators: map[string]int{},
		Upgrades:            DefaultUpgrades(),
		NotorietyUpgrades:   map[string]int{},
		Themes:              DefaultThemes(),
		ActiveEvents:        []ActiveEvent{},
		Stats: Statistics{
			SessionStart: now.UnixMilli(),
		},
		Settings: Settings{
			AutoSave:          true,
			ShowNotifications: true,
			SoundEnabled:      true,
			OfflineProgress:   true,
		},
		Version:      SchemaVersion,
		LastSaveTime: now.UnixMilli(),
	}
}

// Clone returns a deep copy. Snapshots handed to subscribers and the
// HTTP layer are clones, so the engine's live state never aliases
// caller-visible data.
func (s *GameState) Clone() *GameState {
	cp := *s

	cp.Generators = make([]Generator, len(s.Generators))
	copy(cp.Generators, s.Generators)

	cp.Upgrades = make([]Upgrade, len(s.Upgrades))
	copy(cp.Upgrades, s.Upgrades)

	cp.Themes = make([]Theme, len(s.Themes))
	copy(cp.Themes, s.Themes)

	cp.ActiveEvents = make([]ActiveEvent, len(s.ActiveEvents))
	copy(cp.ActiveEvents, s.ActiveEvents)

	cp.NotorietyGenerators = make(map[string]int, len(s.NotorietyGenerators))
	for k, v := range s.NotorietyGenerators {
		cp.NotorietyGenerators[k] = v
	}

	cp.NotorietyUpgrades = make(map[string]int, len(s.NotorietyUpgrades))
	for k, v := range s.NotorietyUpgrades {
		cp.NotorietyUpgrades[k] = v
	}

	return &cp
}

// Generator looks up a primary generator by id. Second return is false
// for unknown ids.
func (s *GameState) Generator(id string) (*Generator, bool) {
	for i := range s.Generators {
		if s.Generators[i].ID == id {
			return &s.Generators[i], true
		}
	}
	return nil, false
}

// Upgrade looks up an upgrade by id.
func (s *GameState) Upgrade(id string) (*Upgrade, bool) {
	for i := range s.Upgrades {
		if s.Upgrades[i].ID == id {
			return &s.Upgrades[i], true
		}
	}
	return nil, false
}

// Theme looks up a theme by id.
func (s *GameState) Theme(id string) (*Theme, bool) {
	for i := range s.Themes {
		if s.Themes[i].ID == id {
			return &s.Themes[i], true
		}
	}
	return nil, false
}

// ActiveTheme returns the single theme with Active set. Initialization
// guarantees exactly one exists.
func (s *GameState) ActiveTheme() *Theme {
	for i := range s.Themes {
		if s.Themes[i].Active {
			return &s.Themes[i]
		}
	}
	return nil
}
