package save

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jpbranski/clickfluencer/internal/state"
)

// Manager serializes GameState to one key of a Store and migrates old
// documents forward on the way in.
type Manager struct {
	store Store
	key   string
}

func NewManager(store Store, key string) *Manager {
	return &Manager{store: store, key: key}
}

// Load reads, migrates, and hydrates the saved state. Returns
// (nil, nil, nil) when no save exists. Migration notes are returned
// for logging.
func (m *Manager) Load() (*state.GameState, []string, error) {
	data, err := m.store.Get(m.key)
	if err != nil {
		return nil, nil, fmt.Errorf("read save: %w", err)
	}
	if data == nil {
		return nil, nil, nil
	}
	return Decode(data)
}

// Save stamps the schema version and save time, then writes through
// the store.
func (m *Manager) Save(s *state.GameState, now time.Time) error {
	s.Version = state.SchemaVersion
	s.LastSaveTime = now.UnixMilli()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := m.store.Set(m.key, data); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Delete removes the save entirely ("reset game").
func (m *Manager) Delete() error {
	return m.store.Delete(m.key)
}

// Export renders the current save as pretty-printed JSON, the
// human-shareable form. The document is identical to what Load
// accepts.
func Export(s *state.GameState) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Decode parses a save document of any supported schema version,
// migrating it to the current shape first.
func Decode(data []byte) (*state.GameState, []string, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("corrupt save: %w", err)
	}

	changes, err := MigrateDocument(doc)
	if err != nil {
		return nil, nil, err
	}

	migrated, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, err
	}

	var s state.GameState
	if err := json.Unmarshal(migrated, &s); err != nil {
		return nil, nil, fmt.Errorf("hydrate save: %w", err)
	}

	reconcile(&s)
	return &s, changes, nil
}

// reconcile merges saved progress onto the current fixed rosters so
// entries added in newer builds appear and the exactly-one-active
// theme invariant holds after hydration.
func reconcile(s *state.GameState) {
	gens := state.DefaultGenerators()
	for i := range gens {
		if old, ok := findGenerator(s.Generators, gens[i].ID); ok {
			gens[i].Count = old.Count
			gens[i].Unlocked = gens[i].Unlocked || old.Unlocked
		}
	}
	s.Generators = gens

	ups := state.DefaultUpgrades()
	for i := range ups {
		if old, ok := findUpgrade(s.Upgrades, ups[i].ID); ok {
			ups[i].Tier = old.Tier
			ups[i].Level = old.Level
			ups[i].Purchased = old.Purchased
		}
	}
	s.Upgrades = ups

	themes := state.DefaultThemes()
	activeSeen := false
	for i := range themes {
		if old, ok := findTheme(s.Themes, themes[i].ID); ok {
			themes[i].Unlocked = themes[i].Unlocked || old.Unlocked
			themes[i].Active = old.Active && !activeSeen
		} else {
			themes[i].Active = false
		}
		activeSeen = activeSeen || themes[i].Active
	}
	if !activeSeen {
		themes[0].Active = true
		themes[0].Unlocked = true
	}
	s.Themes = themes

	if s.NotorietyGenerators == nil {
		s.NotorietyGenerators = map[string]int{}
	}
	if s.NotorietyUpgrades == nil {
		s.NotorietyUpgrades = map[string]int{}
	}
	if s.ActiveEvents == nil {
		s.ActiveEvents = []state.ActiveEvent{}
	}
}

func findGenerator(list []state.Generator, id string) (state.Generator, bool) {
	for _, g := range list {
		if g.ID == id {
			return g, true
		}
	}
	return state.Generator{}, false
}

func findUpgrade(list []state.Upgrade, id string) (state.Upgrade, bool) {
	for _, u := range list {
		if u.ID == id {
			return u, true
		}
	}
	return state.Upgrade{}, false
}

func findTheme(list []state.Theme, id string) (state.Theme, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return state.Theme{}, false
}
