package save

import (
	"encoding/json"
	"fmt"

	"github.com/jpbranski/clickfluencer/internal/state"
)

// Migration upgrades a save document one schema version forward. Apply
// must be idempotent: running it on an already-migrated document is a
// safe no-op that returns no changes.
type Migration struct {
	From  string
	To    string
	Apply func(doc map[string]any) []string
}

// Migrations returns the forward-only chain in ascending order.
func Migrations() []Migration {
	return []Migration{
		{From: "0.9.0", To: "1.0.0", Apply: migrateCurrencyNames},
		{From: "1.0.0", To: "1.1.0", Apply: migrateUpgradeKinds},
		{From: "1.1.0", To: "1.2.0", Apply: migrateNotorietyFields},
	}
}

// MigrateDocument walks the chain from the document's version to the
// current schema, mutating doc in place. It fails closed on versions
// it does not recognize rather than guessing at the shape.
func MigrateDocument(doc map[string]any) ([]string, error) {
	version, _ := doc["version"].(string)
	if version == "" {
		// Pre-versioning saves are the oldest known shape.
		version = "0.9.0"
	}
	if version == state.SchemaVersion {
		return nil, nil
	}

	chain := Migrations()
	start := -1
	for i, m := range chain {
		if m.From == version {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("unknown save version %q (current %s)", version, state.SchemaVersion)
	}

	var changes []string
	for _, m := range chain[start:] {
		changes = append(changes, m.Apply(doc)...)
		doc["version"] = m.To
		changes = append(changes, fmt.Sprintf("stamped version %s", m.To))
	}
	return changes, nil
}

// migrateCurrencyNames handles 0.9.0 saves: the currencies were named
// points/gems, and generator counts lived in a flat buildings map.
func migrateCurrencyNames(doc map[string]any) []string {
	var changes []string

	if v, ok := doc["points"]; ok {
		doc["creds"] = v
		delete(doc, "points")
		changes = append(changes, "renamed points to creds")
	}
	if v, ok := doc["gems"]; ok {
		doc["awards"] = v
		delete(doc, "gems")
		changes = append(changes, "renamed gems to awards")
	}

	if counts, ok := doc["buildings"].(map[string]any); ok {
		roster := state.DefaultGenerators()
		gens := make([]any, 0, len(roster))
		for _, g := range roster {
			if c, ok := counts[g.ID]; ok {
				g.Count = asInt(c)
				g.Unlocked = true
			}
			gens = append(gens, toMap(g))
		}
		doc["generators"] = gens
		delete(doc, "buildings")
		changes = append(changes, "converted buildings map to generator roster")
	}

	return changes
}

// migrateUpgradeKinds handles 1.0.0 saves: upgrades were a widened
// struct with optional tier/level fields and no kind tag. The kind is
// inferred from which progress fields are present.
func migrateUpgradeKinds(doc map[string]any) []string {
	var changes []string

	if ups, ok := doc["upgrades"].([]any); ok {
		tagged := 0
		for _, raw := range ups {
			up, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if _, has := up["kind"]; has {
				continue
			}
			switch {
			case up["max_tier"] != nil:
				up["kind"] = string(state.KindTiered)
			case up["level"] != nil:
				up["kind"] = string(state.KindInfinite)
			default:
				up["kind"] = string(state.KindOneShot)
			}
			tagged++
		}
		if tagged > 0 {
			changes = append(changes, fmt.Sprintf("tagged %d upgrades with kind", tagged))
		}
	}

	if _, ok := doc["themes"]; !ok {
		themes := make([]any, 0)
		for _, t := range state.DefaultThemes() {
			themes = append(themes, toMap(t))
		}
		doc["themes"] = themes
		changes = append(changes, "seeded theme roster")
	}

	return changes
}

// migrateNotorietyFields handles 1.1.0 saves, which predate the
// notoriety economy and used last_save for the offline anchor.
func migrateNotorietyFields(doc map[string]any) []string {
	var changes []string

	if _, ok := doc["notoriety"]; !ok {
		doc["notoriety"] = 0.0
		doc["notoriety_generators"] = map[string]any{}
		doc["notoriety_upgrades"] = map[string]any{}
		changes = append(changes, "initialized notoriety fields")
	}

	if v, ok := doc["last_save"]; ok {
		doc["last_save_time"] = v
		delete(doc, "last_save")
		changes = append(changes, "renamed last_save to last_save_time")
	}

	return changes
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

// toMap round-trips a struct through JSON so migrations manipulate the
// same shape the codec writes.
func toMap(v any) map[string]any {
	data, _ := json.Marshal(v)
	var out map[string]any
	_ = json.Unmarshal(data, &out)
	return out
}
