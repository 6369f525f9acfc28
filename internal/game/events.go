package game

import (
	"github.com/jpbranski/clickfluencer/internal/action"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// pickWeighted selects one event definition proportionally to Weight.
// Returns false for an empty or zero-weight table.
func pickWeighted(defs []state.EventDef, rng action.RNG) (state.EventDef, bool) {
	total := 0
	for _, def := range defs {
		total += def.Weight
	}
	if total <= 0 {
		return state.EventDef{}, false
	}

	roll := int(rng.Float64() * float64(total))
	for _, def := range defs {
		roll -= def.Weight
		if roll < 0 {
			return def, true
		}
	}
	return defs[len(defs)-1], true
}
