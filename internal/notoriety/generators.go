package notoriety

import "math"

// Generator is a drama producer: it yields notoriety per hour and
// burns creds per second as PR upkeep for every owned unit.
type Generator struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	BaseCost     float64 `json:"base_cost"` // creds
	Growth       float64 `json:"growth"`
	YieldPerHour float64 `json:"yield_per_hour"` // notoriety per unit
	Upkeep       float64 `json:"upkeep"`         // creds per second per unit
	MaxLevel     int     `json:"max_level"`
}

// Generators returns the fixed three-tier drama producer roster.
func Generators() []Generator {
	return []Generator{
		{
			ID:           "paparazzi_bait",
			Name:         "Paparazzi Bait",
			Description:  "Conveniently timed public appearances.",
			BaseCost:     50_000,
			Growth:       1.2,
			YieldPerHour: 60,
			Upkeep:       15,
			MaxLevel:     25,
		},
		{
			ID:           "scandal_machine",
			Name:         "Scandal Machine",
			Description:  "Manufactured outrage on a schedule.",
			BaseCost:     2_000_000,
			Growth:       1.22,
			YieldPerHour: 420,
			Upkeep:       220,
			MaxLevel:     15,
		},
		{
			ID:           "feud_factory",
			Name:         "Feud Factory",
			Description:  "Long-running beefs with rotating cast.",
			BaseCost:     80_000_000,
			Growth:       1.25,
			YieldPerHour: 3_000,
			Upkeep:       3_500,
			MaxLevel:     10,
		},
	}
}

// FindGenerator looks up a drama producer by id.
func FindGenerator(id string) (Generator, bool) {
	for _, g := range Generators() {
		if g.ID == id {
			return g, true
		}
	}
	return Generator{}, false
}

// Cost prices the next unit at the given owned level.
func (g Generator) Cost(level int) float64 {
	return math.Floor(g.BaseCost * math.Pow(g.Growth, float64(level)))
}

// YieldPerSecond converts the per-hour tuning figure to the per-second
// rate the tick applies.
func (g Generator) YieldPerSecond() float64 {
	return g.YieldPerHour / 3600
}
