package state

// Theme is a cosmetic unlock carrying a permanent production
// multiplier and an additive click bonus. Any number may be unlocked
// but exactly one is active; only the active theme's bonuses apply.
type Theme struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"` // awards
	Multiplier  float64 `json:"multiplier"`
	ClickBonus  float64 `json:"click_bonus"`
	Unlocked    bool    `json:"unlocked"`
	Active      bool    `json:"active"`
}

// DefaultThemes returns the theme roster with the free default active.
func DefaultThemes() []Theme {
	return []Theme{
		{
			ID:          "default_grid",
			Name:        "Default Grid",
			Description: "The look everyone starts with.",
			Cost:        0,
			Multiplier:  1.0,
			Unlocked:    true,
			Active:      true,
		},
		{
			ID:          "neon_wave",
			Name:        "Neon Wave",
			Description: "Retro gradients, +5% production.",
			Cost:        5,
			Multiplier:  1.05,
		},
		{
			ID:          "midnight_noir",
			Name:        "Midnight Noir",
			Description: "Moody monochrome, +7% production.",
			Cost:        10,
			Multiplier:  1.07,
		},
		{
			ID:          "gilded_era",
			Name:        "Gilded Era",
			Description: "Gold trim, +10% production and +1 click.",
			Cost:        15,
			Multiplier:  1.10,
			ClickBonus:  1,
		},
	}
}
