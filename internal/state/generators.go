package state

// Generator is an automated producer of creds. Purchase cost depends
// only on its own count.
type Generator struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	BaseCost       float64 `json:"base_cost"`
	CostMultiplier float64 `json:"cost_multiplier"`
	BaseRate       float64 `json:"base_rate"` // creds per second per unit
	Count          int     `json:"count"`
	Unlocked       bool    `json:"unlocked"`
}

// DefaultGenerators returns the fixed primary producer roster. Order
// is display order; ids are stable across schema versions.
func DefaultGenerators() []Generator {
	return []Generator{
		{
			ID:             "selfie_cam",
			Name:           "Selfie Cam",
			Description:    "Posts on its own while you sleep.",
			BaseCost:       10,
			CostMultiplier: 1.15,
			BaseRate:       0.5,
			Unlocked:       true,
		},
		{
			ID:             "meme_farm",
			Name:           "Meme Farm",
			Description:    "Industrial-grade relatable content.",
			BaseCost:       120,
			CostMultiplier: 1.15,
			BaseRate:       4,
		},
		{
			ID:             "edit_bay",
			Name:           "Edit Bay",
			Description:    "Jump cuts measured in creds per second.",
			BaseCost:       1_400,
			CostMultiplier: 1.14,
			BaseRate:       20,
		},
		{
			ID:             "collab_network",
			Name:           "Collab Network",
			Description:    "Other people's audiences, your numbers.",
			BaseCost:       16_000,
			CostMultiplier: 1.13,
			BaseRate:       95,
		},
		{
			ID:             "merch_drop",
			Name:           "Merch Drop",
			Description:    "Limited runs that never run out.",
			BaseCost:       185_000,
			CostMultiplier: 1.13,
			BaseRate:       460,
		},
		{
			ID:             "sponsor_desk",
			Name:           "Sponsor Desk",
			Description:    "This segment of your life is brought to you by.",
			BaseCost:       2_200_000,
			CostMultiplier: 1.12,
			BaseRate:       2_300,
		},
		{
			ID:             "media_empire",
			Name:           "Media Empire",
			Description:    "Vertical integration of the feed itself.",
			BaseCost:       26_000_000,
			CostMultiplier: 1.11,
			BaseRate:       12_000,
		},
		{
			ID:             "algorithm_lab",
			Name:           "Algorithm Lab",
			Description:    "Stop chasing the algorithm. Become it.",
			BaseCost:       310_000_000,
			CostMultiplier: 1.10,
			BaseRate:       65_000,
		},
	}
}
