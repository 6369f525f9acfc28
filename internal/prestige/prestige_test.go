package prestige

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/notoriety"
	"github.com/jpbranski/clickfluencer/internal/state"
)

func newState(t *testing.T) *state.GameState {
	t.Helper()
	return state.New(time.Unix(1_700_000_000, 0))
}

func TestPointsBelowThreshold(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 999_999

	assert.Zero(t, Points(s, bal))
	assert.False(t, CanReset(s, bal))
}

func TestPointsAtThreshold(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 1_000_000

	assert.InDelta(t, 1.0, Points(s, bal), 1e-9)
	assert.True(t, CanReset(s, bal))
}

func TestPointsSublinearGrowth(t *testing.T) {
	bal := config.Default()
	s := newState(t)

	// 1000x the threshold yields floor(1000^0.4) = 15 points; the
	// curve punishes banking creds far past the threshold.
	s.Creds = 1e9
	assert.InDelta(t, 15.0, Points(s, bal), 1e-9)

	s.Creds = 4e6
	four := Points(s, bal)
	s.Creds = 8e6
	eight := Points(s, bal)
	assert.Less(t, eight, 2*four+1, "doubling creds less than doubles points")
}

func TestPointsScaledByLegacyPress(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 1e9
	s.NotorietyUpgrades[notoriety.LegacyPress] = 4 // x2

	assert.InDelta(t, 31.0, Points(s, bal), 1e-9, "floor applies after the multiplier")
}

func TestResetRejectedBelowThreshold(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 500_000
	gen, _ := s.Generator("selfie_cam")
	gen.Count = 50

	res := Reset(s, bal)
	assert.False(t, res.OK)
	assert.Equal(t, "threshold not reached", res.Message)
	assert.InDelta(t, 500_000.0, s.Creds, 1e-9)
	assert.Equal(t, 50, gen.Count)
	assert.Zero(t, s.Stats.PrestigeCount)
}

func TestResetPartition(t *testing.T) {
	bal := config.Default()
	s := newState(t)

	// Resettable progress.
	s.Creds = 2_000_000
	for i := range s.Generators {
		s.Generators[i].Count = 5
		s.Generators[i].Unlocked = true
	}
	golden, _ := s.Upgrade("golden_fingers")
	golden.Tier = 3
	badge, _ := s.Upgrade("verified_badge")
	badge.Purchased = true
	s.ActiveEvents = []state.ActiveEvent{{ID: "viral_post", Scope: state.ScopeProduction, Multiplier: 2}}

	// Preserved progress.
	s.Awards = 7
	s.Notoriety = 123
	s.NotorietyGenerators["paparazzi_bait"] = 2
	s.NotorietyUpgrades[notoriety.TabloidReach] = 3
	viral, _ := s.Upgrade("viral_scripts")
	viral.Level = 4
	neon, _ := s.Theme("neon_wave")
	neon.Unlocked = true
	s.Stats.TotalClicks = 999

	res := Reset(s, bal)
	require.True(t, res.OK)
	assert.InDelta(t, 1.0, res.PointsGained, 1e-9)
	assert.InDelta(t, 1.0, res.TotalPrestige, 1e-9)

	// Cleared.
	assert.Zero(t, s.Creds)
	assert.Empty(t, s.ActiveEvents)
	for _, g := range s.Generators {
		assert.Zero(t, g.Count, "%s count cleared by reset", g.ID)
	}
	cam, _ := s.Generator("selfie_cam")
	assert.True(t, cam.Unlocked, "starter stays visible")
	farm, _ := s.Generator("meme_farm")
	assert.False(t, farm.Unlocked, "unlock flags return to the fresh roster")
	assert.Zero(t, golden.Tier)
	assert.False(t, golden.Purchased)
	assert.False(t, badge.Purchased)

	// Preserved.
	assert.InDelta(t, 7.0, s.Awards, 1e-9)
	assert.InDelta(t, 123.0, s.Notoriety, 1e-9)
	assert.Equal(t, 2, s.NotorietyGenerators["paparazzi_bait"])
	assert.Equal(t, 3, s.NotorietyUpgrades[notoriety.TabloidReach])
	assert.Equal(t, 4, viral.Level)
	assert.True(t, neon.Unlocked)
	assert.Equal(t, int64(999), s.Stats.TotalClicks, "lifetime stats survive")
	assert.Equal(t, 1, s.Stats.PrestigeCount)
}

func TestRepeatedResetsAccumulate(t *testing.T) {
	bal := config.Default()
	s := newState(t)

	s.Creds = 1_000_000
	require.True(t, Reset(s, bal).OK)
	s.Creds = 1_000_000
	res := Reset(s, bal)
	require.True(t, res.OK)

	assert.InDelta(t, 2.0, s.Prestige, 1e-9)
	assert.InDelta(t, 2.0, res.TotalPrestige, 1e-9)
	assert.Equal(t, 2, s.Stats.PrestigeCount)
}

func TestEstimateTime(t *testing.T) {
	bal := config.Default()
	s := newState(t)

	assert.Equal(t, state.Unreachable, EstimateTime(s, bal), "no production means never")

	gen, _ := s.Generator("selfie_cam")
	gen.Count = 2000 // 1000 creds/s
	assert.Equal(t, 1000*time.Second, EstimateTime(s, bal))

	// Upkeep counts against the rate.
	s.NotorietyGenerators["paparazzi_bait"] = 2 // 30/s drain  -> 970/s net
	est := EstimateTime(s, bal)
	assert.Greater(t, est, 1000*time.Second)

	s.Creds = bal.PrestigeThreshold
	assert.Equal(t, time.Duration(0), EstimateTime(s, bal))
}
