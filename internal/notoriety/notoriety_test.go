package notoriety

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/state"
)

func newState(t *testing.T) *state.GameState {
	t.Helper()
	return state.New(time.Unix(1_700_000_000, 0))
}

func TestGeneratorCostCurve(t *testing.T) {
	bait, ok := FindGenerator("paparazzi_bait")
	require.True(t, ok)

	assert.Equal(t, 50_000.0, bait.Cost(0))
	assert.InDelta(t, 60_000.0, bait.Cost(1), 1.0)
	assert.InDelta(t, 72_000.0, bait.Cost(2), 1.0)
	assert.Greater(t, bait.Cost(2), bait.Cost(1))
}

func TestYieldPerSecond(t *testing.T) {
	bait, _ := FindGenerator("paparazzi_bait")
	assert.InDelta(t, 60.0/3600.0, bait.YieldPerSecond(), 1e-12)
}

func TestTotals(t *testing.T) {
	s := newState(t)
	assert.Zero(t, TotalUpkeepPerSecond(s))
	assert.Zero(t, TotalYieldPerSecond(s))

	s.NotorietyGenerators["paparazzi_bait"] = 2
	s.NotorietyGenerators["scandal_machine"] = 1

	assert.InDelta(t, 2*15.0+220.0, TotalUpkeepPerSecond(s), 1e-9)
	assert.InDelta(t, 2*60.0/3600+420.0/3600, TotalYieldPerSecond(s), 1e-9)
}

func TestTabloidReachScalesYield(t *testing.T) {
	s := newState(t)
	s.NotorietyGenerators["paparazzi_bait"] = 1

	base := TotalYieldPerSecond(s)
	s.NotorietyUpgrades[TabloidReach] = 4
	assert.InDelta(t, base*1.2, TotalYieldPerSecond(s), 1e-9)
}

func TestCacheAndPrestigeMultipliers(t *testing.T) {
	s := newState(t)
	assert.InDelta(t, 1.0, CachePayoutMultiplier(s), 1e-9)
	assert.InDelta(t, 1.0, PrestigeGainMultiplier(s), 1e-9)

	s.NotorietyUpgrades[HypeVault] = 3
	s.NotorietyUpgrades[LegacyPress] = 4
	assert.InDelta(t, 1.3, CachePayoutMultiplier(s), 1e-9)
	assert.InDelta(t, 2.0, PrestigeGainMultiplier(s), 1e-9)
}

func TestGeneratorDenialMaxLevel(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	bait, _ := FindGenerator("paparazzi_bait")
	s.NotorietyGenerators[bait.ID] = bait.MaxLevel
	s.Creds = 1e12

	assert.Equal(t, "already at max level", GeneratorDenial(s, bal, bait))
}

func TestGeneratorDenialAffordability(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	bait, _ := FindGenerator("paparazzi_bait")
	s.Creds = 49_999

	assert.Equal(t, "not enough creds", GeneratorDenial(s, bal, bait))
}

func TestGeneratorDenialNetFloor(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	bait, _ := FindGenerator("paparazzi_bait")
	s.Creds = 100_000
	cam, _ := s.Generator("selfie_cam")

	// 30 units produce 15/s; upkeep after purchase would be 15/s,
	// leaving net 0 below the floor of 1.
	cam.Count = 30
	assert.Equal(t, "upkeep would starve production", GeneratorDenial(s, bal, bait))

	// 32 units produce 16/s; net 1 sits exactly on the floor.
	cam.Count = 32
	assert.Empty(t, GeneratorDenial(s, bal, bait))
}

func TestGeneratorDenialCountsExistingUpkeep(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	bait, _ := FindGenerator("paparazzi_bait")
	s.Creds = 100_000
	s.NotorietyGenerators[bait.ID] = 1

	cam, _ := s.Generator("selfie_cam")
	cam.Count = 32 // 16/s, but 15/s already committed

	assert.Equal(t, "upkeep would starve production", GeneratorDenial(s, bal, bait))

	cam.Count = 62 // 31/s covers both units plus the floor
	assert.Empty(t, GeneratorDenial(s, bal, bait))
}

func TestUpgradeCostAndCaps(t *testing.T) {
	spin, ok := FindUpgrade(state.NotorietySpinDoctors)
	require.True(t, ok)
	assert.Equal(t, 10.0, spin.Cost(0))
	assert.Equal(t, 15.0, spin.Cost(1))
	assert.False(t, spin.Maxed(1000), "uncapped upgrade never maxes")

	press, _ := FindUpgrade(LegacyPress)
	assert.False(t, press.Maxed(3))
	assert.True(t, press.Maxed(4))
}

func TestRosterIDsAreStable(t *testing.T) {
	ids := map[string]bool{}
	for _, u := range Upgrades() {
		assert.False(t, ids[u.ID], "duplicate upgrade id %s", u.ID)
		ids[u.ID] = true
	}
	assert.True(t, ids[state.NotorietySpinDoctors])
	assert.True(t, ids[state.NotorietyDramaEngine])
	assert.True(t, ids[BreakingStory])
}
