package action

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// neverRNG always rolls above every drop chance.
type neverRNG struct{}

func (neverRNG) Float64() float64 { return 0.999 }

// seqRNG replays a fixed roll sequence.
type seqRNG struct {
	rolls []float64
	i     int
}

func (r *seqRNG) Float64() float64 {
	if r.i >= len(r.rolls) {
		return 0.999
	}
	v := r.rolls[r.i]
	r.i++
	return v
}

func newState(t *testing.T) *state.GameState {
	t.Helper()
	return state.New(time.Unix(1_700_000_000, 0))
}

func TestClickGainsClickPower(t *testing.T) {
	bal := config.Default()
	s := newState(t)

	res := Click(s, bal, neverRNG{})
	assert.InDelta(t, 1.0, res.Gained, 1e-9)
	assert.False(t, res.AwardDropped)
	assert.False(t, res.CacheDropped)
	assert.InDelta(t, 1.0, s.Creds, 1e-9)
	assert.Equal(t, int64(1), s.Stats.TotalClicks)
	assert.InDelta(t, 1.0, s.Stats.CredsEarned, 1e-9)
}

func TestClickAppliesClickEvents(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.ActiveEvents = []state.ActiveEvent{{ID: "celebrity_shoutout", Scope: state.ScopeClick, Multiplier: 3}}

	res := Click(s, bal, neverRNG{})
	assert.InDelta(t, 3.0, res.Gained, 1e-9)
}

func TestClickAwardAndCacheRolls(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 1000

	// Rolls: award (under 0.001), cache (under 0.002), band (0 = min
	// fraction).
	rng := &seqRNG{rolls: []float64{0.0005, 0.001, 0.0}}
	res := Click(s, bal, rng)

	assert.True(t, res.AwardDropped)
	assert.True(t, res.CacheDropped)
	// Cache pays the minimum band fraction of pre-click creds.
	assert.InDelta(t, 10.0, res.CacheAmount, 1e-9)
	assert.InDelta(t, 1.0, s.Awards, 1e-9)
	assert.InDelta(t, 1011.0, s.Creds, 1e-9)
}

func TestClickDropChancesScaleWithTiers(t *testing.T) {
	bal := config.Default()
	s := newState(t)

	ring, _ := s.Upgrade("ring_light")
	ring.Tier = 5 // award chance 0.001 + 5x0.005 = 0.026

	rng := &seqRNG{rolls: []float64{0.025, 0.9}}
	res := Click(s, bal, rng)
	assert.True(t, res.AwardDropped)
	assert.False(t, res.CacheDropped)
}

func TestBuyGeneratorDebitsExactCost(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 100

	res, err := BuyGenerator(s, bal, "selfie_cam")
	require.NoError(t, err)
	assert.True(t, res.OK)

	gen, _ := s.Generator("selfie_cam")
	assert.Equal(t, 1, gen.Count)
	assert.InDelta(t, 90.0, s.Creds, 1e-9)
	assert.InDelta(t, 10.0, s.Stats.CredsSpent, 1e-9)
	assert.Equal(t, int64(1), s.Stats.GeneratorsBought)

	// The second unit sits higher on the curve.
	res, err = BuyGenerator(s, bal, "selfie_cam")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.InDelta(t, 79.0, s.Creds, 1e-9)
}

func TestBuyGeneratorRejections(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 5

	res, err := BuyGenerator(s, bal, "selfie_cam")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "not enough creds", res.Message)
	assert.InDelta(t, 5.0, s.Creds, 1e-9, "rejection leaves state untouched")

	s.Creds = 10_000
	res, err = BuyGenerator(s, bal, "meme_farm")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "not unlocked yet", res.Message)

	_, err = BuyGenerator(s, bal, "hologram_rig")
	assert.Error(t, err)
}

func TestBuyGeneratorBulkBestEffort(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 30

	res, err := BuyGeneratorBulk(s, bal, "selfie_cam", 5)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, 2, res.Bought, "10 + 11 fits, the 13-cred third does not")
	assert.InDelta(t, 21.0, res.Spent, 1e-9)
	assert.InDelta(t, 9.0, s.Creds, 1e-9)
}

func TestBuyGeneratorBulkZeroBoughtRejects(t *testing.T) {
	bal := config.Default()
	s := newState(t)

	res, err := BuyGeneratorBulk(s, bal, "selfie_cam", 5)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Zero(t, res.Bought)
}

func TestBuyGeneratorBulkExactAllOrNothing(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	gen, _ := s.Generator("selfie_cam")
	bulkCost := gen.BulkCost(3)

	s.Creds = bulkCost - 1
	res, err := BuyGeneratorBulkExact(s, bal, "selfie_cam", 3)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Zero(t, gen.Count, "no partial purchase")

	s.Creds = bulkCost
	res, err = BuyGeneratorBulkExact(s, bal, "selfie_cam", 3)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, 3, gen.Count)
	assert.Zero(t, s.Creds, "debits the bulk price exactly")
}

func TestBuyGeneratorBulkExactMatchesIterative(t *testing.T) {
	bal := config.Default()

	iter := newState(t)
	iter.Creds = 1e6
	res, err := BuyGeneratorBulk(iter, bal, "selfie_cam", 10)
	require.NoError(t, err)
	require.Equal(t, 10, res.Bought)

	exact := newState(t)
	exact.Creds = 1e6
	_, err = BuyGeneratorBulkExact(exact, bal, "selfie_cam", 10)
	require.NoError(t, err)

	assert.Equal(t, 200.0, res.Spent)
	assert.Equal(t, res.Spent, exact.Stats.CredsSpent, "bulk debit must equal ten single buys")
	assert.Equal(t, iter.Creds, exact.Creds)
}

func TestBuyUpgradeTieredCapsOut(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 1e12

	up, _ := s.Upgrade("ring_light") // max tier 5
	for i := 0; i < 5; i++ {
		res, err := BuyUpgrade(s, bal, "ring_light")
		require.NoError(t, err)
		require.True(t, res.OK)
	}
	assert.Equal(t, 5, up.Tier)
	assert.True(t, up.Purchased)

	res, err := BuyUpgrade(s, bal, "ring_light")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "already at max tier", res.Message)
}

func TestBuyUpgradeOneShot(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 60_000

	res, err := BuyUpgrade(s, bal, "verified_badge")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.InDelta(t, 10_000.0, s.Creds, 1e-9)

	res, err = BuyUpgrade(s, bal, "verified_badge")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "already purchased", res.Message)
}

func TestBuyUpgradeInfiniteCostCurve(t *testing.T) {
	bal := config.Default()
	s := newState(t)
	s.Creds = 250 + 875

	res, err := BuyUpgrade(s, bal, "viral_scripts")
	require.NoError(t, err)
	require.True(t, res.OK)

	res, err = BuyUpgrade(s, bal, "viral_scripts")
	require.NoError(t, err)
	require.True(t, res.OK)

	up, _ := s.Upgrade("viral_scripts")
	assert.Equal(t, 2, up.Level)
	assert.Zero(t, s.Creds)

	// The level never caps.
	assert.False(t, up.Maxed())
}

func TestThemePurchaseAndActivate(t *testing.T) {
	s := newState(t)
	s.Awards = 6

	res, err := PurchaseTheme(s, "neon_wave")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.InDelta(t, 1.0, s.Awards, 1e-9)

	res, err = PurchaseTheme(s, "neon_wave")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "already unlocked", res.Message)

	res, err = ActivateTheme(s, "neon_wave")
	require.NoError(t, err)
	assert.True(t, res.OK)

	active := 0
	for _, th := range s.Themes {
		if th.Active {
			active++
		}
	}
	assert.Equal(t, 1, active, "exactly one theme active")
	assert.Equal(t, "neon_wave", s.ActiveTheme().ID)

	res, err = ActivateTheme(s, "gilded_era")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "not unlocked yet", res.Message)
}

func TestThemePurchaseInsufficientAwards(t *testing.T) {
	s := newState(t)
	s.Awards = 4

	res, err := PurchaseTheme(s, "neon_wave")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.InDelta(t, 4.0, s.Awards, 1e-9)
}

func TestUpdateSetting(t *testing.T) {
	s := newState(t)

	res, err := UpdateSetting(s, "autoSave", false)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.False(t, s.Settings.AutoSave)

	res, err = UpdateSetting(s, "offlineProgressEnabled", false)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.False(t, s.Settings.OfflineProgress)

	_, err = UpdateSetting(s, "volume", true)
	assert.Error(t, err)
}
