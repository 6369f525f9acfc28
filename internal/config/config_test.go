package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":8420", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "clickfluencer_save", cfg.SaveKey)
	assert.True(t, cfg.Autosave.Enabled)
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
difficulty: hard
seeded_rng:
  enabled: true
  seed: 42
logging:
  level: debug
balance:
  prestige_threshold: 10000
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.True(t, cfg.SeededRNG.Enabled)
	assert.Equal(t, int64(42), cfg.SeededRNG.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// An explicit balance block beats the difficulty preset.
	assert.Equal(t, 10_000.0, cfg.EffectiveBalance().PrestigeThreshold)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEffectiveBalancePresets(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Default().PrestigeThreshold, cfg.EffectiveBalance().PrestigeThreshold)

	cfg.Difficulty = "casual"
	assert.Equal(t, 250_000.0, cfg.EffectiveBalance().PrestigeThreshold)

	cfg.Difficulty = "hard"
	assert.Equal(t, 5_000_000.0, cfg.EffectiveBalance().PrestigeThreshold)
}

func TestPresetOrdering(t *testing.T) {
	assert.Less(t, Casual().PrestigeThreshold, Default().PrestigeThreshold)
	assert.Greater(t, Hard().PrestigeThreshold, Default().PrestigeThreshold)
	assert.Greater(t, Casual().AwardDropBase, Hard().AwardDropBase)
	assert.Greater(t, Hard().NotorietyNetFloor, Default().NotorietyNetFloor)
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, Default(), cfg)
}

func TestFromEnvPresetAndOverridesStack(t *testing.T) {
	t.Setenv("DIFFICULTY", "hard")
	t.Setenv("PRESTIGE_THRESHOLD", "123456")
	t.Setenv("TICK_INTERVAL", "100ms")
	t.Setenv("MAX_ACTIVE_EVENTS", "5")

	cfg := FromEnv()
	assert.Equal(t, 123_456.0, cfg.PrestigeThreshold, "explicit override beats the preset")
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 5, cfg.MaxActiveEvents)
	assert.Equal(t, Hard().EventChance, cfg.EventChance, "unoverridden values come from the preset")
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("PRESTIGE_THRESHOLD", "lots")
	t.Setenv("TICK_INTERVAL", "fast")
	t.Setenv("MAX_ACTIVE_EVENTS", "-3")

	cfg := FromEnv()
	assert.Equal(t, Default(), cfg)
}
