package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryRecordAndFilter(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventClick, EventMetadata{"gained": 1.0}))
	require.NoError(t, repo.RecordEvent(EventGeneratorPurchased, EventMetadata{"id": "selfie_cam"}))
	require.NoError(t, repo.RecordEvent(EventClick, nil))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[2].ID)

	clicks, err := repo.GetEvents(time.Time{}, []EventType{EventClick})
	require.NoError(t, err)
	assert.Len(t, clicks, 2)

	future, err := repo.GetEvents(time.Now().Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, future)

	require.NoError(t, repo.Clear())
	all, _ = repo.GetEvents(time.Time{}, nil)
	assert.Empty(t, all)
}

func TestRecorderAdapter(t *testing.T) {
	repo := NewMemoryRepository()
	rec := Recorder{Repo: repo}

	rec.Record("click", map[string]any{"gained": 2.5})

	events, err := repo.GetEvents(time.Time{}, []EventType{EventClick})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Metadata, `"gained":2.5`)
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository()
	since := time.Now().Add(-time.Hour)

	require.NoError(t, repo.RecordEvent(EventClick, EventMetadata{"gained": 2.0}))
	require.NoError(t, repo.RecordEvent(EventClick, EventMetadata{"gained": 3.0}))
	require.NoError(t, repo.RecordEvent(EventGeneratorPurchased, EventMetadata{"id": "selfie_cam"}))
	require.NoError(t, repo.RecordEvent(EventGeneratorPurchased, EventMetadata{"id": "selfie_cam"}))
	require.NoError(t, repo.RecordEvent(EventUpgradePurchased, EventMetadata{"id": "ring_light"}))
	require.NoError(t, repo.RecordEvent(EventRandomEvent, EventMetadata{"event_id": "viral_post"}))
	require.NoError(t, repo.RecordEvent(EventPrestigeReset, EventMetadata{"points": 1.0}))

	events, err := repo.GetEvents(since, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, since)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Clicks)
	assert.InDelta(t, 5.0, stats.CredsFromClicking, 1e-9)
	assert.Equal(t, 2, stats.GeneratorsBought)
	assert.Equal(t, 2, stats.GeneratorsByID["selfie_cam"])
	assert.Equal(t, 1, stats.UpgradesBought)
	assert.Equal(t, 1, stats.RandomEvents)
	assert.Equal(t, 1, stats.EventsByID["viral_post"])
	assert.Equal(t, 1, stats.PrestigeResets)
	assert.Greater(t, stats.ClicksPerHour, 0.0)
}
