package datastore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	settings := &conf.Settings{}
	settings.Output.SQLite.Enabled = true
	settings.Output.SQLite.Path = filepath.Join(t.TempDir(), "picks.db")

	store, ok := New(settings).(*SQLiteStore)
	require.True(t, ok)
	require.NoError(t, store.Open())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testPick(traceID, phase string, at time.Time) Pick {
	return Pick{
		UUID:       uuid.New().String(),
		SourceNode: "test-node",
		TraceID:    traceID,
		Time:       at,
		Phase:      phase,
		Threshold:  0.3,
	}
}

func TestNewReturnsNilWhenDisabled(t *testing.T) {
	t.Parallel()

	assert.Nil(t, New(&conf.Settings{}))
}

func TestSaveAndQueryPicks(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	picks := []Pick{
		testPick("NN.STA.", "S", base.Add(5*time.Second)),
		testPick("NN.STA.", "P", base),
		testPick("NN.AAA.", "P", base.Add(time.Second)),
	}
	require.NoError(t, store.Save(picks))

	all, err := store.GetAllPicks()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "NN.AAA.", all[0].TraceID)
	assert.Equal(t, "P", all[1].Phase)
	assert.Equal(t, "S", all[2].Phase)

	byTrace, err := store.PicksByTrace("NN.STA.")
	require.NoError(t, err)
	require.Len(t, byTrace, 2)
	assert.True(t, byTrace[0].Time.Before(byTrace[1].Time))

	ranged, err := store.PicksInRange(base, base.Add(2*time.Second))
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestSaveEmptyBatchIsNoop(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	require.NoError(t, store.Save(nil))

	all, err := store.GetAllPicks()
	require.NoError(t, err)
	assert.Empty(t, all)
}
