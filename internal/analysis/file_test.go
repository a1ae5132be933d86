package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/claraeyoon/phasenet-go/internal/datastore"
	"github.com/claraeyoon/phasenet-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestRecord(t *testing.T, samples int) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("network: NN\n")
	sb.WriteString("station: STA01\n")
	sb.WriteString("location: \"00\"\n")
	sb.WriteString("starttime: 2026-03-01T00:00:00Z\n")
	sb.WriteString("samplingrate: 100\n")
	sb.WriteString("channels: [HHZ, HHN, HHE]\n")
	sb.WriteString("data:\n")
	for c := 0; c < 3; c++ {
		sb.WriteString("  - [")
		for j := 0; j < samples; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%.4f", float64((j+c*17)%89)/89.0)
		}
		sb.WriteString("]\n")
	}

	path := filepath.Join(t.TempDir(), "record.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func testSettings(t *testing.T) *conf.Settings {
	t.Helper()

	settings := &conf.Settings{}
	settings.Main.Name = "test-node"
	settings.Model = conf.ModelSettings{
		Phases:           "NPS",
		NoisePhase:       "N",
		InChannels:       3,
		WindowSamples:    3001,
		Overlap:          250,
		SamplingRate:     100.0,
		DefaultThreshold: 0.3,
		Thresholds:       map[string]float64{},
	}
	require.NoError(t, conf.ValidateSettings(settings))
	return settings
}

func TestFileAnalysisRunsEndToEnd(t *testing.T) {
	t.Parallel()

	settings := testSettings(t)
	path := writeTestRecord(t, 3001)

	require.NoError(t, FileAnalysis(context.Background(), settings, path))
}

func TestFileAnalysisStoresPicks(t *testing.T) {
	t.Parallel()

	settings := testSettings(t)
	settings.Output.SQLite.Enabled = true
	settings.Output.SQLite.Path = filepath.Join(t.TempDir(), "picks.db")

	path := writeTestRecord(t, 3001)
	require.NoError(t, FileAnalysis(context.Background(), settings, path))

	// The stored pick set may be empty with stand-in parameters, but the
	// database must exist and be readable.
	store := datastore.New(settings)
	require.NotNil(t, store)
	require.NoError(t, store.Open())
	defer func() { _ = store.Close() }()

	_, err := store.GetAllPicks()
	require.NoError(t, err)
}

func TestFileAnalysisRejectsBadInput(t *testing.T) {
	t.Parallel()

	settings := testSettings(t)

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		err := FileAnalysis(context.Background(), settings, filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CategoryFileIO, errors.GetCategory(err))
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		err := FileAnalysis(context.Background(), settings, t.TempDir())
		require.Error(t, err)
	})

	t.Run("record too short", func(t *testing.T) {
		t.Parallel()
		err := FileAnalysis(context.Background(), settings, writeTestRecord(t, 500))
		require.Error(t, err)
		assert.Equal(t, errors.CategoryProcessing, errors.GetCategory(err))
	})
}

func TestBuildNetworkFollowsSettings(t *testing.T) {
	t.Parallel()

	settings := testSettings(t)
	network, err := buildNetwork(settings)
	require.NoError(t, err)
	assert.Equal(t, 3, network.Config.InChannels)
	assert.Equal(t, 3001, network.Config.WindowSamples)
	assert.Equal(t, "NPS", network.Config.Phases)
}
