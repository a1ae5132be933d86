package phasenet

import (
	"math/rand/v2"
	"testing"

	"github.com/claraeyoon/phasenet-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(seed uint64, channels, samples int) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	w := make([][]float64, channels)
	for c := range w {
		w[c] = make([]float64, samples)
		for j := range w[c] {
			w[c][j] = rng.NormFloat64()
		}
	}
	return w
}

func newTestNetwork(t *testing.T) *PhaseNet {
	t.Helper()
	n, err := New(DefaultNetworkConfig())
	require.NoError(t, err)
	n.InitDeterministic(42)
	return n
}

func TestForwardOutputShapeAndDistribution(t *testing.T) {
	t.Parallel()

	n := newTestNetwork(t)
	out, err := n.Forward(testWindow(1, 3, 3001))
	require.NoError(t, err)

	require.Len(t, out, 3)
	for c := range out {
		require.Len(t, out[c], 3001)
	}

	for j := 0; j < 3001; j++ {
		sum := 0.0
		for c := range out {
			assert.GreaterOrEqual(t, out[c][j], 0.0)
			sum += out[c][j]
		}
		require.InDelta(t, 1.0, sum, 1e-9, "column %d", j)
	}
}

func TestForwardIsDeterministic(t *testing.T) {
	t.Parallel()

	window := testWindow(7, 3, 3001)

	a := newTestNetwork(t)
	b := newTestNetwork(t)

	outA, err := a.Forward(window)
	require.NoError(t, err)
	outB, err := b.Forward(window)
	require.NoError(t, err)
	outA2, err := a.Forward(window)
	require.NoError(t, err)

	assert.Equal(t, outA, outB)
	assert.Equal(t, outA, outA2)
}

func TestForwardRejectsMalformedWindows(t *testing.T) {
	t.Parallel()

	n := newTestNetwork(t)

	_, err := n.Forward(testWindow(1, 4, 3001))
	require.Error(t, err)
	assert.Equal(t, errors.CategoryValidation, errors.GetCategory(err))

	_, err = n.Forward(testWindow(1, 3, 3000))
	require.Error(t, err)
	assert.Equal(t, errors.CategoryValidation, errors.GetCategory(err))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*NetworkConfig)
	}{
		{"zero channels", func(c *NetworkConfig) { c.InChannels = 0 }},
		{"zero classes", func(c *NetworkConfig) { c.Classes = 0 }},
		{"label count mismatch", func(c *NetworkConfig) { c.Phases = "NP" }},
		{"wrong filter count", func(c *NetworkConfig) { c.Filters = []int{8, 11, 16} }},
		{"zero stride", func(c *NetworkConfig) { c.Stride = 0 }},
		{"zero window", func(c *NetworkConfig) { c.WindowSamples = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultNetworkConfig()
			tt.mutate(&cfg)
			_, err := New(cfg)
			require.Error(t, err)
			assert.Equal(t, errors.CategoryModelInit, errors.GetCategory(err))
		})
	}
}

func TestDecoderPaddingTable(t *testing.T) {
	t.Parallel()

	n := newTestNetwork(t)

	// Three stages derive their padding from the paired encoder stage, the
	// second adds one unit of output padding, and the last uses the fixed
	// value 3.
	assert.Equal(t, 2, n.up[0].conv.Padding)
	assert.Equal(t, 0, n.up[0].conv.OutputPadding)
	assert.Equal(t, 2, n.up[1].conv.Padding)
	assert.Equal(t, 1, n.up[1].conv.OutputPadding)
	assert.Equal(t, 2, n.up[2].conv.Padding)
	assert.Equal(t, 0, n.up[2].conv.OutputPadding)
	assert.Equal(t, 3, n.up[3].conv.Padding)
	assert.Equal(t, 0, n.up[3].conv.OutputPadding)

	// Skip pairing and channel progression through the decoder.
	assert.Equal(t, [4]int{3, 2, 1, 0}, skipSources)
	assert.Equal(t, 32, n.up[0].conv.InChannels)
	assert.Equal(t, 44, n.up[1].conv.InChannels)
	assert.Equal(t, 32, n.up[2].conv.InChannels)
	assert.Equal(t, 22, n.up[3].conv.InChannels)
	assert.Equal(t, 16, n.out.InChannels)
}
