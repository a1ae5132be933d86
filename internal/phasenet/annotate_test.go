package phasenet

import (
	"testing"
	"time"

	"github.com/claraeyoon/phasenet-go/internal/errors"
	"github.com/claraeyoon/phasenet-go/internal/seis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func componentStream(samples int) seis.Stream {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	channels := []string{"HHZ", "HHN", "HHE"}
	stream := make(seis.Stream, 0, len(channels))
	for i, ch := range channels {
		data := make([]float64, samples)
		for j := range data {
			// Distinct, non constant content per component.
			data[j] = float64((j+i*13)%97) / 97.0
		}
		stream = append(stream, &seis.Trace{
			Network:      "NN",
			Station:      "STA01",
			Location:     "00",
			Channel:      ch,
			StartTime:    start,
			SamplingRate: 100.0,
			Data:         data,
		})
	}
	return stream
}

func TestAnnotateSingleWindow(t *testing.T) {
	t.Parallel()

	n := newTestNetwork(t)
	out, err := n.Annotate(componentStream(3001), 250)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, "PhaseNet_N", out[0].Channel)
	assert.Equal(t, "PhaseNet_P", out[1].Channel)
	assert.Equal(t, "PhaseNet_S", out[2].Channel)

	for _, tr := range out {
		assert.Equal(t, "NN.STA01.00", tr.SourceID())
		assert.Len(t, tr.Data, 3001)
		assert.Equal(t, 100.0, tr.SamplingRate)
	}
}

func TestAnnotateStitchesOverlappingWindows(t *testing.T) {
	t.Parallel()

	const samples = 7000

	n := newTestNetwork(t)
	out, err := n.Annotate(componentStream(samples), 250)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for _, tr := range out {
		require.Len(t, tr.Data, samples)
	}

	// Every time index was written by some window, so the class values
	// still form a distribution there.
	for j := 0; j < samples; j += 97 {
		sum := 0.0
		for _, tr := range out {
			sum += tr.Data[j]
		}
		require.InDelta(t, 1.0, sum, 1e-9, "sample %d", j)
	}
}

func TestAnnotateRejectsBadInput(t *testing.T) {
	t.Parallel()

	n := newTestNetwork(t)

	t.Run("too few components", func(t *testing.T) {
		t.Parallel()
		_, err := n.Annotate(componentStream(3001)[:2], 250)
		require.Error(t, err)
		assert.Equal(t, errors.CategoryValidation, errors.GetCategory(err))
	})

	t.Run("record shorter than a window", func(t *testing.T) {
		t.Parallel()
		_, err := n.Annotate(componentStream(1000), 250)
		require.Error(t, err)
		assert.Equal(t, errors.CategoryProcessing, errors.GetCategory(err))
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		t.Parallel()
		stream := componentStream(3001)
		stream[2].Data = stream[2].Data[:3000]
		_, err := n.Annotate(stream, 250)
		require.Error(t, err)
	})

	t.Run("invalid overlap", func(t *testing.T) {
		t.Parallel()
		_, err := n.Annotate(componentStream(3001), 3001)
		require.Error(t, err)
	})
}
