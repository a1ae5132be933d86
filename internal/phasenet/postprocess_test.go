package phasenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostprocessWindowTransposes(t *testing.T) {
	t.Parallel()

	pred := [][]float64{
		{0.1, 0.2, 0.3},
		{0.9, 0.8, 0.7},
	}

	out := PostprocessWindow(pred)
	require.Len(t, out, 3)
	assert.Equal(t, []float64{0.1, 0.9}, out[0])
	assert.Equal(t, []float64{0.2, 0.8}, out[1])
	assert.Equal(t, []float64{0.3, 0.7}, out[2])
}

func TestPostprocessWindowRoundTrip(t *testing.T) {
	t.Parallel()

	pred := [][]float64{
		{0.5, 0.25, 0.125},
		{0.25, 0.5, 0.25},
		{0.25, 0.25, 0.625},
	}

	assert.Equal(t, pred, PostprocessWindow(PostprocessWindow(pred)))
}

func TestPostprocessWindowEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, PostprocessWindow(nil))
}
