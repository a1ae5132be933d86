// layers.go: batch normalization and activations used between convolutions.
package phasenet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const batchNormEps = 1e-5

// BatchNorm1d normalizes each channel with frozen population statistics.
// The statistics are inference time parameters of the network instance;
// nothing here mutates them per call.
type BatchNorm1d struct {
	Channels int
	Gamma    []float64
	Beta     []float64
	Mean     []float64
	Variance []float64
}

// NewBatchNorm1d allocates an identity batch normalization (gamma 1,
// beta 0, mean 0, variance 1).
func NewBatchNorm1d(channels int) *BatchNorm1d {
	bn := &BatchNorm1d{
		Channels: channels,
		Gamma:    make([]float64, channels),
		Beta:     make([]float64, channels),
		Mean:     make([]float64, channels),
		Variance: make([]float64, channels),
	}
	for i := 0; i < channels; i++ {
		bn.Gamma[i] = 1
		bn.Variance[i] = 1
	}
	return bn
}

// Forward applies the affine normalization channel by channel.
func (bn *BatchNorm1d) Forward(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for c := range x {
		scale := bn.Gamma[c] / math.Sqrt(bn.Variance[c]+batchNormEps)
		shift := bn.Beta[c] - bn.Mean[c]*scale
		row := make([]float64, len(x[c]))
		for j, v := range x[c] {
			row[j] = v*scale + shift
		}
		out[c] = row
	}
	return out
}

// relu applies the rectified linear activation in place and returns x.
func relu(x [][]float64) [][]float64 {
	for c := range x {
		for j, v := range x[c] {
			if v < 0 {
				x[c][j] = 0
			}
		}
	}
	return x
}

// softmaxColumns normalizes each time index across channels into a
// categorical distribution. The per-column max is subtracted before
// exponentiation for numeric stability.
func softmaxColumns(x [][]float64) [][]float64 {
	classes := len(x)
	n := len(x[0])
	out := make([][]float64, classes)
	for c := range out {
		out[c] = make([]float64, n)
	}

	col := make([]float64, classes)
	for j := 0; j < n; j++ {
		for c := 0; c < classes; c++ {
			col[c] = x[c][j]
		}
		maxVal := floats.Max(col)
		sum := 0.0
		for c := 0; c < classes; c++ {
			col[c] = math.Exp(col[c] - maxVal)
			sum += col[c]
		}
		for c := 0; c < classes; c++ {
			out[c][j] = col[c] / sum
		}
	}
	return out
}

// concatChannels stacks the channels of a followed by the channels of b,
// sharing the underlying rows.
func concatChannels(a, b [][]float64) [][]float64 {
	out := make([][]float64, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
