// preprocess.go: window conditioning applied before the forward pass.
package phasenet

import (
	"gonum.org/v1/gonum/stat"
)

// PreprocessWindow demeans and normalizes each channel of a window by its
// own standard deviation over the time axis. A channel with zero variance
// gets a divisor of 1, so it comes out all zero instead of NaN. The input
// is not modified.
func PreprocessWindow(window [][]float64) [][]float64 {
	out := make([][]float64, len(window))
	for c, row := range window {
		mean := stat.Mean(row, nil)
		std := stat.PopStdDev(row, nil)
		if std == 0 {
			std = 1
		}
		norm := make([]float64, len(row))
		for j, v := range row {
			norm[j] = (v - mean) / std
		}
		out[c] = norm
	}
	return out
}
