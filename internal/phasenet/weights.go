// weights.go: parameter access and deterministic initialization.
package phasenet

import (
	"math/rand/v2"
)

// InitDeterministic fills every convolution weight with values drawn from a
// seeded generator and leaves biases at zero and batch normalizations at
// identity. Two networks initialized with the same seed evaluate
// identically, which the tests rely on. Real deployments overwrite these
// parameters with trained values instead.
func (n *PhaseNet) InitDeterministic(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed))

	fill := func(w [][][]float64) {
		for i := range w {
			for j := range w[i] {
				for k := range w[i][j] {
					w[i][j][k] = 0.1 * rng.NormFloat64()
				}
			}
		}
	}

	fill(n.inc.Weight)
	for i := 0; i < encoderStages; i++ {
		fill(n.down[i].Conv.Weight)
	}
	for i := 0; i < decoderStages; i++ {
		fill(n.up[i].conv.Weight)
	}
	fill(n.out.Weight)
}

// SetConvParams replaces the parameters of the layer at the given position.
// Positions follow the forward order: "inc", "down0".."down3", "up0".."up3",
// "out". Unknown positions are ignored. Weight shapes are the caller's
// responsibility.
func (n *PhaseNet) SetConvParams(position string, weight [][][]float64, bias []float64) {
	switch position {
	case "inc":
		n.inc.Weight, n.inc.Bias = weight, bias
	case "down0", "down1", "down2", "down3":
		i := int(position[4] - '0')
		n.down[i].Conv.Weight, n.down[i].Conv.Bias = weight, bias
	case "up0", "up1", "up2", "up3":
		i := int(position[2] - '0')
		n.up[i].conv.Weight, n.up[i].conv.Bias = weight, bias
	case "out":
		n.out.Weight, n.out.Bias = weight, bias
	}
}

// SetBatchNormParams replaces the frozen statistics of the normalization at
// the given position. Positions mirror SetConvParams except "out", which has
// no normalization.
func (n *PhaseNet) SetBatchNormParams(position string, gamma, beta, mean, variance []float64) {
	var bn *BatchNorm1d
	switch position {
	case "inc":
		bn = n.inBN
	case "down0", "down1", "down2", "down3":
		bn = n.downBN[int(position[4]-'0')]
	case "up0", "up1", "up2", "up3":
		bn = n.up[int(position[2]-'0')].bn
	default:
		return
	}
	bn.Gamma, bn.Beta, bn.Mean, bn.Variance = gamma, beta, mean, variance
}
