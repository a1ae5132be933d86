// network.go: the encoder-decoder picker network and its forward pass.
package phasenet

import (
	"fmt"

	"github.com/claraeyoon/phasenet-go/internal/errors"
)

const (
	encoderStages = 4
	decoderStages = 4
)

// skipSources pairs each decoder stage with the retained encoder tensor it
// concatenates: index into the retained list (0 is the input stage output,
// 1..3 the first three encoder stage outputs). Declared as data so the
// pairing is part of the topology, not an artifact of call order.
var skipSources = [decoderStages]int{3, 2, 1, 0}

// upStage is one decoder stage: a transposed convolution, its batch
// normalization, and the retained encoder tensor it concatenates with.
type upStage struct {
	conv *ConvTranspose1d
	bn   *BatchNorm1d
	skip int
}

// PhaseNet is the picker network. All parameters are frozen inference-time
// state; Forward is a pure function of the input window.
type PhaseNet struct {
	Config NetworkConfig

	inc    *Conv1d
	inBN   *BatchNorm1d
	down   [encoderStages]*SamePadConv
	downBN [encoderStages]*BatchNorm1d
	up     [decoderStages]upStage
	out    *ConvTranspose1d
}

// New constructs a PhaseNet with zeroed parameters from a topology
// configuration.
//
// The decoder paddings are intentionally asymmetric: the first three stages
// reuse the computed padding of their paired encoder stage (the second with
// one unit of output padding), while the last stage uses a literal padding
// of 3. These exact values keep every decoder output aligned with its skip
// tensor; do not re-derive them from a general formula.
func New(cfg NetworkConfig) (*PhaseNet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New(fmt.Errorf("invalid network config: %w", err)).
			Component("phasenet").
			Category(errors.CategoryModelInit).
			Build()
	}

	n := &PhaseNet{Config: cfg}

	n.inc = NewConv1d(cfg.InChannels, cfg.Filters[0], 1, 1, 0, 1)
	n.inBN = NewBatchNorm1d(cfg.Filters[0])

	for i := 0; i < encoderStages; i++ {
		n.down[i] = NewSamePadConv(cfg.Filters[i], cfg.Filters[i+1], cfg.KernelSize, cfg.Stride, 1)
		n.downBN[i] = NewBatchNorm1d(cfg.Filters[i+1])
	}

	// Decoder stage i upsamples to the channel count of the encoder tensor
	// it pairs with; its input is the previous stage's concatenated tensor.
	in := cfg.Filters[encoderStages]
	for i := 0; i < decoderStages; i++ {
		skip := skipSources[i]
		out := cfg.Filters[skip]

		padding := n.down[encoderStages-1-i].Padding
		outputPadding := 0
		switch i {
		case 1:
			outputPadding = 1
		case decoderStages - 1:
			padding = 3
		}

		n.up[i] = upStage{
			conv: NewConvTranspose1d(in, out, cfg.KernelSize, cfg.Stride, padding, outputPadding),
			bn:   NewBatchNorm1d(out),
			skip: skip,
		}
		in = out + cfg.Filters[skip]
	}

	n.out = NewConvTranspose1d(in, cfg.Classes, 1, 1, 0, 0)
	return n, nil
}

// Forward evaluates one window and returns the class probability window,
// shaped classes by time with each column a categorical distribution.
// A window whose shape does not match the configuration is a caller
// contract violation and fails immediately.
func (n *PhaseNet) Forward(window [][]float64) ([][]float64, error) {
	if err := n.checkShape(window); err != nil {
		return nil, err
	}

	xIn := relu(n.inBN.Forward(n.inc.Forward(window)))

	// Retained tensors for the decoder skip concatenations: the input stage
	// output and the first three encoder stage outputs.
	var retained [encoderStages][][]float64
	retained[0] = xIn

	x := xIn
	for i := 0; i < encoderStages; i++ {
		x = relu(n.downBN[i].Forward(n.down[i].Forward(x)))
		if i < encoderStages-1 {
			retained[i+1] = x
		}
	}

	for i := 0; i < decoderStages; i++ {
		stage := n.up[i]
		x = concatChannels(relu(stage.bn.Forward(stage.conv.Forward(x))), retained[stage.skip])
	}

	return softmaxColumns(n.out.Forward(x)), nil
}

func (n *PhaseNet) checkShape(window [][]float64) error {
	if len(window) != n.Config.InChannels {
		return errors.Newf("window has %d channels, network expects %d",
			len(window), n.Config.InChannels).
			Component("phasenet").
			Category(errors.CategoryValidation).
			Context("channels", len(window)).
			Build()
	}
	for i, row := range window {
		if len(row) != n.Config.WindowSamples {
			return errors.Newf("window channel %d has %d samples, network expects %d",
				i, len(row), n.Config.WindowSamples).
				Component("phasenet").
				Category(errors.CategoryValidation).
				Context("samples", len(row)).
				Build()
		}
	}
	return nil
}
