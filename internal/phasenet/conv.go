// conv.go: 1-D convolution primitives the picker network is built from.
package phasenet

import (
	"math"
)

// Conv1d is a plain 1-D convolution over a channels-by-time input.
// Weight is indexed [out][in][tap].
type Conv1d struct {
	InChannels  int
	OutChannels int
	KernelSize  int
	Stride      int
	Padding     int
	Dilation    int
	Weight      [][][]float64
	Bias        []float64
}

// NewConv1d allocates a convolution with zeroed parameters.
func NewConv1d(in, out, kernel, stride, padding, dilation int) *Conv1d {
	return &Conv1d{
		InChannels:  in,
		OutChannels: out,
		KernelSize:  kernel,
		Stride:      stride,
		Padding:     padding,
		Dilation:    dilation,
		Weight:      newWeight(out, in, kernel),
		Bias:        make([]float64, out),
	}
}

// OutLen returns the output length for an input of n samples.
func (c *Conv1d) OutLen(n int) int {
	return (n+2*c.Padding-c.Dilation*(c.KernelSize-1)-1)/c.Stride + 1
}

// Forward computes the cross-correlation of x with the kernel. Input
// positions outside x contribute zero (implicit zero padding).
func (c *Conv1d) Forward(x [][]float64) [][]float64 {
	n := len(x[0])
	outLen := c.OutLen(n)
	out := make([][]float64, c.OutChannels)

	for o := 0; o < c.OutChannels; o++ {
		row := make([]float64, outLen)
		for j := 0; j < outLen; j++ {
			acc := c.Bias[o]
			base := j*c.Stride - c.Padding
			for i := 0; i < c.InChannels; i++ {
				xi := x[i]
				wi := c.Weight[o][i]
				for k := 0; k < c.KernelSize; k++ {
					pos := base + k*c.Dilation
					if pos >= 0 && pos < n {
						acc += wi[k] * xi[pos]
					}
				}
			}
			row[j] = acc
		}
		out[o] = row
	}
	return out
}

// ConvTranspose1d is a 1-D transposed convolution. Weight is indexed
// [in][out][tap], matching the forward convolution it inverts.
type ConvTranspose1d struct {
	InChannels    int
	OutChannels   int
	KernelSize    int
	Stride        int
	Padding       int
	OutputPadding int
	Weight        [][][]float64
	Bias          []float64
}

// NewConvTranspose1d allocates a transposed convolution with zeroed parameters.
func NewConvTranspose1d(in, out, kernel, stride, padding, outputPadding int) *ConvTranspose1d {
	return &ConvTranspose1d{
		InChannels:    in,
		OutChannels:   out,
		KernelSize:    kernel,
		Stride:        stride,
		Padding:       padding,
		OutputPadding: outputPadding,
		Weight:        newWeight(in, out, kernel),
		Bias:          make([]float64, out),
	}
}

// OutLen returns the output length for an input of n samples.
func (c *ConvTranspose1d) OutLen(n int) int {
	return (n-1)*c.Stride - 2*c.Padding + c.KernelSize + c.OutputPadding
}

// Forward scatters each input sample across the kernel support, the adjoint
// of the corresponding strided convolution.
func (c *ConvTranspose1d) Forward(x [][]float64) [][]float64 {
	n := len(x[0])
	outLen := c.OutLen(n)
	out := make([][]float64, c.OutChannels)
	for o := range out {
		row := make([]float64, outLen)
		for j := range row {
			row[j] = c.Bias[o]
		}
		out[o] = row
	}

	for i := 0; i < c.InChannels; i++ {
		xi := x[i]
		for o := 0; o < c.OutChannels; o++ {
			w := c.Weight[i][o]
			row := out[o]
			for t := 0; t < n; t++ {
				v := xi[t]
				if v == 0 {
					continue
				}
				base := t*c.Stride - c.Padding
				for k := 0; k < c.KernelSize; k++ {
					pos := base + k
					if pos >= 0 && pos < outLen {
						row[pos] += v * w[k]
					}
				}
			}
		}
	}
	return out
}

// SamePadConv wraps Conv1d with the TensorFlow style "same" padding
// convention: for unit stride the output length equals the input length,
// and for larger strides the output aligns with TensorFlow's strided
// "same" convolution. For even kernels at unit stride with odd dilation
// one surplus trailing sample is trimmed from the output. The trim rule
// and the strided padding are load-bearing; changing either breaks
// output alignment with the decoder.
type SamePadConv struct {
	Conv     *Conv1d
	Padding  int // computed symmetric padding, before the strided +1 adjustment
	trimLast bool
}

// NewSamePadConv constructs a same-padding convolution.
//
// Strided convolutions get one padding unit beyond the computed symmetric
// value; without it the strided output comes up one sample short of the
// TensorFlow "same" length. At unit stride the computed value is already
// exact, so the extra unit is not applied there.
func NewSamePadConv(in, out, kernel, stride, dilation int) *SamePadConv {
	padding := int(math.Ceil(float64(1-stride+dilation*(kernel-1)) / 2))
	effective := padding
	if stride > 1 {
		effective = padding + 1
	}
	return &SamePadConv{
		Conv:     NewConv1d(in, out, kernel, stride, effective, dilation),
		Padding:  padding,
		trimLast: kernel%2 == 0 && stride == 1 && dilation%2 == 1,
	}
}

// OutLen returns the output length for an input of n samples, including the
// trailing trim when it applies.
func (c *SamePadConv) OutLen(n int) int {
	out := c.Conv.OutLen(n)
	if c.trimLast {
		out--
	}
	return out
}

// Forward evaluates the convolution and applies the trailing trim.
func (c *SamePadConv) Forward(x [][]float64) [][]float64 {
	out := c.Conv.Forward(x)
	if c.trimLast {
		for i := range out {
			out[i] = out[i][:len(out[i])-1]
		}
	}
	return out
}

func newWeight(a, b, k int) [][][]float64 {
	w := make([][][]float64, a)
	for i := range w {
		w[i] = make([][]float64, b)
		for j := range w[i] {
			w[i][j] = make([]float64, k)
		}
	}
	return w
}
