// annotate.go: sliding-window evaluation of a continuous record.
package phasenet

import (
	"github.com/claraeyoon/phasenet-go/internal/errors"
	"github.com/claraeyoon/phasenet-go/internal/seis"
)

// ModelName tags the probability traces the annotator produces.
const ModelName = "PhaseNet"

// Annotate slices a continuous multicomponent record into overlapping
// windows, evaluates each one, and stitches the per-class probability
// columns back into continuous traces, one per phase label, named
// "PhaseNet_<phase>". In overlap regions the later window wins.
//
// The stream must carry exactly one trace per input channel, all with the
// same start time, sampling rate and length of at least one window.
func (n *PhaseNet) Annotate(stream seis.Stream, overlap int) (seis.Stream, error) {
	if err := n.checkStream(stream, overlap); err != nil {
		return nil, err
	}

	data := make([][]float64, len(stream))
	for i, tr := range stream {
		data[i] = tr.Data
	}

	total := len(data[0])
	window := n.Config.WindowSamples
	classes := n.Config.Classes

	stitched := make([][]float64, classes)
	for c := range stitched {
		stitched[c] = make([]float64, total)
	}

	step := window - overlap
	for start := 0; ; start += step {
		if start+window > total {
			// Align the final window to the end of the record.
			start = total - window
		}

		slice := make([][]float64, len(data))
		for i := range data {
			slice[i] = data[i][start : start+window]
		}

		pred, err := n.Forward(PreprocessWindow(slice))
		if err != nil {
			return nil, err
		}

		rows := PostprocessWindow(pred)
		for j, row := range rows {
			for c, v := range row {
				stitched[c][start+j] = v
			}
		}

		if start+window >= total {
			break
		}
	}

	ref := stream[0]
	out := make(seis.Stream, 0, classes)
	for c, label := range n.Config.PhaseLabels() {
		out = append(out, &seis.Trace{
			Network:      ref.Network,
			Station:      ref.Station,
			Location:     ref.Location,
			Channel:      ModelName + "_" + label,
			StartTime:    ref.StartTime,
			SamplingRate: ref.SamplingRate,
			Data:         stitched[c],
		})
	}
	return out, nil
}

func (n *PhaseNet) checkStream(stream seis.Stream, overlap int) error {
	if len(stream) != n.Config.InChannels {
		return errors.Newf("record has %d component traces, network expects %d",
			len(stream), n.Config.InChannels).
			Component("phasenet").
			Category(errors.CategoryValidation).
			Build()
	}
	total := len(stream[0].Data)
	if total < n.Config.WindowSamples {
		return errors.Newf("record has %d samples, need at least %d",
			total, n.Config.WindowSamples).
			Component("phasenet").
			Category(errors.CategoryProcessing).
			Context("samples", total).
			Build()
	}
	for _, tr := range stream[1:] {
		if len(tr.Data) != total {
			return errors.Newf("component traces have mismatched lengths (%d vs %d)",
				len(tr.Data), total).
				Component("phasenet").
				Category(errors.CategoryValidation).
				Build()
		}
		if !tr.StartTime.Equal(stream[0].StartTime) || tr.SamplingRate != stream[0].SamplingRate {
			return errors.Newf("component traces are not aligned").
				Component("phasenet").
				Category(errors.CategoryValidation).
				Build()
		}
	}
	if overlap < 0 || overlap >= n.Config.WindowSamples {
		return errors.Newf("overlap %d must be in [0, %d)", overlap, n.Config.WindowSamples).
			Component("phasenet").
			Category(errors.CategoryValidation).
			Build()
	}
	return nil
}
