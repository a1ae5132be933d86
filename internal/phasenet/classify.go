// classify.go: conversion of continuous probability traces into discrete picks.
package phasenet

import (
	"slices"
	"strings"
	"time"

	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/claraeyoon/phasenet-go/internal/seis"
)

// Pick is one phase arrival: where it was seen, when, and which phase.
// Picks are immutable once emitted.
type Pick struct {
	TraceID string    // station identity "network.station.location"
	Time    time.Time // absolute onset time
	Phase   string    // phase label, never the noise class
}

// Compare orders picks by trace identity, then onset time, then phase label.
func (p Pick) Compare(o Pick) int {
	if c := strings.Compare(p.TraceID, o.TraceID); c != 0 {
		return c
	}
	if c := p.Time.Compare(o.Time); c != 0 {
		return c
	}
	return strings.Compare(p.Phase, o.Phase)
}

// ClassifyStream runs trigger onset detection over the annotated probability
// traces and returns the picks, globally sorted.
//
// The noise class is never picked. Each remaining phase resolves its
// trigger-on threshold from the settings (default applies when no explicit
// entry exists); the trigger-off threshold is always half the trigger-on
// threshold. Only the onset sample of each trigger interval is used.
func (n *PhaseNet) ClassifyStream(annotations seis.Stream, settings *conf.ModelSettings) []Pick {
	var picks []Pick

	for _, phase := range n.Config.PhaseLabels() {
		if phase == settings.NoisePhase {
			// Don't pick noise.
			continue
		}

		threshold := settings.ThresholdFor(phase)
		for _, trace := range annotations.Select(ModelName + "_" + phase) {
			traceID := trace.SourceID()
			for _, trigger := range seis.TriggerOnset(trace.Data, threshold, threshold/2) {
				picks = append(picks, Pick{
					TraceID: traceID,
					Time:    trace.TimeAt(trigger.On),
					Phase:   phase,
				})
			}
		}
	}

	slices.SortFunc(picks, Pick.Compare)
	return picks
}
