// Package seis provides the minimal waveform model the picker consumes:
// traces with station metadata, streams, and trigger onset detection.
package seis

import (
	"fmt"
	"time"
)

// Trace is a single continuous, evenly sampled waveform component.
type Trace struct {
	Network      string
	Station      string
	Location     string
	Channel      string
	StartTime    time.Time
	SamplingRate float64 // samples per second
	Data         []float64
}

// SourceID returns the station identity string "network.station.location".
func (t *Trace) SourceID() string {
	return fmt.Sprintf("%s.%s.%s", t.Network, t.Station, t.Location)
}

// Delta returns the time spacing between consecutive samples.
func (t *Trace) Delta() time.Duration {
	return time.Duration(float64(time.Second) / t.SamplingRate)
}

// TimeAt returns the absolute time of sample index i.
func (t *Trace) TimeAt(i int) time.Time {
	offset := time.Duration(float64(i) * float64(time.Second) / t.SamplingRate)
	return t.StartTime.Add(offset)
}

// EndTime returns the absolute time of the last sample.
func (t *Trace) EndTime() time.Time {
	if len(t.Data) == 0 {
		return t.StartTime
	}
	return t.TimeAt(len(t.Data) - 1)
}

// Stream is an ordered collection of traces.
type Stream []*Trace

// Select returns the traces whose channel code matches exactly.
func (s Stream) Select(channel string) Stream {
	var out Stream
	for _, tr := range s {
		if tr.Channel == channel {
			out = append(out, tr)
		}
	}
	return out
}
