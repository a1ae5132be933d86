package seis

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/claraeyoon/phasenet-go/internal/errors"
	"gopkg.in/yaml.v3"
)

// recordHeader is the on-disk YAML description of a multicomponent record.
// Sample data lives either inline (data) or in a sidecar file of interleaved
// little-endian float32 frames (datafile), one value per channel per frame.
type recordHeader struct {
	Network      string      `yaml:"network"`
	Station      string      `yaml:"station"`
	Location     string      `yaml:"location"`
	StartTime    time.Time   `yaml:"starttime"`
	SamplingRate float64     `yaml:"samplingrate"`
	Channels     []string    `yaml:"channels"`
	DataFile     string      `yaml:"datafile,omitempty"`
	Data         [][]float64 `yaml:"data,omitempty"`
}

// ReadRecord loads a record description and returns one trace per channel.
// All traces share the record's station metadata, start time and sampling
// rate.
func ReadRecord(path string) (Stream, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(fmt.Errorf("reading record %s: %w", path, err)).
			Component("seis").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}

	var hdr recordHeader
	if err := yaml.Unmarshal(raw, &hdr); err != nil {
		return nil, errors.New(fmt.Errorf("parsing record %s: %w", path, err)).
			Component("seis").
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}

	if len(hdr.Channels) == 0 {
		return nil, errors.Newf("record %s declares no channels", path).
			Component("seis").
			Category(errors.CategoryFileParsing).
			Build()
	}
	if hdr.SamplingRate <= 0 {
		return nil, errors.Newf("record %s has invalid sampling rate %g", path, hdr.SamplingRate).
			Component("seis").
			Category(errors.CategoryFileParsing).
			Build()
	}

	data := hdr.Data
	if hdr.DataFile != "" {
		data, err = readInterleaved(filepath.Join(filepath.Dir(path), hdr.DataFile), len(hdr.Channels))
		if err != nil {
			return nil, err
		}
	}
	if len(data) != len(hdr.Channels) {
		return nil, errors.Newf("record %s: %d channels declared but %d data series present",
			path, len(hdr.Channels), len(data)).
			Component("seis").
			Category(errors.CategoryFileParsing).
			Build()
	}

	stream := make(Stream, 0, len(hdr.Channels))
	for i, channel := range hdr.Channels {
		stream = append(stream, &Trace{
			Network:      hdr.Network,
			Station:      hdr.Station,
			Location:     hdr.Location,
			Channel:      channel,
			StartTime:    hdr.StartTime,
			SamplingRate: hdr.SamplingRate,
			Data:         data[i],
		})
	}
	return stream, nil
}

// readInterleaved reads frames of one float32 per channel and splits them
// into per-channel series.
func readInterleaved(path string, channels int) ([][]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(fmt.Errorf("reading samples %s: %w", path, err)).
			Component("seis").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}

	frameSize := 4 * channels
	if len(raw)%frameSize != 0 {
		return nil, errors.Newf("sample file %s length %d is not a multiple of frame size %d",
			path, len(raw), frameSize).
			Component("seis").
			Category(errors.CategoryFileParsing).
			Build()
	}

	frames := len(raw) / frameSize
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
	}
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			bits := binary.LittleEndian.Uint32(raw[(f*channels+c)*4:])
			data[c][f] = float64(math.Float32frombits(bits))
		}
	}
	return data, nil
}
