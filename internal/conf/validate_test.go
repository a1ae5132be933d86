package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModelSettings() ModelSettings {
	return ModelSettings{
		Phases:           "NPS",
		NoisePhase:       "N",
		InChannels:       3,
		WindowSamples:    3001,
		Overlap:          250,
		SamplingRate:     100.0,
		DefaultThreshold: 0.3,
		Thresholds:       map[string]float64{"P": 0.5},
	}
}

func TestValidateSettingsAcceptsDefaults(t *testing.T) {
	t.Parallel()

	settings := &Settings{Model: validModelSettings()}
	require.NoError(t, ValidateSettings(settings))
}

func TestValidateModelSettingsRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*ModelSettings)
	}{
		{"empty phases", func(m *ModelSettings) { m.Phases = "" }},
		{"duplicate phase", func(m *ModelSettings) { m.Phases = "NPP" }},
		{"noise not a phase", func(m *ModelSettings) { m.NoisePhase = "X" }},
		{"zero channels", func(m *ModelSettings) { m.InChannels = 0 }},
		{"zero window", func(m *ModelSettings) { m.WindowSamples = 0 }},
		{"negative overlap", func(m *ModelSettings) { m.Overlap = -1 }},
		{"overlap too large", func(m *ModelSettings) { m.Overlap = 3001 }},
		{"zero sampling rate", func(m *ModelSettings) { m.SamplingRate = 0 }},
		{"default threshold above one", func(m *ModelSettings) { m.DefaultThreshold = 1.5 }},
		{"threshold for unknown phase", func(m *ModelSettings) { m.Thresholds = map[string]float64{"X": 0.4} }},
		{"threshold out of range", func(m *ModelSettings) { m.Thresholds = map[string]float64{"P": 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := validModelSettings()
			tt.mutate(&m)
			assert.Error(t, ValidateSettings(&Settings{Model: m}))
		})
	}
}

func TestThresholdFor(t *testing.T) {
	t.Parallel()

	m := validModelSettings()
	assert.InDelta(t, 0.5, m.ThresholdFor("P"), 1e-12)
	assert.InDelta(t, 0.3, m.ThresholdFor("S"), 1e-12)
}
