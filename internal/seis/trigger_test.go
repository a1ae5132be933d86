package seis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerOnset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []float64
		on   float64
		off  float64
		want []TriggerInterval
	}{
		{
			name: "single interval",
			data: []float64{0, 0.1, 0.5, 0.6, 0.2, 0.05, 0},
			on:   0.4,
			off:  0.1,
			want: []TriggerInterval{{On: 2, Off: 5}},
		},
		{
			name: "two intervals",
			data: []float64{0, 0.5, 0.05, 0, 0.7, 0.6, 0.01},
			on:   0.4,
			off:  0.1,
			want: []TriggerInterval{{On: 1, Off: 2}, {On: 4, Off: 6}},
		},
		{
			name: "never triggered",
			data: []float64{0.1, 0.2, 0.3},
			on:   0.4,
			off:  0.1,
			want: nil,
		},
		{
			name: "still active at end",
			data: []float64{0, 0.9, 0.8, 0.7},
			on:   0.4,
			off:  0.1,
			want: []TriggerInterval{{On: 1, Off: 3}},
		},
		{
			name: "stays between thresholds until drop",
			data: []float64{0, 0.5, 0.3, 0.2, 0.3, 0.05},
			on:   0.4,
			off:  0.1,
			want: []TriggerInterval{{On: 1, Off: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TriggerOnset(tt.data, tt.on, tt.off)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriggerOnsetEmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, TriggerOnset(nil, 0.3, 0.15))
}
