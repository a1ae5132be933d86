// config.go: the picker network topology described as data.
package phasenet

import (
	"fmt"
)

// NetworkConfig describes the encoder-decoder topology. Channel counts and
// the kernel/stride pair are part of the model contract; changing them
// requires re-instantiating the network.
type NetworkConfig struct {
	InChannels    int    // waveform components per window
	Classes       int    // output phase classes
	Phases        string // class labels in output order, e.g. "NPS"
	KernelSize    int
	Stride        int
	Filters       []int // encoder channel progression, input stage first
	WindowSamples int   // samples per window
}

// DefaultNetworkConfig returns the reference configuration: three component
// input, three phase classes, 3001 sample windows, kernel 7 and stride 4
// with the 8-11-16-22-32 channel progression.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		InChannels:    3,
		Classes:       3,
		Phases:        "NPS",
		KernelSize:    7,
		Stride:        4,
		Filters:       []int{8, 11, 16, 22, 32},
		WindowSamples: 3001,
	}
}

// Validate checks the structural constraints the forward pass relies on.
func (cfg *NetworkConfig) Validate() error {
	if cfg.InChannels <= 0 {
		return fmt.Errorf("in channels must be positive, got %d", cfg.InChannels)
	}
	if cfg.Classes <= 0 {
		return fmt.Errorf("classes must be positive, got %d", cfg.Classes)
	}
	if len(cfg.Phases) != cfg.Classes {
		return fmt.Errorf("phases %q must name exactly %d classes", cfg.Phases, cfg.Classes)
	}
	if len(cfg.Filters) != encoderStages+1 {
		return fmt.Errorf("filters must list %d channel counts, got %d", encoderStages+1, len(cfg.Filters))
	}
	if cfg.KernelSize <= 0 || cfg.Stride <= 0 {
		return fmt.Errorf("kernel size and stride must be positive, got %d and %d", cfg.KernelSize, cfg.Stride)
	}
	if cfg.WindowSamples <= 0 {
		return fmt.Errorf("window samples must be positive, got %d", cfg.WindowSamples)
	}
	return nil
}

// PhaseLabels returns the class labels as strings in output order.
func (cfg *NetworkConfig) PhaseLabels() []string {
	labels := make([]string, 0, len(cfg.Phases))
	for _, p := range cfg.Phases {
		labels = append(labels, string(p))
	}
	return labels
}
