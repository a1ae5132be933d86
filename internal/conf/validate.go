// validate.go: validation of loaded settings, applied before any component starts.
package conf

import (
	"fmt"
	"strings"
)

// ValidateSettings checks the loaded settings for consistency. Threshold
// entries are validated here so that pick extraction never has to handle a
// malformed threshold at runtime.
func ValidateSettings(settings *Settings) error {
	if err := validateModelSettings(&settings.Model); err != nil {
		return err
	}
	if settings.MQTT.Enabled && settings.MQTT.Broker == "" {
		return fmt.Errorf("mqtt enabled but no broker configured")
	}
	if settings.Telemetry.Enabled && settings.Telemetry.Listen == "" {
		return fmt.Errorf("telemetry enabled but no listen address configured")
	}
	return nil
}

func validateModelSettings(m *ModelSettings) error {
	if m.Phases == "" {
		return fmt.Errorf("model phases must not be empty")
	}
	seen := map[rune]bool{}
	for _, p := range m.Phases {
		if seen[p] {
			return fmt.Errorf("duplicate phase label %q", string(p))
		}
		seen[p] = true
	}
	if m.NoisePhase != "" && !strings.Contains(m.Phases, m.NoisePhase) {
		return fmt.Errorf("noise phase %q not among phases %q", m.NoisePhase, m.Phases)
	}
	if m.InChannels <= 0 {
		return fmt.Errorf("model inchannels must be positive, got %d", m.InChannels)
	}
	if m.WindowSamples <= 0 {
		return fmt.Errorf("model windowsamples must be positive, got %d", m.WindowSamples)
	}
	if m.Overlap < 0 || m.Overlap >= m.WindowSamples {
		return fmt.Errorf("model overlap must be in [0, %d), got %d", m.WindowSamples, m.Overlap)
	}
	if m.SamplingRate <= 0 {
		return fmt.Errorf("model samplingrate must be positive, got %g", m.SamplingRate)
	}
	if m.DefaultThreshold <= 0 || m.DefaultThreshold > 1 {
		return fmt.Errorf("model defaultthreshold must be in (0, 1], got %g", m.DefaultThreshold)
	}
	for phase, threshold := range m.Thresholds {
		if !strings.Contains(m.Phases, phase) {
			return fmt.Errorf("threshold configured for unknown phase %q", phase)
		}
		if threshold <= 0 || threshold > 1 {
			return fmt.Errorf("threshold for phase %q must be in (0, 1], got %g", phase, threshold)
		}
	}
	return nil
}
