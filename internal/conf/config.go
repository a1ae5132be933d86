// config.go: settings struct and functions to load and validate the application configuration.
package conf

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// MainSettings contains application wide settings.
type MainSettings struct {
	Name string // name of this node, used as client id and pick source tag
	Log  struct {
		Enabled bool   // true to enable file logging
		Path    string // path to log file
	}
}

// ModelSettings describes the shape of the picker network and how its
// continuous output is turned into picks.
type ModelSettings struct {
	Phases           string             // class labels in network output order, e.g. "NPS"
	NoisePhase       string             // label that is never picked
	InChannels       int                // waveform components per window
	WindowSamples    int                // samples per analysis window
	Overlap          int                // samples of overlap between consecutive windows
	SamplingRate     float64            // samples per second of the input waveform
	DefaultThreshold float64            // trigger-on threshold for phases without an explicit entry
	Thresholds       map[string]float64 // phase label -> trigger-on threshold
}

// ThresholdFor resolves the trigger-on threshold for a phase label.
// Phases without an explicit entry fall back to the default.
func (m *ModelSettings) ThresholdFor(phase string) float64 {
	if v, ok := m.Thresholds[phase]; ok {
		return v
	}
	return m.DefaultThreshold
}

// SQLiteSettings contains SQLite database settings.
type SQLiteSettings struct {
	Enabled bool   // true to enable pick storage in SQLite
	Path    string // path to the database file
}

// OutputSettings contains pick output settings.
type OutputSettings struct {
	SQLite SQLiteSettings
}

// MQTTSettings contains settings for pick publishing over MQTT.
type MQTTSettings struct {
	Enabled  bool   // true to enable MQTT publishing
	Broker   string // MQTT broker URL, e.g. tcp://localhost:1883
	Topic    string // topic picks are published to
	Username string
	Password string
}

// TelemetrySettings contains settings for the Prometheus endpoint.
type TelemetrySettings struct {
	Enabled bool   // true to expose Prometheus metrics
	Listen  string // listen address, e.g. 0.0.0.0:8090
}

// Settings is the root of the application configuration.
type Settings struct {
	Debug bool

	Main      MainSettings
	Model     ModelSettings
	Output    OutputSettings
	MQTT      MQTTSettings
	Telemetry TelemetrySettings
}

var (
	settingsMutex    sync.RWMutex
	settingsInstance *Settings
)

// Load reads the configuration file and environment variables into a Settings struct.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// Get returns the current settings instance, or nil if Load has not run.
func Get() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/phasenet-go")

	viper.SetEnvPrefix("phasenet")
	viper.AutomaticEnv()

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults and flags apply.
	}
	return nil
}
