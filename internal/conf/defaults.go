// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "PhaseNet-Go")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "phasenet.log")

	viper.SetDefault("model.phases", "NPS")
	viper.SetDefault("model.noisephase", "N")
	viper.SetDefault("model.inchannels", 3)
	viper.SetDefault("model.windowsamples", 3001)
	viper.SetDefault("model.overlap", 250)
	viper.SetDefault("model.samplingrate", 100.0)
	viper.SetDefault("model.defaultthreshold", 0.3)
	viper.SetDefault("model.thresholds", map[string]float64{})

	viper.SetDefault("output.sqlite.enabled", false)
	viper.SetDefault("output.sqlite.path", "picks.db")

	viper.SetDefault("mqtt.enabled", false)
	viper.SetDefault("mqtt.broker", "tcp://localhost:1883")
	viper.SetDefault("mqtt.topic", "phasenet/picks")

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.listen", "0.0.0.0:8090")
}
