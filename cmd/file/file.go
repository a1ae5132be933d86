package file

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/claraeyoon/phasenet-go/internal/analysis"
	"github.com/claraeyoon/phasenet-go/internal/conf"
)

// Command creates the file command for analyzing a single waveform record.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file [record.yaml]",
		Short: "Analyze a waveform record file",
		Long:  `Analyze a single three-component waveform record for phase arrivals.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analysis.FileAnalysis(cmd.Context(), settings, args[0])
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the file command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().BoolVar(&settings.Output.SQLite.Enabled, "store", settings.Output.SQLite.Enabled, "Store picks in the SQLite database")
	cmd.Flags().BoolVar(&settings.MQTT.Enabled, "publish", settings.MQTT.Enabled, "Publish picks to the MQTT broker")

	_ = viper.BindPFlag("output.sqlite.enabled", cmd.Flags().Lookup("store"))
	_ = viper.BindPFlag("mqtt.enabled", cmd.Flags().Lookup("publish"))
}
