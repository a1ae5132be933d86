package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/claraeyoon/phasenet-go/cmd/file"
	"github.com/claraeyoon/phasenet-go/cmd/picks"
	"github.com/claraeyoon/phasenet-go/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phasenet",
		Short: "PhaseNet-Go CLI",
		Long:  `Seismic phase arrival picking from three-component waveform records.`,
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		file.Command(settings),
		picks.Command(settings),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Sync the settings struct with viper so command line arguments
		// take precedence over the config file.
		return viper.Unmarshal(settings)
	}

	return rootCmd
}

// setupFlags configures the global flags for the root command.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")
	rootCmd.PersistentFlags().IntVar(&settings.Model.Overlap, "overlap", settings.Model.Overlap, "Window overlap in samples")
	rootCmd.PersistentFlags().Float64Var(&settings.Model.DefaultThreshold, "threshold", settings.Model.DefaultThreshold, "Default trigger-on probability threshold")
	rootCmd.PersistentFlags().StringVar(&settings.Output.SQLite.Path, "db", settings.Output.SQLite.Path, "Path to the SQLite pick database")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("model.overlap", rootCmd.PersistentFlags().Lookup("overlap"))
	_ = viper.BindPFlag("model.defaultthreshold", rootCmd.PersistentFlags().Lookup("threshold"))
	_ = viper.BindPFlag("output.sqlite.path", rootCmd.PersistentFlags().Lookup("db"))
}
