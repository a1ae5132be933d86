package picks

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/claraeyoon/phasenet-go/internal/datastore"
	"github.com/claraeyoon/phasenet-go/internal/errors"
)

// Command creates the picks command for listing stored picks.
func Command(settings *conf.Settings) *cobra.Command {
	var traceID string

	cmd := &cobra.Command{
		Use:   "picks",
		Short: "List stored picks",
		Long:  `List picks stored in the configured SQLite database, optionally filtered by trace identity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Output.SQLite.Enabled = true
			store := datastore.New(settings)
			if store == nil {
				return errors.Newf("no datastore configured").
					Component("cmd").
					Category(errors.CategoryConfiguration).
					Build()
			}
			if err := store.Open(); err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var (
				rows []datastore.Pick
				err  error
			)
			if traceID != "" {
				rows, err = store.PicksByTrace(traceID)
			} else {
				rows, err = store.GetAllPicks()
			}
			if err != nil {
				return err
			}

			for _, p := range rows {
				fmt.Printf("%-16s %s %-2s %.2f\n", p.TraceID, p.Time.Format(time.RFC3339Nano), p.Phase, p.Threshold)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&traceID, "trace", "", "Only show picks for this trace identity (network.station.location)")

	return cmd
}
