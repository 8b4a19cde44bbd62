package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wattgrid-hq/wattgrid-client/pkg/api"
)

// NewMetersCommand creates the meters command, which lists every meter.
func NewMetersCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "meters",
		Short: "List meters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			meters, err := sess.client.MetersDetails(cmd.Context())
			if err != nil {
				return fmt.Errorf("list meters: %w", err)
			}
			printNamedItems(cmd, meters)
			return nil
		},
	}
}

func printNamedItems(cmd *cobra.Command, items []api.NamedItem) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\n", item.ID, item.Name)
	}
	w.Flush()
}
