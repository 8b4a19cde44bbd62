package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

// NewUploadCommand creates the upload command, which submits a CSV of new
// readings for one meter.
func NewUploadCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload METER_ID FILE",
		Short: "Upload a CSV of new readings for a meter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			meterID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid meter id %q", args[0])
			}

			file, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer file.Close()

			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.client.SubmitNewMeterReadings(cmd.Context(), meterID, filepath.Base(args[1]), file); err != nil {
				return fmt.Errorf("upload readings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s for meter %d\n", filepath.Base(args[1]), meterID)
			return nil
		},
	}
}
