package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wattgrid-hq/wattgrid-client/pkg/api"
)

// PrefsSetOptions holds options for the prefs set command.
type PrefsSetOptions struct {
	*GlobalOptions
	Title       string
	Chart       string
	BarStacking bool
	Language    string
}

// NewPrefsCommand creates the prefs command with get and set subcommands.
func NewPrefsCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or replace site display preferences",
	}
	cmd.AddCommand(newPrefsGetCommand(globalOpts))
	cmd.AddCommand(newPrefsSetCommand(globalOpts))
	return cmd
}

func newPrefsGetCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show site display preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			prefs, err := sess.client.GetPreferences(cmd.Context())
			if err != nil {
				return fmt.Errorf("get preferences: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "display title:  %s\n", prefs.DisplayTitle)
			fmt.Fprintf(out, "default chart:  %s\n", prefs.DefaultChartToRender)
			fmt.Fprintf(out, "bar stacking:   %v\n", prefs.DefaultBarStacking)
			fmt.Fprintf(out, "language:       %s\n", prefs.DefaultLanguage)
			return nil
		},
	}
}

func newPrefsSetCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &PrefsSetOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace site display preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(opts.GlobalOptions)
			if err != nil {
				return err
			}
			defer cleanup()

			prefs := api.Preferences{
				DisplayTitle:         opts.Title,
				DefaultChartToRender: opts.Chart,
				DefaultBarStacking:   opts.BarStacking,
				DefaultLanguage:      opts.Language,
			}
			if err := sess.client.SubmitPreferences(cmd.Context(), prefs); err != nil {
				return fmt.Errorf("submit preferences: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "preferences updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "display title")
	cmd.Flags().StringVar(&opts.Chart, "chart", "line", "default chart to render")
	cmd.Flags().BoolVar(&opts.BarStacking, "bar-stacking", false, "stack bars by default")
	cmd.Flags().StringVar(&opts.Language, "language", "en", "default language")
	return cmd
}
