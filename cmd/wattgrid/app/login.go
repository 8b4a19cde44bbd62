package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LoginOptions holds options for the login command.
type LoginOptions struct {
	*GlobalOptions
	Email    string
	Password string
}

// NewLoginCommand creates the login command. A successful login stores the
// session token so later authenticated commands pick it up.
func NewLoginCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &LoginOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(opts.GlobalOptions)
			if err != nil {
				return err
			}
			defer cleanup()

			tok, err := sess.client.Login(cmd.Context(), opts.Email, opts.Password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err := sess.tokens.SetToken(tok); err != nil {
				return fmt.Errorf("store token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command, which clears the stored
// session token.
func NewLogoutCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.tokens.Clear(); err != nil {
				return fmt.Errorf("clear token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

// NewVerifyCommand creates the verify command, which probes the backend for
// the stored token's validity.
func NewVerifyCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check whether the stored session token is still valid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			valid, err := sess.client.CheckTokenValid(cmd.Context())
			if err != nil {
				return fmt.Errorf("verify token: %w", err)
			}
			if valid {
				fmt.Fprintln(cmd.OutOrStdout(), "token is valid")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token is invalid or expired")
			return nil
		},
	}
}
