// Package app implements the wattgrid command-line interface: a root command
// with one subcommand per backend capability, all sharing a lazily built
// session (config, logger, token store, API client).
package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wattgrid-hq/wattgrid-client/internal/config"
	"github.com/wattgrid-hq/wattgrid-client/internal/logger"
	"github.com/wattgrid-hq/wattgrid-client/internal/token"
	"github.com/wattgrid-hq/wattgrid-client/pkg/api"
	"github.com/wattgrid-hq/wattgrid-client/pkg/httpclient"
)

const (
	cliName        = "wattgrid"
	cliDescription = "wattgrid - command line client for the WattGrid dashboard backend"
)

// GlobalOptions holds options common to all commands.
type GlobalOptions struct {
	// BaseURL overrides the configured backend address.
	BaseURL string

	// Profile selects a named environment from the profiles file.
	Profile string
}

// session bundles everything a command needs to talk to the backend.
type session struct {
	cfg    *config.Config
	client *api.Client
	tokens token.Store
}

// newSession loads config, initializes logging, opens the token store, and
// builds the API client. The returned cleanup flushes and closes both.
func newSession(opts *GlobalOptions) (*session, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Profile != "" {
		cfg.Profile = opts.Profile
	}

	baseURL, err := config.ResolveBaseURL(cfg)
	if err != nil {
		return nil, nil, err
	}
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	if _, err := logger.Init(cfg); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	tokens, err := token.OpenBolt(cfg.TokenDBPath)
	if err != nil {
		logger.Close()
		return nil, nil, fmt.Errorf("open token store: %w", err)
	}

	transport := httpclient.NewRestyTransport(cfg.RequestTimeout)
	client := api.New(baseURL, transport, tokens, logger.Zap{})

	cleanup := func() {
		tokens.Close()
		logger.Close()
	}
	return &session{cfg: cfg, client: client, tokens: tokens}, cleanup, nil
}

// NewWattGridCommand creates the root wattgrid command with all subcommands.
func NewWattGridCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:          cliName,
		Short:        cliDescription,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "server", "",
		"backend address (overrides config and profile)")
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", "",
		"named environment from the profiles file")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewMetersCommand(opts))
	cmd.AddCommand(NewGroupsCommand(opts))
	cmd.AddCommand(NewReadingsCommand(opts))
	cmd.AddCommand(NewPrefsCommand(opts))
	cmd.AddCommand(NewUploadCommand(opts))

	return cmd
}
