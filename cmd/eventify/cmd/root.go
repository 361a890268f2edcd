package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eventify-app/eventify/internal/api"
	"github.com/eventify-app/eventify/pkg/auth"
	"github.com/eventify-app/eventify/pkg/clientip"
	"github.com/eventify-app/eventify/pkg/config"
	"github.com/eventify-app/eventify/pkg/environment"
	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/logger"
	"github.com/eventify-app/eventify/pkg/requestid"
)

// ErrInvalidForm is returned after an invalid validation result has been printed.
var ErrInvalidForm = errors.New("form is invalid")

type rootOptions struct {
	envFiles    []string
	sessionFile string
	apiURL      string
	verbose     bool

	cfg api.Config
}

// NewRootCommand builds the eventify command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "eventify",
		Short: "Eventify client toolkit",
		Long: `eventify validates Eventify forms, scores passwords, manages a
signed-in session against the Eventify API and serves the web client's
backend.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, ".env files to read before the environment")
	flags.StringVar(&opts.sessionFile, "session-file", "", "session file (default: <user config dir>/eventify/session.json)")
	flags.StringVar(&opts.apiURL, "api-url", "", "Eventify GraphQL endpoint (overrides EVENTIFY_API_URL)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newServeCommand(opts),
		newValidateCommand(opts),
		newStrengthCommand(),
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newWhoamiCommand(opts),
		newEventsCommand(opts),
	)
	return root
}

// Execute runs the command tree with os.Args. Errors other than
// ErrInvalidForm are printed to stderr.
func Execute() error {
	err := NewRootCommand().ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, ErrInvalidForm) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func (o *rootOptions) load(*cobra.Command, []string) error {
	if err := config.LoadEnvFiles(o.envFiles...); err != nil {
		return err
	}
	if err := config.Load(&o.cfg); err != nil {
		return err
	}
	if o.apiURL != "" {
		o.cfg.APIURL = o.apiURL
	}
	return nil
}

// cliLogger writes to stderr at warn level, or debug with --verbose.
func (o *rootOptions) cliLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
}

func (o *rootOptions) serverLogger(cmd *cobra.Command) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(o.cfg.AppEnv), o.cfg.ServiceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	opts = append(opts, logger.FromConfig(o.cfg.Log)...)
	if o.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	return logger.New(opts...)
}

// session returns a restored session manager backed by the session file.
func (o *rootOptions) session(cmd *cobra.Command) (*auth.Manager, *eventapi.Client, error) {
	log := o.cliLogger(cmd)

	path := o.sessionFile
	if path == "" {
		var err error
		if path, err = auth.DefaultFilePath(); err != nil {
			return nil, nil, err
		}
	}

	client, err := api.NewClient(o.cfg, log)
	if err != nil {
		return nil, nil, err
	}

	mgr := auth.NewManager(auth.NewFileStore(path), eventapi.NewAuthenticator(client), auth.WithLogger(log))
	if err := mgr.Restore(cmd.Context()); err != nil {
		return nil, nil, err
	}
	return mgr, client, nil
}
