package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eventify-app/eventify/internal/api"
	"github.com/eventify-app/eventify/pkg/logger"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP backend of the web client",
		Long: `Serve the form validation, password strength, authentication and
event endpoints on HTTP_ADDR, proxying to EVENTIFY_API_URL. Sessions are
kept in memory or, with SESSION_STORE=redis, in Redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.serverLogger(cmd)
			logger.SetAsDefault(log)
			return api.Serve(cmd.Context(), opts.cfg, log)
		},
	}
}
