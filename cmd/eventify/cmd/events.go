package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/format"
)

const descriptionWidth = 60

func newEventsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List your events and the events you are invited to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, client, err := opts.session(cmd)
			if err != nil {
				return err
			}
			token, err := mgr.Token()
			if err != nil {
				return err
			}
			ctx := eventapi.WithToken(cmd.Context(), token)

			mine, err := client.MyEvents(ctx)
			if err != nil {
				return err
			}
			invited, err := client.InvitedEvents(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printEvents(out, "My events", mine)
			printEvents(out, "Invitations", invited)
			return nil
		},
	}
}

func printEvents(w io.Writer, title string, events []eventapi.Event) {
	fmt.Fprintf(w, "%s (%s)\n", title, format.Number(float64(len(events))))
	for _, e := range events {
		fmt.Fprintf(w, "  %s  %s @ %s\n", format.DateString(e.Date, format.StyleShort), e.Title, e.Location)
		if e.Description != "" {
			fmt.Fprintf(w, "    %s\n", format.Truncate(e.Description, descriptionWidth))
		}
	}
}
