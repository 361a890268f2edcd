package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eventify-app/eventify/pkg/auth"
	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/format"
	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/validator"
)

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := forms.Default().MustValidate(forms.Login, validator.Values{"email": email, "password": password})
			if !res.Valid {
				for _, f := range res.Failures {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Message)
				}
				return ErrInvalidForm
			}

			mgr, _, err := opts.session(cmd)
			if err != nil {
				return err
			}
			login := mgr.Login(cmd.Context(), email, password)
			if !login.Success {
				return errors.New(login.Message)
			}

			user := mgr.Session().User
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n",
				format.FullName(user.FirstName, user.LastName),
				format.MaskEmail(user.Email),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account e-mail address")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, _, err := opts.session(cmd)
			if err != nil {
				return err
			}
			if mgr.Session() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			if err := mgr.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
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

			user, err := client.CurrentUser(eventapi.WithToken(cmd.Context(), token))
			if err != nil {
				return err
			}
			if user == nil {
				return auth.ErrNotAuthenticated
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[%s] %s <%s>\n",
				format.Initials(user.FirstName, user.LastName),
				format.FullName(user.FirstName, user.LastName),
				user.Email,
			)
			if exp := mgr.Session().ExpiresAt; exp != nil {
				fmt.Fprintf(out, "Session expires %s\n", format.RelativeTime(*exp, time.Now()))
			}
			return nil
		},
	}
}
