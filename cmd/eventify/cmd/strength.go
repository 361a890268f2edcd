package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventify-app/eventify/pkg/validator"
)

func newStrengthCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "strength <password>",
		Short: "Score the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := validator.CheckPasswordStrength(args[0])
			out := cmd.OutOrStdout()

			if asJSON {
				return json.NewEncoder(out).Encode(res)
			}

			fmt.Fprintf(out, "Strength: %s (%d/5)\n", res.Label, res.Strength)
			for _, c := range []struct {
				name string
				ok   bool
			}{
				{"at least 8 characters", res.Checks.Length},
				{"lowercase letter", res.Checks.Lowercase},
				{"uppercase letter", res.Checks.Uppercase},
				{"number", res.Checks.Number},
				{"special character", res.Checks.Special},
			} {
				mark := " "
				if c.ok {
					mark = "x"
				}
				fmt.Fprintf(out, "  [%s] %s\n", mark, c.name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
