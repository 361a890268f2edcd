package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eventify-app/eventify/internal/api"
	"github.com/eventify-app/eventify/pkg/validator"
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <form> [field=value ...]",
		Short: "Validate field values against a form",
		Long: `Validate prints the validation result as JSON and exits with status 1
when the values are invalid. Fields that are not given count as not
submitted.

  eventify validate login email=jane@example.com password=secret`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}

			registry, err := api.LoadForms(opts.cfg)
			if err != nil {
				return err
			}
			res, err := registry.Validate(args[0], values)
			if err != nil {
				return fmt.Errorf("%w (known forms: %s)", err, strings.Join(registry.Names(), ", "))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Valid {
				return ErrInvalidForm
			}
			return nil
		},
	}
}

func parseValues(args []string) (validator.Values, error) {
	values := make(validator.Values, len(args))
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid argument %q: expected field=value", arg)
		}
		values[field] = value
	}
	return values, nil
}
