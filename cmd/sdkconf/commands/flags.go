package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/settings"
)

// optional returns v if the flag name was given on the command line.
func optional[T any](cmd *cobra.Command, name string, v *T) *T {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return v
}

// parseExtra parses trailing <KEY> <TYPE:VALUE> arguments.
func parseExtra(argv []string) ([]settings.KeyValue, error) {
	kvs, err := settings.ParseKeyValues(argv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArgument, err)
	}

	return kvs, nil
}
