package commands

import (
	"fmt"

	"github.com/dadav/go-jsonpointer"
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
	"github.com/macropower/sdkconf/pkg/store"
)

const getExample = `  # Print the default kit id
  sdkconf get profiles Profile.Default

  # Print the data of the first kit as JSON
  sdkconf get profiles Profile.0/PE.Profile.Data --output json

  # Address a value with a JSON pointer
  sdkconf get profiles --pointer /Profile.0/PE.Profile.Name
`

// NewGetCmd returns the get command.
func NewGetCmd(args *RootArgs) *cobra.Command {
	pointer := new(bool)
	output := new(string)

	cmd := &cobra.Command{
		Use:     "get <collection> <path>...",
		Short:   "Print the values stored at paths",
		Example: getExample,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			format, err := store.ParseFormat(*output)
			if err != nil {
				return fmt.Errorf("%w: %w: output: %w", ErrArgument, ErrInvalidArgument, err)
			}

			k, err := lookupKind(argv[0])
			if err != nil {
				return err
			}

			s, err := args.Store()
			if err != nil {
				return err
			}

			t, err := s.Load(k)
			if err != nil {
				return err
			}

			var doc any
			if *pointer {
				doc = t.Plain()
			}

			for _, p := range argv[1:] {
				var v any

				if *pointer {
					v, err = jsonpointer.Get(doc, p)
					if err != nil {
						return fmt.Errorf("%w: %s %s: %w", sdkerrors.ErrNotFound, k.Name, p, err)
					}
				} else {
					found, ok := settings.Get(t, settings.ParsePath(p))
					if !ok {
						return fmt.Errorf("%w: %s %s", sdkerrors.ErrNotFound, k.Name, p)
					}

					v = found
				}

				out, err := store.Encode(v, format)
				if err != nil {
					return err
				}

				if _, err := cmd.OutOrStdout().Write(out); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(pointer, "pointer", false, "Interpret paths as RFC 6901 JSON pointers")
	cmd.Flags().StringVarP(output, "output", "o", "yaml", "Output format (yaml, json)")

	return cmd
}
