package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/collection"
)

// NewCheckCmd returns the check command.
func NewCheckCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "check [collection]...",
		Short: "Verify that collections are well formed",
		Long: `Verify that collections are well formed: a positive Version, a Count matching
the sequentially keyed records, required record fields, unique ids and a
Default naming an existing record. Checks every collection if none is given.`,
		RunE: func(cmd *cobra.Command, argv []string) error {
			kinds := collection.All()
			if len(argv) > 0 {
				kinds = kinds[:0:0]

				for _, name := range argv {
					k, err := lookupKind(name)
					if err != nil {
						return err
					}

					kinds = append(kinds, k)
				}
			}

			s, err := args.Store()
			if err != nil {
				return err
			}

			var merr *multierror.Error

			for _, k := range kinds {
				t, err := s.Load(k)
				if err != nil {
					merr = multierror.Append(merr, err)

					continue
				}

				if err := collection.Check(t, k); err != nil {
					merr = multierror.Append(merr, fmt.Errorf("%s: %w", k.Name, err))

					continue
				}

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", k.Name); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			return merr.ErrorOrNil()
		},
	}
}
