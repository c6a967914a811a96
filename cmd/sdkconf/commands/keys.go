package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/settings"
)

// NewAddKeysCmd returns the add-keys command.
func NewAddKeysCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "add-keys <collection> <KEY> <TYPE:VALUE>...",
		Short:   "Write values into a collection",
		Example: "  sdkconf add-keys profiles Profile.0/PE.Profile.Name string:Desktop",
		Args:    cobra.MinimumNArgs(3),
		RunE: func(_ *cobra.Command, argv []string) error {
			k, err := lookupKind(argv[0])
			if err != nil {
				return err
			}

			kvs, err := parseExtra(argv[1:])
			if err != nil {
				return err
			}

			s, err := args.Store()
			if err != nil {
				return err
			}

			return s.Update(k, func(t settings.Tree) (settings.Tree, error) {
				return settings.AddKeys(t, kvs)
			})
		},
	}
}

// NewRmKeysCmd returns the rm-keys command.
func NewRmKeysCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "rm-keys <collection> <KEY>...",
		Short:   "Remove keys from a collection",
		Example: "  sdkconf rm-keys profiles Profile.0/PE.Profile.Icon",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, argv []string) error {
			k, err := lookupKind(argv[0])
			if err != nil {
				return err
			}

			paths := make([]settings.Path, 0, len(argv)-1)
			for _, key := range argv[1:] {
				paths = append(paths, settings.ParsePath(key))
			}

			s, err := args.Store()
			if err != nil {
				return err
			}

			return s.Update(k, func(t settings.Tree) (settings.Tree, error) {
				return settings.RemoveKeys(t, paths), nil
			})
		},
	}
}
