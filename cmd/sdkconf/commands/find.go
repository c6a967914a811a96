package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
)

// NewFindCmd returns the find command.
func NewFindCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "find <collection> <TYPE:VALUE>...",
		Short:   "Print every path holding one of the values",
		Example: "  sdkconf find toolchains string:/usr/bin/gcc",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			values := make([]settings.Value, 0, len(argv)-1)
			for _, raw := range argv[1:] {
				v, err := settings.ParseValue(raw)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrArgument, err)
				}

				values = append(values, v)
			}

			return printPaths(cmd, args, argv[0], func(t settings.Tree) []settings.Path {
				var found []settings.Path
				for _, v := range values {
					found = append(found, settings.Find(t, v)...)
				}

				return found
			})
		},
	}
}

// NewFindKeyCmd returns the find-key command.
func NewFindKeyCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "find-key <collection> <key>...",
		Short:   "Print every path ending in one of the keys",
		Example: "  sdkconf find-key profiles PE.Profile.Id",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return printPaths(cmd, args, argv[0], func(t settings.Tree) []settings.Path {
				var found []settings.Path
				for _, key := range argv[1:] {
					found = append(found, settings.FindKey(t, key)...)
				}

				return found
			})
		},
	}
}

func printPaths(cmd *cobra.Command, args *RootArgs, name string, search func(settings.Tree) []settings.Path) error {
	k, err := lookupKind(name)
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

	found := search(t)
	if len(found) == 0 {
		return fmt.Errorf("%w: no match in %s", sdkerrors.ErrNotFound, k.Name)
	}

	w := cmd.OutOrStdout()
	for _, p := range found {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}
