package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/cmaketool"
	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/settings"
)

// NewCMakeCmd returns the cmake command.
func NewCMakeCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmake",
		Short: "CMake tool management",
	}

	cmd.AddCommand(NewCMakeAddCmd(args))
	cmd.AddCommand(newRemoveCmd(args, collection.CMakeTools, cmaketool.Remove))
	cmd.AddCommand(newListCmd(args, collection.CMakeTools))

	return cmd
}

func NewCMakeAddCmd(args *RootArgs) *cobra.Command {
	req := &cmaketool.Request{}

	cmd := &cobra.Command{
		Use:     "add [<KEY> <TYPE:VALUE>]...",
		Short:   "Add a CMake tool",
		Example: "  sdkconf cmake add --id {cmake-id} --name \"CMake 3.30\" --path /usr/bin/cmake",
		RunE: func(_ *cobra.Command, argv []string) error {
			extra, err := parseExtra(argv)
			if err != nil {
				return err
			}

			r := *req
			r.Extra = extra

			s, err := args.Store()
			if err != nil {
				return err
			}

			return s.Update(collection.CMakeTools, func(t settings.Tree) (settings.Tree, error) {
				return cmaketool.Add(t, r)
			})
		},
	}

	cmd.Flags().StringVar(&req.ID, "id", "", "Id of the new CMake tool (required)")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "Display name of the new CMake tool (required)")
	cmd.Flags().StringVar(&req.Binary, "path", "", "Path of the CMake binary (required)")

	must(cmd.MarkFlagRequired("id"))

	return cmd
}
