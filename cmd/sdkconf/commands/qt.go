package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/qtversion"
	"github.com/macropower/sdkconf/pkg/settings"
)

// NewQtCmd returns the qt command.
func NewQtCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "qt",
		Aliases: []string{"qtversion"},
		Short:   "Qt version management",
	}

	cmd.AddCommand(NewQtAddCmd(args))
	cmd.AddCommand(newRemoveCmd(args, collection.QtVersions, qtversion.Remove))
	cmd.AddCommand(newListCmd(args, collection.QtVersions))

	return cmd
}

func NewQtAddCmd(args *RootArgs) *cobra.Command {
	req := &qtversion.Request{}

	cmd := &cobra.Command{
		Use:     "add [<KEY> <TYPE:VALUE>]...",
		Short:   "Add a Qt version",
		Example: "  sdkconf qt add --id {qt-id} --name \"Qt 6\" --type Qt4ProjectManager.QtVersion.Desktop --qmake /usr/bin/qmake6",
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

			return s.Update(collection.QtVersions, func(t settings.Tree) (settings.Tree, error) {
				return qtversion.Add(t, r)
			})
		},
	}

	cmd.Flags().StringVar(&req.ID, "id", "", "Id of the new Qt version, namespaced with SDK. (required)")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "Display name of the new Qt version (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "Type of the new Qt version (required)")
	cmd.Flags().StringVar(&req.QMake, "qmake", "", "qmake path of the new Qt version (required)")
	cmd.Flags().StringSliceVar(&req.ABIs, "abis", nil, "Comma separated ABIs of the new Qt version")

	must(cmd.MarkFlagRequired("id"))

	return cmd
}
