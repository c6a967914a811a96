package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/settings"
	"github.com/macropower/sdkconf/pkg/toolchain"
)

// NewToolChainCmd returns the toolchain command.
func NewToolChainCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toolchain",
		Aliases: []string{"tc"},
		Short:   "Toolchain management",
	}

	cmd.AddCommand(NewToolChainAddCmd(args))
	cmd.AddCommand(newRemoveCmd(args, collection.ToolChains, toolchain.Remove))
	cmd.AddCommand(newListCmd(args, collection.ToolChains))

	return cmd
}

func NewToolChainAddCmd(args *RootArgs) *cobra.Command {
	req := &toolchain.Request{}

	cmd := &cobra.Command{
		Use:     "add [<KEY> <TYPE:VALUE>]...",
		Short:   "Add a toolchain",
		Example: "  sdkconf toolchain add --id {tc-id} --language Cxx --name GCC --path /usr/bin/g++ --abi x86-linux-generic-elf-64bit",
		RunE: func(_ *cobra.Command, argv []string) error {
			extra, err := parseExtra(argv)
			if err != nil {
				return err
			}

			r := *req
			r.Language = normalizeLanguage(r.Language)
			r.Extra = extra

			s, err := args.Store()
			if err != nil {
				return err
			}

			return s.Update(collection.ToolChains, func(t settings.Tree) (settings.Tree, error) {
				return toolchain.Add(t, r)
			})
		},
	}

	cmd.Flags().StringVar(&req.ID, "id", "", "Id of the new toolchain (required)")
	cmd.Flags().StringVar(&req.Language, "language", "", "Language of the new toolchain (required)")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "Display name of the new toolchain (required)")
	cmd.Flags().StringVar(&req.Path, "path", "", "Compiler path of the new toolchain (required)")
	cmd.Flags().StringVar(&req.TargetABI, "abi", "", "Target ABI of the new toolchain (required)")
	cmd.Flags().StringSliceVar(&req.SupportedABIs, "supportedabis", nil,
		"Comma separated ABIs supported by the new toolchain, defaults to --abi")

	must(cmd.MarkFlagRequired("id"))
	must(cmd.MarkFlagRequired("language"))

	return cmd
}
