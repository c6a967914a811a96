package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/debugger"
	"github.com/macropower/sdkconf/pkg/settings"
)

// NewDebuggerCmd returns the debugger command.
func NewDebuggerCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debugger",
		Short: "Debugger management",
	}

	cmd.AddCommand(NewDebuggerAddCmd(args))
	cmd.AddCommand(newRemoveCmd(args, collection.Debuggers, debugger.Remove))
	cmd.AddCommand(newListCmd(args, collection.Debuggers))

	return cmd
}

func NewDebuggerAddCmd(args *RootArgs) *cobra.Command {
	req := &debugger.Request{}
	engine := new(int)

	cmd := &cobra.Command{
		Use:     "add [<KEY> <TYPE:VALUE>]...",
		Short:   "Add a debugger",
		Example: "  sdkconf debugger add --id {dbg-id} --name GDB --binary /usr/bin/gdb --engine 1",
		RunE: func(_ *cobra.Command, argv []string) error {
			extra, err := parseExtra(argv)
			if err != nil {
				return err
			}

			r := *req
			r.Engine = debugger.Engine(*engine)
			r.Extra = extra

			s, err := args.Store()
			if err != nil {
				return err
			}

			return s.Update(collection.Debuggers, func(t settings.Tree) (settings.Tree, error) {
				return debugger.Add(t, r)
			})
		},
	}

	cmd.Flags().StringVar(&req.ID, "id", "", "Id of the new debugger (required)")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "Display name of the new debugger (required)")
	cmd.Flags().StringVar(&req.Binary, "binary", "", "Path of the debugger binary (required)")
	cmd.Flags().IntVar(engine, "engine", int(debugger.GDBEngine), "Engine type: 1 gdb, 4 cdb, 256 lldb")
	cmd.Flags().StringSliceVar(&req.ABIs, "abis", nil, "Comma separated ABIs of the new debugger")

	must(cmd.MarkFlagRequired("id"))

	return cmd
}
