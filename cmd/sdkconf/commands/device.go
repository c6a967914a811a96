package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/device"
	"github.com/macropower/sdkconf/pkg/settings"
)

// NewDeviceCmd returns the device command.
func NewDeviceCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "device",
		Aliases: []string{"dev"},
		Short:   "Device management",
	}

	cmd.AddCommand(NewDeviceAddCmd(args))
	cmd.AddCommand(newRemoveCmd(args, collection.Devices, device.Remove))
	cmd.AddCommand(newListCmd(args, collection.Devices))

	return cmd
}

func NewDeviceAddCmd(args *RootArgs) *cobra.Command {
	req := &device.Request{}
	devType := new(int)
	host := new(string)
	user := new(string)
	keyFile := new(string)
	freePorts := new(string)
	debugServer := new(string)
	sshPort := new(int)
	timeout := new(int)

	cmd := &cobra.Command{
		Use:     "add [<KEY> <TYPE:VALUE>]...",
		Short:   "Add a device",
		Example: "  sdkconf device add --id {dev-id} --name Board --ostype GenericLinuxOsType --host 10.0.0.2 --sshport 22",
		RunE: func(cmd *cobra.Command, argv []string) error {
			extra, err := parseExtra(argv)
			if err != nil {
				return err
			}

			r := *req
			r.Type = device.Type(*devType)
			r.Host = optional(cmd, "host", host)
			r.User = optional(cmd, "user", user)
			r.KeyFile = optional(cmd, "keyfile", keyFile)
			r.FreePorts = optional(cmd, "freeports", freePorts)
			r.DebugServer = optional(cmd, "debugserver", debugServer)
			r.SSHPort = optional(cmd, "sshport", sshPort)
			r.Timeout = optional(cmd, "timeout", timeout)
			r.Extra = extra

			s, err := args.Store()
			if err != nil {
				return err
			}

			return s.Update(collection.Devices, func(t settings.Tree) (settings.Tree, error) {
				return device.Add(t, r)
			})
		},
	}

	cmd.Flags().StringVar(&req.ID, "id", "", "Id of the new device (required)")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "Display name of the new device (required)")
	cmd.Flags().StringVar(&req.OSType, "ostype", "", "OS type of the new device (required)")
	cmd.Flags().IntVar(devType, "type", int(device.Hardware), "0 for hardware, 1 for an emulator")
	cmd.Flags().IntVar(&req.Origin, "origin", 0, "Origin of the new device")
	cmd.Flags().StringVar(host, "host", "", "Host name of the new device")
	cmd.Flags().IntVar(sshPort, "sshport", 22, "SSH port of the new device")
	cmd.Flags().StringVar(user, "user", "", "User name on the new device")
	cmd.Flags().StringVar(keyFile, "keyfile", "", "SSH key file for the new device")
	cmd.Flags().IntVar(timeout, "timeout", 10, "Connection timeout of the new device in seconds")
	cmd.Flags().StringVar(freePorts, "freeports", "", "Free port ranges of the new device, e.g. 10000-10100")
	cmd.Flags().StringVar(debugServer, "debugserver", "", "Debug server of the new device")

	must(cmd.MarkFlagRequired("id"))

	return cmd
}
