package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/kit"
	"github.com/macropower/sdkconf/pkg/settings"
)

// DefaultLanguage is the language of a --toolchain value without a
// LANG= prefix.
const DefaultLanguage = "Cxx"

const kitAddExample = `  # Add a desktop kit using an existing toolchain and Qt version
  sdkconf kit add --id my.kit --name "My Kit" --devicetype Desktop \
    --toolchain {tc-id} --toolchain C=x86-linux-generic-elf-64bit \
    --qt {qt-id} --mkspec linux-g++

  # Add a kit and set an extra value below its record
  sdkconf kit add --id k2 --name K2 --devicetype Desktop \
    PE.Profile.Data/extraData string:extraValue
`

// NewKitCmd returns the kit command.
func NewKitCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kit",
		Aliases: []string{"kits", "profile"},
		Short:   "Kit management",
	}

	cmd.AddCommand(NewKitAddCmd(args))
	cmd.AddCommand(newRemoveCmd(args, collection.Kits, kit.Remove))
	cmd.AddCommand(newListCmd(args, collection.Kits))

	return cmd
}

func NewKitAddCmd(args *RootArgs) *cobra.Command {
	id := new(string)
	name := new(string)
	icon := new(string)
	debuggerID := new(string)
	debuggerEngine := new(int)
	debugger := new(string)
	deviceType := new(string)
	device := new(string)
	sysRoot := new(string)
	toolChains := new([]string)
	qt := new(string)
	mkspec := new(string)
	env := new([]string)
	cmakeTool := new(string)
	cmakeGenerator := new(string)
	cmakeConfig := new([]string)

	cmd := &cobra.Command{
		Use:     "add [<KEY> <TYPE:VALUE>]...",
		Short:   "Add a kit",
		Example: kitAddExample,
		RunE: func(cmd *cobra.Command, argv []string) error {
			tcs, err := parseToolChains(*toolChains)
			if err != nil {
				return err
			}

			extra, err := parseExtra(argv)
			if err != nil {
				return err
			}

			req := kit.Request{
				ID:             *id,
				DisplayName:    *name,
				DeviceType:     *deviceType,
				Icon:           optional(cmd, "icon", icon),
				DebuggerID:     optional(cmd, "debuggerid", debuggerID),
				DebuggerBinary: optional(cmd, "debugger", debugger),
				DebuggerEngine: *debuggerEngine,
				Device:         optional(cmd, "device", device),
				SysRoot:        optional(cmd, "sysroot", sysRoot),
				ToolChains:     tcs,
				Qt:             optional(cmd, "qt", qt),
				Mkspec:         optional(cmd, "mkspec", mkspec),
				CMakeTool:      optional(cmd, "cmake", cmakeTool),
				CMakeGenerator: optional(cmd, "cmake-generator", cmakeGenerator),
				CMakeConfig:    nonEmpty(*cmakeConfig),
				Env:            *env,
				Extra:          extra,
			}

			// Shape errors are reported before any collection is read.
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid kit: %w", err)
			}

			s, err := args.Store()
			if err != nil {
				return err
			}

			var refs kit.References

			loads := []struct {
				dst  *settings.Tree
				kind collection.Kind
			}{
				{&refs.ToolChains, collection.ToolChains},
				{&refs.QtVersions, collection.QtVersions},
				{&refs.Devices, collection.Devices},
				{&refs.CMakeTools, collection.CMakeTools},
			}
			for _, l := range loads {
				*l.dst, err = s.Load(l.kind)
				if err != nil {
					return err
				}
			}

			return s.Update(collection.Kits, func(t settings.Tree) (settings.Tree, error) {
				return kit.Add(t, refs, req)
			})
		},
	}

	cmd.Flags().StringVar(id, "id", "", "Id of the new kit (required)")
	cmd.Flags().StringVar(name, "name", "", "Display name of the new kit (required)")
	cmd.Flags().StringVar(icon, "icon", "", "Icon of the new kit")
	cmd.Flags().StringVar(debuggerID, "debuggerid", "", "Id of the debugger of the new kit")
	cmd.Flags().IntVar(debuggerEngine, "debuggerengine", 0, "Debugger engine type of the new kit")
	cmd.Flags().StringVar(debugger, "debugger", "", "Debugger binary of the new kit")
	cmd.Flags().StringVar(deviceType, "devicetype", "", "Device type of the new kit (required)")
	cmd.Flags().StringVar(device, "device", "", "Id of the device of the new kit")
	cmd.Flags().StringVar(sysRoot, "sysroot", "", "Sysroot of the new kit")
	cmd.Flags().StringArrayVar(toolChains, "toolchain", nil,
		"Toolchain of the new kit as [LANG=]ID, LANG defaults to "+DefaultLanguage+" (repeatable)")
	cmd.Flags().StringVar(qt, "qt", "", `Qt version of the new kit, "" selects no Qt`)
	cmd.Flags().StringVar(mkspec, "mkspec", "", "mkspec of the new kit")
	cmd.Flags().StringArrayVar(env, "env", nil, "Environment change of the new kit as VAR=VALUE (repeatable)")
	cmd.Flags().StringVar(cmakeTool, "cmake", "", "Id of the CMake tool of the new kit")
	cmd.Flags().StringVar(cmakeGenerator, "cmake-generator", "",
		"CMake generator of the new kit as GENERATOR:EXTRA:TOOLSET:PLATFORM")
	cmd.Flags().StringArrayVar(cmakeConfig, "cmake-config", nil,
		"CMake configuration entry of the new kit as KEY:TYPE=VALUE (repeatable)")

	must(cmd.MarkFlagRequired("id"))
	must(cmd.MarkFlagRequired("name"))
	must(cmd.MarkFlagRequired("devicetype"))

	return cmd
}

// parseToolChains parses repeated [LANG=]ID flag values into a language to
// toolchain map. Language names are normalized to CamelCase.
func parseToolChains(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	tcs := make(map[string]string, len(values))
	for _, v := range values {
		lang, ref, found := strings.Cut(v, "=")
		if !found {
			lang, ref = DefaultLanguage, v
		}

		lang = normalizeLanguage(lang)
		if lang == "" {
			return nil, fmt.Errorf("%w: %w: toolchain %q has an empty language", ErrArgument, ErrInvalidArgument, v)
		}

		if _, ok := tcs[lang]; ok {
			return nil, fmt.Errorf("%w: %w: toolchain for language %q given twice", ErrArgument, ErrInvalidArgument, lang)
		}

		tcs[lang] = ref
	}

	return tcs, nil
}

func normalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if strings.EqualFold(lang, "c++") {
		return DefaultLanguage
	}

	return strcase.ToCamel(lang)
}

func nonEmpty(values []string) []string {
	return slices.DeleteFunc(slices.Clone(values), func(s string) bool {
		return s == ""
	})
}
