package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/sdkconf/cmd/sdkconf/commands"
	"github.com/macropower/sdkconf/pkg/sdkerrors"
)

func TestCollectionAddCmds(t *testing.T) {
	tcs := map[string]struct {
		want       map[string]string
		collection string
		countKey   string
		add        []string
		rmID       string
	}{
		"toolchain": {
			collection: "toolchains",
			countKey:   "ToolChain.Count",
			add: []string{
				"toolchain", "add", "--id", "tc-id", "--language", "c++", "--name", "GCC",
				"--path", "/usr/bin/g++", "--abi", testABI,
			},
			rmID: "tc-id",
			want: map[string]string{
				"ToolChain.0/ProjectExplorer.ToolChain.Id":         "tc-id",
				"ToolChain.0/ProjectExplorer.ToolChain.LanguageV2": "Cxx",
				"ToolChain.0/ProjectExplorer.GccToolChain.Path":    "/usr/bin/g++",
			},
		},
		"qt": {
			collection: "qtversion",
			countKey:   "QtVersion.Count",
			add: []string{
				"qt", "add", "--id", "qt-id", "--name", "Qt 6",
				"--type", "Qt4ProjectManager.QtVersion.Desktop", "--qmake", "/usr/bin/qmake6",
			},
			rmID: "qt-id",
			want: map[string]string{
				"QtVersion.0/autodetectionSource": "SDK.qt-id",
				"QtVersion.0/QMakePath":           "/usr/bin/qmake6",
			},
		},
		"device": {
			collection: "devices",
			countKey:   "Device.Count",
			add: []string{
				"device", "add", "--id", "dev-id", "--name", "Board", "--ostype", "GenericLinuxOsType",
				"--host", "10.0.0.2", "--sshport", "2222",
			},
			rmID: "dev-id",
			want: map[string]string{
				"Device.0/InternalId": "dev-id",
				"Device.0/Host":       "10.0.0.2",
				"Device.0/SshPort":    "2222",
			},
		},
		"cmake": {
			collection: "cmaketools",
			countKey:   "CMakeTools.Count",
			add: []string{
				"cmake", "add", "--id", "cmake-id", "--name", "CMake", "--path", "/usr/bin/cmake",
			},
			rmID: "cmake-id",
			want: map[string]string{
				"CMakeTools.0/Id":     "cmake-id",
				"CMakeTools.0/Binary": "/usr/bin/cmake",
			},
		},
		"debugger": {
			collection: "debuggers",
			countKey:   "DebuggerItem.Count",
			add: []string{
				"debugger", "add", "--id", "dbg-id", "--name", "LLDB", "--binary", "/usr/bin/lldb",
				"--engine", "256", "Custom/Key", "bool:true",
			},
			rmID: "dbg-id",
			want: map[string]string{
				"DebuggerItem.0/Id":         "dbg-id",
				"DebuggerItem.0/EngineType": "256",
				"DebuggerItem.0/Custom/Key": "true",
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			mustRun(t, dir, tc.add...)

			for path, want := range tc.want {
				assert.Equal(t, want+"\n", mustRun(t, dir, "get", tc.collection, path), path)
			}

			res := run(t, dir, tc.add...)
			require.ErrorIs(t, res.err, sdkerrors.ErrDuplicateID)
			assert.Equal(t, commands.ExitRejected, commands.ExitCode(res.err))

			mustRun(t, dir, "check", tc.collection)

			mustRun(t, dir, tc.add[0], "rm", "--id", tc.rmID)
			assert.Equal(t, "0\n", mustRun(t, dir, "get", tc.collection, tc.countKey))
		})
	}
}
