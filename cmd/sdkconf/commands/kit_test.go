package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/sdkconf/cmd/sdkconf/commands"
	"github.com/macropower/sdkconf/pkg/sdkerrors"
)

const testABI = "x86-linux-generic-elf-64bit"

// seedReferences adds one record to every collection a kit may refer to.
func seedReferences(t *testing.T, dir string) {
	t.Helper()

	mustRun(t, dir, "toolchain", "add",
		"--id", "tc-id", "--language", "Cxx", "--name", "GCC",
		"--path", "/usr/bin/g++", "--abi", testABI)
	mustRun(t, dir, "qt", "add",
		"--id", "qt-id", "--name", "Qt 6",
		"--type", "Qt4ProjectManager.QtVersion.Desktop", "--qmake", "/usr/bin/qmake6")
	mustRun(t, dir, "device", "add",
		"--id", "dev-id", "--name", "Board", "--ostype", "GenericLinuxOsType")
	mustRun(t, dir, "cmake", "add",
		"--id", "cmake-id", "--name", "CMake", "--path", "/usr/bin/cmake")
}

func kitAddArgs(id string, extra ...string) []string {
	return append([]string{
		"kit", "add",
		"--id", id, "--name", "My Kit", "--devicetype", "Desktop",
	}, extra...)
}

func TestKitAddCmd(t *testing.T) {
	dir := t.TempDir()
	seedReferences(t, dir)

	mustRun(t, dir, kitAddArgs("my.kit",
		"--toolchain", "tc-id",
		"--toolchain", "c="+testABI,
		"--qt", "qt-id",
		"--device", "dev-id",
		"--cmake", "cmake-id",
		"--cmake-generator", "Ninja",
		"--cmake-config", "CMAKE_BUILD_TYPE:STRING=Debug",
		"--debugger", "/usr/bin/gdb",
		"--env", "FOO=bar",
		"--sysroot", "/sys/root//",
		"PE.Profile.Data/extraData", "string:extraValue",
	)...)

	tcs := map[string]struct {
		want string
		args []string
	}{
		"count": {
			args: []string{"Profile.Count"},
			want: "1\n",
		},
		"default": {
			args: []string{"Profile.Default"},
			want: "my.kit\n",
		},
		"name": {
			args: []string{"Profile.0/PE.Profile.Name"},
			want: "My Kit\n",
		},
		"default language toolchain": {
			args: []string{"Profile.0/PE.Profile.Data/PE.Profile.ToolChainsV3/Cxx"},
			want: "tc-id\n",
		},
		"abi toolchain": {
			args: []string{"Profile.0/PE.Profile.Data/PE.Profile.ToolChainsV3/C"},
			want: testABI + "\n",
		},
		"namespaced qt": {
			args: []string{"Profile.0/PE.Profile.Data/QtSupport.QtInformation"},
			want: "SDK.qt-id\n",
		},
		"raw sysroot": {
			args: []string{"Profile.0/PE.Profile.Data/PE.Profile.SysRoot"},
			want: "/sys/root//\n",
		},
		"extra": {
			args: []string{"Profile.0/PE.Profile.Data/extraData"},
			want: "extraValue\n",
		},
		"pointer": {
			args: []string{"--pointer", "/Profile.0/PE.Profile.Data/PE.Profile.Device"},
			want: "dev-id\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out := mustRun(t, dir, append([]string{"get", "profiles"}, tc.args...)...)
			assert.Equal(t, tc.want, out)
		})
	}

	out := mustRun(t, dir, "get", "profiles", "-o", "json",
		"Profile.0/PE.Profile.Data/PE.Profile.ToolChainsV3")
	assert.JSONEq(t, `{"C":"`+testABI+`","Cxx":"tc-id"}`, out)

	out = mustRun(t, dir, "get", "profiles", "-o", "json",
		"Profile.0/PE.Profile.Data/Debugger.Information")
	assert.JSONEq(t, `{"Binary":"/usr/bin/gdb","EngineType":0}`, out)
}

func TestKitAddCmdRejected(t *testing.T) {
	dir := t.TempDir()
	seedReferences(t, dir)
	mustRun(t, dir, kitAddArgs("my.kit", "--toolchain", "tc-id")...)

	path := filepath.Join(dir, "profiles.yaml")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	tcs := map[string]struct {
		wantErr error
		args    []string
		code    int
	}{
		"duplicate id": {
			args:    kitAddArgs("my.kit"),
			wantErr: sdkerrors.ErrDuplicateID,
			code:    commands.ExitRejected,
		},
		"unknown toolchain": {
			args:    kitAddArgs("k2", "--toolchain", "missing-tc"),
			wantErr: sdkerrors.ErrReference,
			code:    commands.ExitRejected,
		},
		"unknown qt": {
			args:    kitAddArgs("k2", "--qt", "missing-qt"),
			wantErr: sdkerrors.ErrReference,
			code:    commands.ExitRejected,
		},
		"unknown device": {
			args:    kitAddArgs("k2", "--device", "missing-dev"),
			wantErr: sdkerrors.ErrReference,
			code:    commands.ExitRejected,
		},
		"unknown cmake": {
			args:    kitAddArgs("k2", "--cmake", "missing-cmake"),
			wantErr: sdkerrors.ErrReference,
			code:    commands.ExitRejected,
		},
		"debugger id and binary": {
			args:    kitAddArgs("k2", "--debuggerid", "dbg", "--debugger", "/usr/bin/gdb"),
			wantErr: sdkerrors.ErrRequestShape,
			code:    commands.ExitRejected,
		},
		"empty toolchain reference": {
			args:    kitAddArgs("k2", "--toolchain", "C="),
			wantErr: sdkerrors.ErrRequestShape,
			code:    commands.ExitRejected,
		},
		"language given twice": {
			args:    kitAddArgs("k2", "--toolchain", "tc-id", "--toolchain", "cxx=tc-id"),
			wantErr: commands.ErrArgument,
			code:    commands.ExitError,
		},
		"dangling extra key": {
			args:    kitAddArgs("k2", "PE.Profile.Data/extraData"),
			wantErr: commands.ErrArgument,
			code:    commands.ExitError,
		},
		"untyped extra value": {
			args:    kitAddArgs("k2", "PE.Profile.Data/extraData", "extraValue"),
			wantErr: sdkerrors.ErrInvalidFormat,
			code:    commands.ExitError,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			res := run(t, dir, tc.args...)
			require.Error(t, res.err)
			require.ErrorIs(t, res.err, tc.wantErr)
			assert.Equal(t, tc.code, commands.ExitCode(res.err))

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after), "rejected request must not change the file")
		})
	}
}

func TestKitAddCmdShapeBeforeLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toolchains.yaml"), []byte("Version: ["), 0o600))

	res := run(t, dir, kitAddArgs("my.kit", "--debuggerid", "gdb", "--debugger", "/usr/bin/gdb")...)
	require.Error(t, res.err)
	require.ErrorIs(t, res.err, sdkerrors.ErrRequestShape)
	assert.NotErrorIs(t, res.err, sdkerrors.ErrLoad)
	assert.Equal(t, commands.ExitRejected, commands.ExitCode(res.err))
	assert.NoFileExists(t, filepath.Join(dir, "profiles.yaml"))

	res = run(t, dir, kitAddArgs("my.kit")...)
	require.ErrorIs(t, res.err, sdkerrors.ErrLoad)
	assert.Equal(t, commands.ExitError, commands.ExitCode(res.err))
}

func TestKitAddCmdEmptyFile(t *testing.T) {
	tcs := map[string]string{
		"empty":     "",
		"empty map": "{}\n",
		"null":      "null\n",
	}

	for name, content := range tcs {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles.yaml"), []byte(content), 0o600))

			mustRun(t, dir, kitAddArgs("my.kit")...)
			assert.Equal(t, "1\n", mustRun(t, dir, "get", "profiles", "Profile.Count"))
		})
	}
}

func TestKitAddCmdNullField(t *testing.T) {
	dir := t.TempDir()

	content := `Version: 1
Profile.Count: 1
Profile.Default: k0
Profile.0:
  PE.Profile.Id: k0
  PE.Profile.Name: Kit 0
  PE.Profile.Icon:
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles.yaml"), []byte(content), 0o600))

	mustRun(t, dir, kitAddArgs("k1")...)
	assert.Equal(t, "2\n", mustRun(t, dir, "get", "profiles", "Profile.Count"))
	assert.Equal(t, "\"\"\n", mustRun(t, dir, "get", "profiles", "Profile.0/PE.Profile.Icon"))
}

func TestKitAddCmdNoQt(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, kitAddArgs("my.kit", "--qt", "")...)

	out := mustRun(t, dir, "get", "profiles", "Profile.0/PE.Profile.Data/QtSupport.QtInformation")
	assert.Equal(t, "\"-1\"\n", out)
}

func TestKitAddCmdMissingFlag(t *testing.T) {
	res := run(t, t.TempDir(), "kit", "add", "--id", "my.kit", "--devicetype", "Desktop")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "name")
	assert.Equal(t, commands.ExitError, commands.ExitCode(res.err))
}

func TestKitAddCmdPersistFailure(t *testing.T) {
	// A dangling link reads as an empty SDK but cannot be created.
	dir := filepath.Join(t.TempDir(), "sdk")
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "missing", "sdk"), dir))

	res := run(t, dir, kitAddArgs("my.kit")...)
	require.Error(t, res.err)
	require.ErrorIs(t, res.err, sdkerrors.ErrPersist)
	assert.Equal(t, commands.ExitPersist, commands.ExitCode(res.err))
}

func TestKitRmCmd(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, kitAddArgs("k1")...)
	mustRun(t, dir, kitAddArgs("k2")...)
	mustRun(t, dir, "kit", "rm", "--id", "k1")

	assert.Equal(t, "1\n", mustRun(t, dir, "get", "profiles", "Profile.Count"))
	assert.Equal(t, "k2\n", mustRun(t, dir, "get", "profiles", "Profile.0/PE.Profile.Id"))

	res := run(t, dir, "kit", "rm", "--id", "k1")
	require.ErrorIs(t, res.err, sdkerrors.ErrNotFound)
	assert.Equal(t, commands.ExitRejected, commands.ExitCode(res.err))

	mustRun(t, dir, "check", "profiles")
}
