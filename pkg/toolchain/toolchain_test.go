package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
	"github.com/macropower/sdkconf/pkg/toolchain"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	base := toolchain.Initialize()

	tcs := map[string]struct {
		req     toolchain.Request
		wantErr error
		want    map[string]settings.Value
	}{
		"gcc": {
			req: toolchain.Request{
				ID:          "{tc-id}",
				Language:    "Cxx",
				DisplayName: "TC",
				Path:        "/usr/bin/gcc",
				TargetABI:   "x86-linux-generic-elf-32bit",
				Extra: []settings.KeyValue{
					settings.NewKeyValue(settings.String("v"), "extra/key"),
				},
			},
			want: map[string]settings.Value{
				"ToolChain.0/ProjectExplorer.ToolChain.Id":               settings.String("{tc-id}"),
				"ToolChain.0/ProjectExplorer.ToolChain.LanguageV2":       settings.String("Cxx"),
				"ToolChain.0/ProjectExplorer.ToolChain.DisplayName":      settings.String("TC"),
				"ToolChain.0/ProjectExplorer.ToolChain.Autodetect":       settings.Bool(true),
				"ToolChain.0/ProjectExplorer.GccToolChain.Path":          settings.String("/usr/bin/gcc"),
				"ToolChain.0/ProjectExplorer.GccToolChain.TargetAbi":     settings.String("x86-linux-generic-elf-32bit"),
				"ToolChain.0/ProjectExplorer.GccToolChain.SupportedAbis": settings.StringList("x86-linux-generic-elf-32bit"),
				"ToolChain.0/extra/key":                                  settings.String("v"),
				"ToolChain.Count":                                        settings.Int(1),
				"ToolChain.Default":                                      settings.String("{tc-id}"),
			},
		},
		"non descriptor abi is accepted": {
			req: toolchain.Request{
				ID:            "tc2",
				Language:      "C",
				DisplayName:   "TC",
				Path:          "/usr/bin/gcc",
				TargetABI:     "custom",
				SupportedABIs: []string{"custom", "other"},
			},
			want: map[string]settings.Value{
				"ToolChain.0/ProjectExplorer.GccToolChain.SupportedAbis": settings.StringList("custom", "other"),
			},
		},
		"missing path": {
			req: toolchain.Request{
				ID:          "tc3",
				Language:    "C",
				DisplayName: "TC",
				TargetABI:   "x86-linux-generic-elf-32bit",
			},
			wantErr: sdkerrors.ErrRequestShape,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := toolchain.Add(base, tc.req)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NoError(t, collection.Check(got, collection.ToolChains))

			for p, want := range tc.want {
				v, ok := settings.Get(got, settings.ParsePath(p))
				require.True(t, ok, p)
				assert.True(t, want.Equal(v), "%s: got %s", p, v)
			}

			assert.True(t, toolchain.Exists(got, tc.req.ID))
		})
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	tree, err := toolchain.Add(toolchain.Initialize(), toolchain.Request{
		ID:          "tc",
		Language:    "C",
		DisplayName: "TC",
		Path:        "/usr/bin/gcc",
		TargetABI:   "x86-linux-generic-elf-64bit",
	})
	require.NoError(t, err)

	got, err := toolchain.Remove(tree, "tc")
	require.NoError(t, err)
	assert.False(t, toolchain.Exists(got, "tc"))
	assert.True(t, toolchain.Initialize().Equal(got))

	_, err = toolchain.Remove(got, "tc")
	require.ErrorIs(t, err, sdkerrors.ErrNotFound)
}
