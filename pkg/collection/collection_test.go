package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
)

func addCMake(t *testing.T, tree settings.Tree, id string) settings.Tree {
	t.Helper()

	out, err := collection.AddRecord(tree, collection.CMakeTools, collection.NewRecord{
		ID: id,
		Fields: []settings.KeyValue{
			settings.NewKeyValue(settings.String("CMake "+id), "DisplayName"),
			settings.NewKeyValue(settings.String("/usr/bin/cmake"), "Binary"),
		},
	})
	require.NoError(t, err)
	require.NoError(t, collection.Check(out, collection.CMakeTools))

	return out
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	for _, k := range collection.All() {
		t.Run(k.Name, func(t *testing.T) {
			t.Parallel()

			tree := collection.Initialize(k)
			require.NoError(t, collection.Check(tree, k))

			count, err := collection.Count(tree, k)
			require.NoError(t, err)
			assert.Zero(t, count)
			assert.Empty(t, collection.Default(tree, k))
			assert.Len(t, tree, 3)
		})
	}
}

func TestAddRecord(t *testing.T) {
	t.Parallel()

	empty := collection.Initialize(collection.CMakeTools)
	one := addCMake(t, empty, "cm1")
	two := addCMake(t, one, "cm2")

	count, err := collection.Count(two, collection.CMakeTools)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "cm1", collection.Default(two, collection.CMakeTools))

	v, ok := settings.Get(two, settings.ParsePath("CMakeTools.1/Id"))
	require.True(t, ok)
	assert.True(t, settings.String("cm2").Equal(v))

	assert.True(t, one["CMakeTools.0"].Equal(two["CMakeTools.0"]))

	records, err := collection.Records(two, collection.CMakeTools)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "CMakeTools.1", records[1].Key)
	assert.Equal(t, "CMake cm2", records[1].Name)
}

func TestAddRecordDuplicate(t *testing.T) {
	t.Parallel()

	tree := addCMake(t, collection.Initialize(collection.CMakeTools), "cm1")
	before := tree.Clone()

	got, err := collection.AddRecord(tree, collection.CMakeTools, collection.NewRecord{ID: "cm1"})
	require.ErrorIs(t, err, sdkerrors.ErrDuplicateID)
	require.ErrorIs(t, err, sdkerrors.ErrRejected)
	assert.Nil(t, got)
	assert.True(t, before.Equal(tree))
}

func TestAddRecordExtra(t *testing.T) {
	t.Parallel()

	tree := collection.Initialize(collection.CMakeTools)

	got, err := collection.AddRecord(tree, collection.CMakeTools, collection.NewRecord{
		ID: "cm1",
		Fields: []settings.KeyValue{
			settings.NewKeyValue(settings.String("CMake"), "DisplayName"),
			settings.NewKeyValue(settings.String("/usr/bin/cmake"), "Binary"),
		},
		Extra: []settings.KeyValue{
			settings.NewKeyValue(settings.String("injected"), "Nested/Id"),
		},
	})
	require.NoError(t, err)

	v, ok := settings.Get(got, settings.ParsePath("CMakeTools.0/Nested/Id"))
	require.True(t, ok)
	assert.True(t, settings.String("injected").Equal(v))

	// The injected id is found by the whole-tree search.
	assert.True(t, collection.Contains(got, collection.CMakeTools, "injected"))

	_, err = collection.AddRecord(got, collection.CMakeTools, collection.NewRecord{ID: "injected"})
	require.ErrorIs(t, err, sdkerrors.ErrDuplicateID)
}

func TestAddRecordWriteThroughScalar(t *testing.T) {
	t.Parallel()

	tree := collection.Initialize(collection.CMakeTools)

	got, err := collection.AddRecord(tree, collection.CMakeTools, collection.NewRecord{
		ID: "cm1",
		Extra: []settings.KeyValue{
			settings.NewKeyValue(settings.String("x"), "Id/below"),
		},
	})
	require.ErrorIs(t, err, sdkerrors.ErrWriteThroughScalar)
	assert.Nil(t, got)
}

func TestAddRecordEmptyPath(t *testing.T) {
	t.Parallel()

	empty := settings.KeyValue{Value: settings.String("x")}

	tcs := map[string]collection.NewRecord{
		"empty extra path": {
			ID:    "cm1",
			Extra: []settings.KeyValue{empty},
		},
		"empty field path": {
			ID:     "cm1",
			Fields: []settings.KeyValue{empty},
		},
		"separator only": {
			ID:    "cm1",
			Extra: []settings.KeyValue{settings.NewKeyValue(settings.String("x"), "/")},
		},
	}

	for name, rec := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree := collection.Initialize(collection.CMakeTools)

			got, err := collection.AddRecord(tree, collection.CMakeTools, rec)
			require.ErrorIs(t, err, sdkerrors.ErrInvalidPath)
			assert.Nil(t, got)
			assert.True(t, collection.Initialize(collection.CMakeTools).Equal(tree))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tree := settings.Tree{
		"Id": settings.String("root"),
		"CMakeTools.0": settings.Map(settings.Tree{
			"Id":          settings.String("cm1"),
			"DisplayName": settings.String("cm2"),
		}),
	}

	assert.True(t, collection.Contains(tree, collection.CMakeTools, "cm1"))
	assert.False(t, collection.Contains(tree, collection.CMakeTools, "cm2"))
	assert.False(t, collection.Contains(tree, collection.CMakeTools, "root"))
	assert.False(t, collection.Contains(tree, collection.CMakeTools, "missing"))
}

func TestCount(t *testing.T) {
	t.Parallel()

	k := collection.Kits

	tcs := map[string]struct {
		value settings.Value
		want  int
		err   bool
	}{
		"int": {
			value: settings.Int(3),
			want:  3,
		},
		"numeric string": {
			value: settings.String("2"),
			want:  2,
		},
		"negative": {
			value: settings.Int(-1),
			err:   true,
		},
		"text": {
			value: settings.String("many"),
			err:   true,
		},
		"bool": {
			value: settings.Bool(true),
			err:   true,
		},
		"missing": {
			err: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree := settings.Tree{}
			if tc.value.IsValid() {
				tree[k.CountKey()] = tc.value
			}

			got, err := collection.Count(tree, k)
			if tc.err {
				require.ErrorIs(t, err, sdkerrors.ErrMalformedCount)
				require.ErrorIs(t, err, sdkerrors.ErrStructure)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRemoveRecord(t *testing.T) {
	t.Parallel()

	k := collection.CMakeTools

	tree := collection.Initialize(k)
	for _, id := range []string{"a", "b", "c"} {
		tree = addCMake(t, tree, id)
	}

	tcs := map[string]struct {
		id          string
		wantIDs     []string
		wantDefault string
		wantErr     error
	}{
		"first and default": {
			id:          "a",
			wantIDs:     []string{"b", "c"},
			wantDefault: "b",
		},
		"middle": {
			id:          "b",
			wantIDs:     []string{"a", "c"},
			wantDefault: "a",
		},
		"last": {
			id:          "c",
			wantIDs:     []string{"a", "b"},
			wantDefault: "a",
		},
		"unknown": {
			id:      "x",
			wantErr: sdkerrors.ErrNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			before := tree.Clone()

			got, err := collection.RemoveRecord(tree, k, tc.id)
			assert.True(t, before.Equal(tree))

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			require.NoError(t, collection.Check(got, k))
			assert.Equal(t, tc.wantDefault, collection.Default(got, k))

			records, err := collection.Records(got, k)
			require.NoError(t, err)

			ids := []string{}
			for _, r := range records {
				ids = append(ids, r.ID)
			}

			assert.Equal(t, tc.wantIDs, ids)
			assert.False(t, collection.Contains(got, k, tc.id))
		})
	}
}

func TestRemoveLastRecord(t *testing.T) {
	t.Parallel()

	k := collection.CMakeTools
	tree := addCMake(t, collection.Initialize(k), "only")

	got, err := collection.RemoveRecord(tree, k, "only")
	require.NoError(t, err)
	assert.True(t, collection.Initialize(k).Equal(got))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		found bool
	}{
		"profiles":  {want: "profiles", found: true},
		"kit":       {want: "profiles", found: true},
		"TC":        {want: "toolchains", found: true},
		"qt":        {want: "qtversion", found: true},
		"devices":   {want: "devices", found: true},
		"cmake":     {want: "cmaketools", found: true},
		"debugger":  {want: "debuggers", found: true},
		"something": {},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			k, ok := collection.Lookup(name)
			require.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, k.Name)
		})
	}
}
