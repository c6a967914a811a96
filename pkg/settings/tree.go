package settings

import (
	"maps"
	"slices"
)

// Tree is a nested mapping from keys to values. It is the working and
// persisted representation of one collection.
type Tree map[string]Value

// Clone returns a deep copy of t. Cloning a nil tree returns an empty one.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = v.clone()
	}

	return out
}

// Equal reports whether t and o hold the same keys and equal values.
func (t Tree) Equal(o Tree) bool {
	return maps.EqualFunc(t, o, Value.Equal)
}

// Keys returns the keys of t in sorted order.
func (t Tree) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Plain converts t into plain Go maps and slices, see [Value.Interface].
func (t Tree) Plain() map[string]any {
	out := make(map[string]any, len(t))
	for k, v := range t {
		out[k] = v.Interface()
	}

	return out
}
