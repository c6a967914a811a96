package settings

import (
	"fmt"
	"slices"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
)

// KeyValue is one pending write: a value to store at a path.
type KeyValue struct {
	Value Value
	Path  Path
}

// NewKeyValue returns a [KeyValue] writing v at the path built from segments.
func NewKeyValue(v Value, segments ...string) KeyValue {
	return KeyValue{Path: NewPath(segments...), Value: v}
}

// Get returns the value stored at p. It fails if any segment before the last
// is missing or is not a tree, or if the last segment is missing.
func Get(t Tree, p Path) (Value, bool) {
	if len(p) == 0 {
		return Value{}, false
	}

	cur := t
	for _, seg := range p[:len(p)-1] {
		child, ok := cur[seg]
		if !ok || child.kind != KindMap {
			return Value{}, false
		}

		cur = child.tree
	}

	v, ok := cur[p.Last()]

	return v, ok
}

// Find returns every path in t whose value equals v. Paths are returned in
// traversal order, which visits keys sorted at each level.
func Find(t Tree, v Value) []Path {
	var found []Path

	walk(t, nil, func(p Path, cur Value) {
		if cur.Equal(v) {
			found = append(found, p)
		}
	})

	return found
}

// FindKey returns every path in t whose last segment is key.
func FindKey(t Tree, key string) []Path {
	var found []Path

	walk(t, nil, func(p Path, _ Value) {
		if p.Last() == key {
			found = append(found, p)
		}
	})

	return found
}

func walk(t Tree, prefix Path, fn func(Path, Value)) {
	for _, k := range t.Keys() {
		v := t[k]
		p := slices.Concat(prefix, Path{k})
		fn(p, v)

		if v.kind == KindMap {
			walk(v.tree, p, fn)
		}
	}
}

// AddKeys returns a copy of t with every pair written, creating intermediate
// trees as needed. A value already stored at a pair's path is replaced.
//
// The batch is atomic: if any pair cannot be written (empty path, invalid
// value, or a path that descends through a scalar), AddKeys returns a nil
// tree and an error, and nothing is applied.
func AddKeys(t Tree, kvs []KeyValue) (Tree, error) {
	out := t.Clone()

	for _, kv := range kvs {
		if err := set(out, kv.Path, kv.Value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func set(t Tree, p Path, v Value) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", sdkerrors.ErrInvalidPath)
	}

	if !v.IsValid() {
		return fmt.Errorf("%w: at %q", sdkerrors.ErrInvalidValue, p)
	}

	cur := t
	for i, seg := range p[:len(p)-1] {
		child, ok := cur[seg]
		if !ok {
			next := Tree{}
			cur[seg] = Value{kind: KindMap, tree: next}
			cur = next

			continue
		}

		if child.kind != KindMap {
			return fmt.Errorf("%w: %q holds a %s, cannot write %q",
				sdkerrors.ErrWriteThroughScalar, p[:i+1], child.kind, p)
		}

		cur = child.tree
	}

	cur[p.Last()] = v.clone()

	return nil
}

// RemoveKeys returns a copy of t without the given paths. Trees left empty
// by a removal are pruned; siblings are kept. Paths that do not exist are
// ignored, so applying the same removal twice yields the same tree.
func RemoveKeys(t Tree, paths []Path) Tree {
	out := t.Clone()

	for _, p := range paths {
		remove(out, p)
	}

	return out
}

func remove(t Tree, p Path) bool {
	switch len(p) {
	case 0:
		return false
	case 1:
		if _, ok := t[p[0]]; !ok {
			return false
		}

		delete(t, p[0])

		return true
	}

	child, ok := t[p[0]]
	if !ok || child.kind != KindMap {
		return false
	}

	if !remove(child.tree, p[1:]) {
		return false
	}

	if len(child.tree) == 0 {
		delete(t, p[0])
	}

	return true
}
