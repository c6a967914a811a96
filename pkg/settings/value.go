package settings

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the type held by a [Value].
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindBool
	KindStringList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindStringList:
		return "stringlist"
	case KindMap:
		return "map"
	case KindInvalid:
	}

	return "invalid"
}

// Value is a single entry of a [Tree]. The zero Value is invalid; use the
// constructors [String], [Int], [Bool], [StringList] and [Map].
type Value struct {
	tree Tree
	s    string
	list []string
	n    int
	kind Kind
	b    bool
}

// String returns a string [Value].
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Int returns an integer [Value].
func Int(n int) Value {
	return Value{kind: KindInt, n: n}
}

// Bool returns a boolean [Value].
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// StringList returns a string list [Value]. The items are copied.
func StringList(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)

	return Value{kind: KindStringList, list: list}
}

// Map returns a [Value] holding a copy of the given [Tree].
func Map(t Tree) Value {
	return Value{kind: KindMap, tree: t.Clone()}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v was created by one of the constructors.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// IsMap reports whether v holds a nested [Tree].
func (v Value) IsMap() bool {
	return v.kind == KindMap
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int, bool) {
	return v.n, v.kind == KindInt
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsList returns a copy of the string list held by v.
func (v Value) AsList() ([]string, bool) {
	if v.kind != KindStringList {
		return nil, false
	}

	return slices.Clone(v.list), true
}

// AsTree returns a copy of the [Tree] held by v.
func (v Value) AsTree() (Tree, bool) {
	if v.kind != KindMap {
		return nil, false
	}

	return v.tree.Clone(), true
}

// Equal reports whether v and o have the same kind and content. Trees are
// compared deeply.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.n == o.n
	case KindBool:
		return v.b == o.b
	case KindStringList:
		return slices.Equal(v.list, o.list)
	case KindMap:
		return v.tree.Equal(o.tree)
	case KindInvalid:
	}

	return true
}

// String formats v in the `type:value` form accepted by [ParseValue]. Trees
// are formatted as `map:{...}` and cannot be parsed back.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return "string:" + v.s
	case KindInt:
		return "int:" + strconv.Itoa(v.n)
	case KindBool:
		return "bool:" + strconv.FormatBool(v.b)
	case KindStringList:
		return "stringlist:" + strings.Join(v.list, ",")
	case KindMap:
		return fmt.Sprintf("map:%v", v.tree.Plain())
	case KindInvalid:
	}

	return "invalid"
}

// Interface returns v as a plain Go value: string, int, bool, []any or
// map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.n
	case KindBool:
		return v.b
	case KindStringList:
		items := make([]any, 0, len(v.list))
		for _, s := range v.list {
			items = append(items, s)
		}

		return items
	case KindMap:
		return v.tree.Plain()
	case KindInvalid:
	}

	return nil
}

// clone deep copies the mutable parts of v.
func (v Value) clone() Value {
	switch v.kind {
	case KindStringList:
		v.list = slices.Clone(v.list)
	case KindMap:
		v.tree = v.tree.Clone()
	case KindInvalid, KindString, KindInt, KindBool:
	}

	return v
}
