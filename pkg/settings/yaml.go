package settings

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
)

// MarshalYAML implements [yaml.Marshaler].
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindString:
		return v.s, nil
	case KindInt:
		return v.n, nil
	case KindBool:
		return v.b, nil
	case KindStringList:
		if v.list == nil {
			return []string{}, nil
		}

		return v.list, nil
	case KindMap:
		if v.tree == nil {
			return Tree{}, nil
		}

		return v.tree, nil
	case KindInvalid:
	}

	return nil, fmt.Errorf("%w: cannot marshal %s value", sdkerrors.ErrInvalidValue, v.kind)
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Integers and booleans keep
// their type, null becomes an empty string and any other scalar except a
// float is read as a string. Sequences must only hold scalars.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := decodeNode(node)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Values are decoded as
// described on [Value.UnmarshalYAML].
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	out, err := decodeMapping(node)
	if err != nil {
		return err
	}

	*t = out

	return nil
}

// decodeNode builds a Value from node directly, so that null nodes, which
// yaml.v3 never hands to an Unmarshaler, are seen as well.
func decodeNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.SequenceNode:
		list := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("%w: line %d: lists may only hold scalars",
					sdkerrors.ErrInvalidFormat, item.Line)
			}

			list = append(list, item.Value)
		}

		return Value{kind: KindStringList, list: list}, nil
	case yaml.MappingNode:
		t, err := decodeMapping(node)
		if err != nil {
			return Value{}, err
		}

		return Value{kind: KindMap, tree: t}, nil
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	case yaml.DocumentNode:
	}

	return Value{}, fmt.Errorf("%w: line %d: unexpected node", sdkerrors.ErrInvalidFormat, node.Line)
}

func decodeMapping(node *yaml.Node) (Tree, error) {
	if node.Kind == yaml.AliasNode {
		return decodeMapping(node.Alias)
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping", sdkerrors.ErrInvalidFormat, node.Line)
	}

	t := make(Tree, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: keys must be scalars", sdkerrors.ErrInvalidFormat, key.Line)
		}

		v, err := decodeNode(val)
		if err != nil {
			return nil, err
		}

		t[key.Value] = v
	}

	return t, nil
}

func decodeScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return Value{}, fmt.Errorf("%w: line %d: %w", sdkerrors.ErrInvalidFormat, node.Line, err)
		}

		return Int(n), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("%w: line %d: %w", sdkerrors.ErrInvalidFormat, node.Line, err)
		}

		return Bool(b), nil
	case "!!float":
		return Value{}, fmt.Errorf("%w: line %d: float %q is not supported",
			sdkerrors.ErrInvalidFormat, node.Line, node.Value)
	case "!!null":
		return String(""), nil
	}

	return String(node.Value), nil
}
