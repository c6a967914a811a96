package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
)

// ParseValue parses the `type:value` form used on the command line. Known
// types are string, int, bool and stringlist; stringlist items are comma
// separated and an empty stringlist value yields an empty list.
func ParseValue(s string) (Value, error) {
	typ, raw, found := strings.Cut(s, ":")
	if !found {
		return Value{}, fmt.Errorf("%w: no type given in %q", sdkerrors.ErrInvalidFormat, s)
	}

	switch strings.ToLower(typ) {
	case "string":
		return String(raw), nil
	case "int":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an int: %w", sdkerrors.ErrInvalidFormat, raw, err)
		}

		return Int(n), nil
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a bool: %w", sdkerrors.ErrInvalidFormat, raw, err)
		}

		return Bool(b), nil
	case "stringlist":
		if raw == "" {
			return StringList(), nil
		}

		return StringList(strings.Split(raw, ",")...), nil
	}

	return Value{}, fmt.Errorf("%w: unknown type %q in %q", sdkerrors.ErrInvalidFormat, typ, s)
}

// ParseKeyValue parses a `<KEY> <TYPE:VALUE>` pair, where KEY is a path in
// the form accepted by [ParsePath].
func ParseKeyValue(key, value string) (KeyValue, error) {
	p := ParsePath(key)
	if len(p) == 0 {
		return KeyValue{}, fmt.Errorf("%w: empty key", sdkerrors.ErrInvalidFormat)
	}

	v, err := ParseValue(value)
	if err != nil {
		return KeyValue{}, fmt.Errorf("key %q: %w", key, err)
	}

	return KeyValue{Path: p, Value: v}, nil
}

// ParseKeyValues parses alternating keys and typed values.
func ParseKeyValues(args []string) ([]KeyValue, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: key %q has no value", sdkerrors.ErrInvalidFormat, args[len(args)-1])
	}

	kvs := make([]KeyValue, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		kv, err := ParseKeyValue(args[i], args[i+1])
		if err != nil {
			return nil, err
		}

		kvs = append(kvs, kv)
	}

	return kvs, nil
}
