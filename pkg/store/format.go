package store

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	kyaml "sigs.k8s.io/yaml"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
)

// Format is a file format for collections.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON}
}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: unknown format %q", sdkerrors.ErrInvalidFormat, s)
}

// Ext returns the file extension of the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Encode renders v in the format f. v is typically a [settings.Tree] or a
// [settings.Value].
func Encode(v any, f Format) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	switch f {
	case FormatYAML:
		return buf.Bytes(), nil
	case FormatJSON:
		out, err := kyaml.YAMLToJSON(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("convert yaml to json: %w", err)
		}

		return append(out, '\n'), nil
	}

	return nil, fmt.Errorf("%w: unknown format %q", sdkerrors.ErrInvalidFormat, f)
}

// Decode parses data in the format f into a tree. JSON documents are read
// through the YAML decoder, which accepts them as flow style YAML. An empty
// or null document yields an empty tree.
func Decode(data []byte, f Format) (settings.Tree, error) {
	if f != FormatYAML && f != FormatJSON {
		return nil, fmt.Errorf("%w: unknown format %q", sdkerrors.ErrInvalidFormat, f)
	}

	var t settings.Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", sdkerrors.ErrInvalidFormat, f, err)
	}

	if t == nil {
		return settings.Tree{}, nil
	}

	return t, nil
}
