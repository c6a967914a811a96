package settings

import (
	"slices"
	"strings"
)

// PathSeparator separates segments in the string form of a [Path].
const PathSeparator = "/"

// Path addresses a location inside a [Tree], one segment per nesting level.
type Path []string

// ParsePath splits s on [PathSeparator]. Empty segments are dropped, so
// "a//b/" and "a/b" are the same path.
func ParsePath(s string) Path {
	return strings.FieldsFunc(s, func(c rune) bool {
		return c == '/'
	})
}

// NewPath builds a [Path] from segments, splitting any segment that itself
// contains [PathSeparator].
func NewPath(segments ...string) Path {
	p := make(Path, 0, len(segments))
	for _, s := range segments {
		p = append(p, ParsePath(s)...)
	}

	return p
}

// String joins the segments of p with [PathSeparator].
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Join returns a new path with segments appended to p.
func (p Path) Join(segments ...string) Path {
	return slices.Concat(p, NewPath(segments...))
}

// Last returns the final segment of p, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Equal reports whether p and o have the same segments.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}
