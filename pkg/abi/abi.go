package abi

import (
	"regexp"
	"strings"
)

var descriptorRegexp = regexp.MustCompile(`^[a-z0-9_]+-[a-z0-9_]+-[a-z0-9_]+-[a-z0-9_]+-(8|16|32|64|128)bit$`)

// Descriptor is a parsed ABI descriptor.
type Descriptor struct {
	Architecture string
	OS           string
	Flavor       string
	Format       string
	Width        string
}

// IsDescriptor reports whether s is a well formed ABI descriptor.
func IsDescriptor(s string) bool {
	return descriptorRegexp.MatchString(s)
}

// Parse splits s into its parts. It returns false if s is not a descriptor.
func Parse(s string) (Descriptor, bool) {
	if !IsDescriptor(s) {
		return Descriptor{}, false
	}

	parts := strings.Split(s, "-")

	return Descriptor{
		Architecture: parts[0],
		OS:           parts[1],
		Flavor:       parts[2],
		Format:       parts[3],
		Width:        strings.TrimSuffix(parts[4], "bit"),
	}, true
}

// String returns the descriptor in its textual form.
func (d Descriptor) String() string {
	return strings.Join([]string{d.Architecture, d.OS, d.Flavor, d.Format, d.Width + "bit"}, "-")
}
