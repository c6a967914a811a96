package collection

import (
	"slices"
	"strconv"
	"strings"

	"github.com/macropower/sdkconf/pkg/settings"
)

// VersionKey holds the schema version at the root of every collection.
const VersionKey = "Version"

// Kind describes the naming conventions of one kind of collection.
type Kind struct {
	// Name is the collection name, also used as the file base name.
	Name string
	// Prefix is prepended to the record index to form record keys.
	Prefix string
	// IDKey is the record field holding the record id.
	IDKey string
	// NameKey is the record field holding the display name.
	NameKey string
	// Required lists record fields that every record must carry.
	Required []string
	// Aliases are alternative names accepted by [Lookup].
	Aliases []string
}

// CountKey returns the root key holding the number of records.
func (k Kind) CountKey() string {
	return k.Prefix + ".Count"
}

// DefaultKey returns the root key holding the id of the default record.
func (k Kind) DefaultKey() string {
	return k.Prefix + ".Default"
}

// RecordKey returns the root key of the record with index n.
func (k Kind) RecordKey(n int) string {
	return k.Prefix + "." + strconv.Itoa(n)
}

// recordIndex returns the index encoded in a root key, if key is a record key.
func (k Kind) recordIndex(key string) (int, bool) {
	s, ok := strings.CutPrefix(key, k.Prefix+".")
	if !ok || s == "" {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strconv.Itoa(n) != s {
		return 0, false
	}

	return n, true
}

var (
	Kits = Kind{
		Name:     "profiles",
		Prefix:   "Profile",
		IDKey:    "PE.Profile.Id",
		NameKey:  "PE.Profile.Name",
		Required: []string{"PE.Profile.Id", "PE.Profile.Name"},
		Aliases:  []string{"kit", "kits", "profile"},
	}

	ToolChains = Kind{
		Name:     "toolchains",
		Prefix:   "ToolChain",
		IDKey:    "ProjectExplorer.ToolChain.Id",
		NameKey:  "ProjectExplorer.ToolChain.DisplayName",
		Required: []string{"ProjectExplorer.ToolChain.Id", "ProjectExplorer.ToolChain.DisplayName"},
		Aliases:  []string{"toolchain", "tc"},
	}

	QtVersions = Kind{
		Name:     "qtversion",
		Prefix:   "QtVersion",
		IDKey:    "autodetectionSource",
		NameKey:  "Name",
		Required: []string{"autodetectionSource", "Name", "QMakePath"},
		Aliases:  []string{"qt", "qtversions"},
	}

	Devices = Kind{
		Name:     "devices",
		Prefix:   "Device",
		IDKey:    "InternalId",
		NameKey:  "Name",
		Required: []string{"InternalId", "Name"},
		Aliases:  []string{"device", "dev"},
	}

	CMakeTools = Kind{
		Name:     "cmaketools",
		Prefix:   "CMakeTools",
		IDKey:    "Id",
		NameKey:  "DisplayName",
		Required: []string{"Id", "DisplayName", "Binary"},
		Aliases:  []string{"cmake", "cmaketool"},
	}

	Debuggers = Kind{
		Name:     "debuggers",
		Prefix:   "DebuggerItem",
		IDKey:    "Id",
		NameKey:  "DisplayName",
		Required: []string{"Id", "DisplayName", "Binary"},
		Aliases:  []string{"debugger"},
	}
)

// All returns every known kind.
func All() []Kind {
	return []Kind{Kits, ToolChains, QtVersions, Devices, CMakeTools, Debuggers}
}

// Lookup returns the kind whose name or alias equals name, ignoring case.
func Lookup(name string) (Kind, bool) {
	name = strings.ToLower(name)

	for _, k := range All() {
		if strings.ToLower(k.Name) == name || slices.Contains(k.Aliases, name) {
			return k, true
		}
	}

	return Kind{}, false
}

// Initialize returns an empty collection of kind k.
func Initialize(k Kind) settings.Tree {
	return settings.Tree{
		VersionKey:     settings.Int(1),
		k.CountKey():   settings.Int(0),
		k.DefaultKey(): settings.String(""),
	}
}
