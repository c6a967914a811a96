// Package collection implements the shape conventions shared by every SDK
// collection (kits, toolchains, Qt versions, devices, CMake tools and
// debuggers).
//
// A collection is a [settings.Tree] with a `Version` key, a record count, a
// default record id, and records stored under sequential keys
// `<Prefix>.0` to `<Prefix>.<Count-1>`. Each record carries a unique id
// under the id field of its [Kind]. The functions in this package only rely
// on these conventions, which lets one collection validate references into
// another without knowing its full schema.
package collection
