// Package settings implements the in-memory settings tree shared by every
// SDK collection, and the primitives used to query and mutate it.
//
// A [Tree] maps string keys to a [Value], which is either a scalar (string,
// int, bool), a string list, or another [Tree]. Locations inside a tree are
// addressed by a [Path]. All primitives ([Get], [Find], [FindKey], [AddKeys]
// and [RemoveKeys]) are pure: they never modify the tree they are given, so
// a rejected or failed operation cannot corrupt the caller's working copy.
package settings
