// Package store persists collections, one file per collection below an SDK
// directory.
//
// Files are written in YAML or JSON. A save replaces the file atomically by
// writing a temporary file next to it and renaming it over the target, so a
// failed save leaves the previous file in place. There is no locking between
// processes: two concurrent invocations saving the same collection race, and
// the last rename wins.
package store
