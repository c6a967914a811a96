// Package kit implements the "add kit" composition operation.
//
// A kit ties together records of other collections: toolchains per
// language, a Qt version, a device and a CMake tool. [Add] validates every
// reference against the loaded collections before a single key is written,
// then appends the new record to the "profiles" collection in one batch.
// A rejected request returns a nil tree, so the caller's tree is never
// modified and nothing needs to be saved.
//
// The validation runs in a fixed order and stops at the first violation:
//
//  1. The shape of the request ([Request.Validate]).
//  2. The kit id is not yet used under an id field anywhere in the target.
//  3. Every toolchain reference exists, or is an ABI descriptor.
//  4. The Qt version exists (after "SDK." namespacing).
//  5. The device exists.
//  6. The CMake tool exists.
//  7. The target's record count is well formed.
package kit
