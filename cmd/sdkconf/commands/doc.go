// Package commands implements the sdkconf command line interface.
//
// Collection commands (kit, toolchain, qt, device, cmake, debugger) share a
// load, mutate, save cycle against the store selected by the root flags.
// Generic commands (get, find, find-key, add-keys, rm-keys) address any
// collection by name and key path. Errors are mapped to exit codes by
// [ExitCode].
package commands
