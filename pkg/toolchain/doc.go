// Package toolchain adds and removes toolchain records in the "toolchains"
// collection.
package toolchain
