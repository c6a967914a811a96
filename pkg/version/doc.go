// Package version provides build version information for the sdkconf CLI.
//
// Version and Revision can be set at link time with -ldflags "-X"; when they
// are not, they are filled from the module build information.
package version
