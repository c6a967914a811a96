// Package cmaketool adds and removes CMake tool records in the "cmaketools"
// collection.
package cmaketool
