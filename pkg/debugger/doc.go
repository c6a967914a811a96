// Package debugger adds and removes debugger records in the "debuggers"
// collection.
package debugger
