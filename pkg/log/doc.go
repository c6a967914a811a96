// Package log builds [slog.Handler] values from command line strings.
//
// Handlers are backed by github.com/charmbracelet/log, which renders
// colored text on terminals and also supports logfmt and JSON output.
package log
