// Package validation wraps go-playground/validator for request types.
//
// Fields are named by their `flag` struct tag in diagnostics, so an error
// refers to the command line flag the user can fix. Every failure is
// reported as [sdkerrors.ErrRequestShape].
package validation
