package commands

import (
	"errors"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitRejected = 2
	ExitPersist  = 3
)

// ExitCode returns the process exit code for an error returned by a command.
// Rejected requests exit with [ExitRejected]; a failed save after a
// successful mutation exits with [ExitPersist].
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, sdkerrors.ErrRejected):
		return ExitRejected
	case errors.Is(err, sdkerrors.ErrPersist):
		return ExitPersist
	}

	return ExitError
}
