package sdkerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected indicates a request was rejected and no change was computed.
	ErrRejected = errors.New("rejected")

	// ErrRequestShape indicates a request is malformed on its own, without
	// consulting any collection.
	ErrRequestShape = fmt.Errorf("%w: invalid request", ErrRejected)

	// ErrReference indicates a request references a record that does not exist.
	ErrReference = fmt.Errorf("%w: unknown reference", ErrRejected)

	// ErrDuplicateID indicates the requested id is already in use.
	ErrDuplicateID = fmt.Errorf("%w: duplicate id", ErrRejected)

	// ErrNotFound indicates the record to operate on does not exist.
	ErrNotFound = fmt.Errorf("%w: not found", ErrRejected)

	// ErrNoChange indicates the operation would not change the collection.
	ErrNoChange = fmt.Errorf("%w: no change", ErrRejected)

	// ErrStructure indicates a tree could not be read or written as requested.
	ErrStructure = errors.New("structure")

	// ErrWriteThroughScalar indicates a path treats a scalar value as a tree.
	ErrWriteThroughScalar = fmt.Errorf("%w: write through scalar", ErrStructure)

	// ErrMalformedCount indicates a collection's record count is not a
	// non-negative integer.
	ErrMalformedCount = fmt.Errorf("%w: malformed count", ErrStructure)

	// ErrInvalidPath indicates an empty or otherwise unusable path.
	ErrInvalidPath = fmt.Errorf("%w: invalid path", ErrStructure)

	// ErrInvalidValue indicates a value that cannot be stored in a tree.
	ErrInvalidValue = fmt.Errorf("%w: invalid value", ErrStructure)

	// ErrInvariant indicates a stored collection violates one of its
	// invariants, such as a count that does not match its records or an id
	// used twice.
	ErrInvariant = fmt.Errorf("%w: invariant violated", ErrStructure)

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrLoad indicates an error occurred while loading a collection.
	ErrLoad = errors.New("load")

	// ErrPersist indicates an error occurred while saving a collection.
	ErrPersist = errors.New("persist")
)
