package hashset

import "errors"

var (
	// ErrInvalidArgument is returned when a capacity is outside [1, MaxCapacity].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullNotAllowed is returned when a nil element or a nil collection is passed.
	ErrNullNotAllowed = errors.New("null not allowed")

	// ErrNoSuchElement is returned by Cursor.Next when the traversal is exhausted.
	ErrNoSuchElement = errors.New("no such element")

	// ErrIllegalState is returned by Cursor.Remove when there is nothing to remove.
	ErrIllegalState = errors.New("illegal state")

	// ErrArrayStoreMismatch is returned by ToSliceOf when an element cannot be
	// stored in the destination slice.
	ErrArrayStoreMismatch = errors.New("array store mismatch")
)
