package core

import "errors"

// Common errors.
var (
	// ErrStoreClosed is returned by operations on a disposed store.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidImport is returned when an imported payload cannot be
	// parsed or does not take the shape of a note array.
	ErrInvalidImport = errors.New("import payload is not a note array")
)
