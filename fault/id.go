package fault

import "errors"

// Predefined errors for decoding and loading records.
var (
	// ErrInvalidRecord indicates that a record in the bulk payload could not
	// be decoded, typically because of an unknown status or a malformed
	// timestamp.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrDuplicateRecord indicates that two records in the same load share
	// an id.
	ErrDuplicateRecord = errors.New("duplicate record id")

	// ErrUnknownAttribute indicates that an attribute name is not one of the
	// request attributes, or that no filter is registered for it.
	ErrUnknownAttribute = errors.New("unknown attribute")
)
