package graphio

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidFormat      = errors.New("not a matchbox graph document")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: document may be corrupted")
	ErrMissingValues      = errors.New("leaf node has no values")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "unknown_operand", "duplicate_id")
	Node    uint64 // Node involved, 0 if none
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Node != 0 {
		return fmt.Sprintf("%s: node %d: %s", e.Type, e.Node, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
