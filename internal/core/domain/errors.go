package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrConfiguration indicates malformed locale tables or invalid
	// booklet parameters. It is detected before any page is produced
	// and is fatal to the run.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvariantViolation indicates that a structural invariant failed
	// between pipeline stages, e.g. an odd signature reaching imposition.
	// It always points at a defect upstream and is never recovered.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
