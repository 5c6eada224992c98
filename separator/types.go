package separator

import "errors"

// Sentinel errors for eagerly validated construction and dimension checks.
var (
	// ErrBadDimension indicates a non-positive box dimension.
	ErrBadDimension = errors.New("separator: dimension must be positive")

	// ErrArityMismatch indicates the relation reads more variables than the
	// declared dimension provides.
	ErrArityMismatch = errors.New("separator: relation arity exceeds dimension")

	// ErrNilContractor indicates FromFunc received a nil contraction.
	ErrNilContractor = errors.New("separator: contractor is nil")

	// ErrDimensionMismatch indicates Apply received a box whose dimension
	// differs from the separator's.
	ErrDimensionMismatch = errors.New("separator: box dimension does not match")
)
