package engine

import "errors"

var (
	// ErrValidation indicates a request that cannot be served as given.
	ErrValidation = errors.New("validation failed")

	// ErrNoParts indicates a feeder list was requested for an empty BOM.
	ErrNoParts = errors.New("no parts to place")
)
