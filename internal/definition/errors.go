package definition

import "errors"

// Generation errors.
var (
	// ErrNoUsableContent means zero conversations survived filtering.
	// Distinct from a budget-limited partial definition, which is a
	// normal result.
	ErrNoUsableContent = errors.New("no usable conversations found")
)
