package module

import "errors"

// Sentinel errors for the module package.
var (
	// ErrAsymmetric indicates the table violates the symmetry
	// precondition documented on Table.CheckSymmetric.
	ErrAsymmetric = errors.New("module: adjacency table is not symmetric")
)
