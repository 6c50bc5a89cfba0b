// Package module defines the tile catalogue the solver consumes: a
// Direction tag, a ModuleID space, the per-module adjacency record
// WfcModule, and the read-only Table that groups them.
//
// A Table is built once by the caller and shared-immutable across any
// number of solver contexts (github.com/katalvlaran/wfc). This package
// never mutates a Table after construction and never looks inside a
// module beyond its four directional bitsets.
//
// Symmetry precondition: for every i, j and direction d, j must be a
// member of Modules[i].Allowed(d) if and only if i is a member of
// Modules[j].Allowed(d.Opposite()). A typical catalogue derives this by
// comparing shared tile-edge signatures per direction — deriving the
// catalogue from a concrete tile asset is outside this package's job;
// Table only stores whatever adjacency the caller already decided on.
// Table.CheckSymmetric is a debug-only validator for that precondition;
// it is never called on the hot path.
package module
