// Package propagate implements arc-consistency propagation over a
// bitgrid.Grid: the AC-3-style worklist algorithm that, given a seed
// slot whose domain has just narrowed, restores the invariant that every
// module still possible in a slot has at least one compatible partner in
// each neighbouring slot.
//
// Cache memoises the module.Table lookups a propagation pass performs
// repeatedly; it carries no state beyond what module.Table already
// exposes and exists purely for locality: after a module id's first
// lookup, its four directional masks are read from one cached entry.
package propagate
