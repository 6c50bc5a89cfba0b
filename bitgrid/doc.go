// Package bitgrid provides the fixed-capacity bit container used as a
// solver's per-cell domain of candidate modules, plus the flat row-major
// grid of such domains.
//
// What:
//
//   - BitSet wraps github.com/bits-and-blooms/bitset behind a fixed
//     capacity: empty, set, test, find-first-set, popcount, union,
//     intersection, is-empty, plus a restartable ascending iterator.
//   - A Slot is a *BitSet read as a cell's current domain: collapsed iff
//     popcount == 1, contradicted iff empty, otherwise open.
//   - Grid is a flat []*BitSet of Width*Height slots, row-major, with the
//     clone/snapshot support the collapse driver needs to restart an
//     attempt from a pristine state.
//
// Why:
//
//   - Bitwise union/intersection on a fixed-width set is the fast path of
//     arc-consistency propagation; a real bitset library (the one the
//     rest of the Go ecosystem reaches for — see go.mod) keeps that path
//     allocation-light instead of hand-rolling word arithmetic.
//
// This package knows nothing about directions, modules, or propagation;
// those live in package module and package propagate.
package bitgrid
