// Package wfc (module github.com/katalvlaran/wfc) is a simple-tiled Wave
// Function Collapse solver: a constraint-propagation engine that fills a
// rectangular grid with module ids drawn from a symmetric adjacency
// table, one cell at a time, narrowing every other cell's candidate set
// as it goes.
//
// The solver is organized as one package per concern:
//
//	bitgrid/   — fixed-capacity bitsets and the flat per-cell domain grid
//	module/    — the adjacency table a solve draws candidate ids from
//	heuristic/ — pluggable slot and bit selection strategies
//	propagate/ — arc-consistency propagation and its per-module cache
//	wfc/       — the collapse driver, result/trace channels and batching
//	cmd/wfcdemo/ — a small runnable example
//
// A full collapse starts every cell at the full candidate domain and
// narrows outward from each forced cell until the grid is either fully
// collapsed or a domain empties out, in which case the attempt restarts.
// A local collapse instead starts from a prior solution, forces one cell
// to a new value, and repairs just enough of its surroundings to restore
// consistency.
package wfc
