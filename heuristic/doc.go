// Package heuristic defines the two pluggable choice policies the
// collapse driver consults: which open slot to collapse next
// (SlotHeuristic), and which module within that slot's domain to keep
// (BitHeuristic). The propagator in package propagate never calls into
// either interface; these are driver-only extension points, the way
// bfs.Option hooks are consulted only by the bfs walker and never by
// core.Graph itself.
package heuristic
