// Package wfc drives the collapse of a bitgrid.Grid under a module.Table:
// full collapse from an empty grid, and local repair that overwrites one
// cell of an already-collapsed grid and re-propagates just enough to
// restore consistency.
//
// A Context is built once per solve (cheap) and consumed by exactly one
// of Collapse or LocalCollapse, which deliver exactly one Result on the
// caller-owned final sink and, if a trace sink was configured, zero or
// more TraceEvents while propagation narrows slots. Both are safe to run
// on a background goroutine: the module.Table a Context is built from is
// shared-immutable, and RunBatch is the idiomatic way to fan a slice of
// independent Contexts out across a worker pool (the errgroup shape
// golang.org/x/sync/errgroup is built for).
//
// Cancellation is cooperative via context.Context, the same convention
// bfs.WithContext and dfs use: the driver checks ctx.Done() once per
// attempt and once per slot it collapses (a propagation pass, once
// started, runs to completion), and a result send
// races against ctx.Done() so a caller that gives up on a solve doesn't
// leave the driver blocked.
package wfc
