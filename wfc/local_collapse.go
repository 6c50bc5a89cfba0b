package wfc

import (
	"context"

	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/module"
	"github.com/katalvlaran/wfc/propagate"
)

// LocalCollapse overwrites the cell at (row, col) with forced and
// re-propagates just enough to restore a globally consistent grid,
// starting from the prior solution this Context was built from via
// FromExistingCollapse. forced need not have been a member of the
// prior cell's domain: this is an override, not a refinement.
//
// Every other cell starts from the modules that agree with each of its
// neighbours' modules in the prior solution (with forced standing in for
// the prior module at (row, col)); no cell is widened beyond that. When
// this leaves some cell with no module, as when one cell of a
// checkerboard is forced to the opposite parity, the Result is
// ErrTooManyContradictions even if a consistent grid exists.
//
// Exactly one Result is posted to finalSink before LocalCollapse
// returns, unless goCtx is cancelled first.
func (ctx *Context) LocalCollapse(goCtx context.Context, row, col int, forced module.ModuleID, attempts int, finalSink FinalSink) {
	if attempts < 1 {
		ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Err: ErrInvalidAttempts})
		return
	}
	if !ctx.pristine.InBounds(row, col) {
		ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Err: ErrOutOfBounds})
		return
	}

	seedIdx := ctx.pristine.Index(row, col)
	forcedBase := ctx.pristine.Clone()
	forcedBits := bitgrid.NewBitSet(ctx.table.Capacity)
	forcedBits.Set(uint(forced))
	forcedBase.Set(seedIdx, forcedBits)

	relaxed := ctx.relax(forcedBase, seedIdx)
	if anyContradicted(relaxed) {
		// A neighbour's domain emptied out while relaxing against the
		// forced cell, before propagation ever ran: no attempt can
		// recover from that, since relax is deterministic.
		ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Err: ErrTooManyContradictions})
		return
	}

	for attempt := 0; attempt < attempts; attempt++ {
		select {
		case <-goCtx.Done():
			return
		default:
		}

		grid := relaxed.Clone()
		outcome := propagate.Propagate(grid, ctx.cache, seedIdx, ctx.traceFn())
		if !outcome.Contradiction && ctx.runAttempt(goCtx, grid, ctx.slotHeuristic) {
			ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Solution: extractSolution(grid)})
			return
		}
	}

	ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Err: ErrTooManyContradictions})
}

// relax expands every slot but forcedIdx to the set of modules still
// consistent with its collapsed neighbours in base, implementing the
// "full-grid relax" variant, one of several valid relaxation strategies:
// base holds only collapsed or just-forced slots, so every neighbour
// check below is against a singleton domain.
func (ctx *Context) relax(base *bitgrid.Grid, forcedIdx int) *bitgrid.Grid {
	out := bitgrid.NewGrid(ctx.width, ctx.height, ctx.table.Capacity)
	for idx := 0; idx < ctx.width*ctx.height; idx++ {
		if idx == forcedIdx {
			out.Set(idx, base.At(idx).Clone())
			continue
		}

		domain := ctx.table.Full()
		for _, d := range module.AllDirections {
			neighbourIdx, ok := propagate.NeighbourIndex(ctx.width, ctx.height, idx, d)
			if !ok {
				continue
			}
			if neighbourModule, ok := base.At(neighbourIdx).SingleModule(); ok {
				domain.IntersectInPlace(ctx.cache.Mask(module.ModuleID(neighbourModule), d.Opposite()))
			}
		}
		out.Set(idx, domain)
	}
	return out
}
