package wfc

import (
	"context"
	"math"

	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/heuristic"
	"github.com/katalvlaran/wfc/module"
	"github.com/katalvlaran/wfc/propagate"
)

// Collapse drives a full collapse from an empty grid: every attempt
// starts from the pre-seeded pristine state, picks slots via the
// context's heuristics, and retries on contradiction up to attempts
// times. Exactly one Result is posted to finalSink before Collapse
// returns, unless goCtx is cancelled first.
func (ctx *Context) Collapse(goCtx context.Context, attempts int, finalSink FinalSink) {
	if attempts < 1 {
		ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Err: ErrInvalidAttempts})
		return
	}

	seeded := ctx.preSeed(ctx.pristine.Clone())
	if anyContradicted(seeded) {
		// preSeed pruned some slot down to the empty domain: every
		// attempt would restart from the same seeded grid and fail
		// identically, so there is no point spending the budget.
		ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Err: ErrTooManyContradictions})
		return
	}

	for attempt := 0; attempt < attempts; attempt++ {
		select {
		case <-goCtx.Done():
			return
		default:
		}

		grid := seeded.Clone()
		if ctx.runAttempt(goCtx, grid, ctx.slotHeuristic) {
			ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Solution: extractSolution(grid)})
			return
		}
	}

	ctx.sendResult(goCtx, finalSink, Result{SolveID: ctx.id, Err: ErrTooManyContradictions})
}

// preSeed removes, from every slot, any module that has no legal partner
// in a direction where the slot actually has a neighbour. For each
// direction d it computes the bitset of module ids x for which
// modules[x].Allowed(d) is itself non-empty — x has at least one legal
// d-neighbour, somewhere in the table — and intersects that into every
// slot with a real neighbour in direction d. A module absent from that
// set (like an intentionally unconstrained module) can never legally
// occupy a cell with a d-neighbour at all, and is pruned from the whole
// grid in one pass instead of waiting for per-attempt propagation to
// discover it is never compatible with anything.
func (ctx *Context) preSeed(grid *bitgrid.Grid) *bitgrid.Grid {
	var hasPartner [4]*bitgrid.BitSet
	for i, d := range module.AllDirections {
		mask := bitgrid.NewBitSet(ctx.table.Capacity)
		for id, m := range ctx.table.Modules {
			if !m.Allowed(d).IsEmpty() {
				mask.Set(uint(id))
			}
		}
		hasPartner[i] = mask
	}

	for idx := 0; idx < ctx.width*ctx.height; idx++ {
		slot := grid.At(idx)
		for i, d := range module.AllDirections {
			if _, ok := propagate.NeighbourIndex(ctx.width, ctx.height, idx, d); ok {
				slot.IntersectInPlace(hasPartner[i])
			}
		}
	}
	return grid
}

// runAttempt repeatedly collapses the least-entropy open slot and
// propagates until either every slot is collapsed (true) or a
// contradiction occurs (false).
func (ctx *Context) runAttempt(goCtx context.Context, grid *bitgrid.Grid, slotHeuristic heuristic.SlotHeuristic) bool {
	for {
		select {
		case <-goCtx.Done():
			return false
		default:
		}

		open := grid.OpenIndices()
		if len(open) == 0 {
			return true
		}

		candidates := leastEntropyIndices(grid, open)
		pos := slotHeuristic.ChooseNext(ctx.width, ctx.height, ctx.table, candidates)
		slotIdx := candidates[pos]
		row, col := grid.RowCol(slotIdx)

		chosen := ctx.bitHeuristic.ChooseBit(ctx.width, ctx.height, row, col, ctx.table, grid.At(slotIdx))
		singleton := bitgrid.NewBitSet(ctx.table.Capacity)
		singleton.Set(uint(chosen))
		grid.Set(slotIdx, singleton)
		ctx.emitTrace(slotIdx, singleton)

		outcome := propagate.Propagate(grid, ctx.cache, slotIdx, ctx.traceFn())
		if outcome.Contradiction {
			return false
		}
	}
}

// leastEntropyIndices returns the subset of open whose slots share the
// smallest popcount, preserving open's order.
func leastEntropyIndices(grid *bitgrid.Grid, open []int) []int {
	min := uint(math.MaxUint32)
	for _, idx := range open {
		if c := grid.At(idx).PopCount(); c < min {
			min = c
		}
	}
	candidates := make([]int, 0, len(open))
	for _, idx := range open {
		if grid.At(idx).PopCount() == min {
			candidates = append(candidates, idx)
		}
	}
	return candidates
}

// anyContradicted reports whether any slot in grid has emptied out. Used
// right after preSeed, which mutates slots directly without going
// through Propagate's own contradiction detection.
func anyContradicted(grid *bitgrid.Grid) bool {
	for i := 0; i < grid.Width*grid.Height; i++ {
		if grid.At(i).IsContradicted() {
			return true
		}
	}
	return false
}

func extractSolution(grid *bitgrid.Grid) []module.ModuleID {
	out := make([]module.ModuleID, grid.Width*grid.Height)
	for i := range out {
		id, _ := grid.At(i).SingleModule()
		out[i] = module.ModuleID(id)
	}
	return out
}

func (ctx *Context) emitTrace(idx int, bits *bitgrid.BitSet) {
	if ctx.traceSink == nil {
		return
	}
	sendTrace(ctx.traceSink, TraceEvent{SolveID: ctx.id, Slot: idx, Bits: bits.Clone()})
}

func (ctx *Context) traceFn() propagate.Trace {
	if ctx.traceSink == nil {
		return nil
	}
	return func(idx int, bits *bitgrid.BitSet) {
		sendTrace(ctx.traceSink, TraceEvent{SolveID: ctx.id, Slot: idx, Bits: bits})
	}
}

// sendTrace delivers ev without blocking: if the sink has no ready
// receiver, the event is dropped.
func sendTrace(sink TraceSink, ev TraceEvent) {
	select {
	case sink <- ev:
	default:
	}
}

// sendResult delivers r, racing against goCtx cancellation so a caller
// that gave up on the solve never blocks the driver forever.
func (ctx *Context) sendResult(goCtx context.Context, sink FinalSink, r Result) {
	select {
	case sink <- r:
	case <-goCtx.Done():
	}
}
