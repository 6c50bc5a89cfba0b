package heuristic

import (
	"math/rand"

	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/module"
)

// PreferredBitsHeuristic intersects the slot's domain with Preferred and
// picks uniformly from that intersection; when the intersection is
// empty it falls back to Fallback. Ported from the original's
// DrawingChoiceHeuristic (heuristics.rs), which biases module.ModuleID
// selection toward a caller-chosen palette (e.g. "prefer drawing land
// tiles here") without forbidding the rest of the domain outright.
type PreferredBitsHeuristic struct {
	Preferred *bitgrid.BitSet
	Fallback  BitHeuristic
	Rand      *rand.Rand
}

// NewPreferredBitsHeuristic returns a PreferredBitsHeuristic that prefers
// preferred and falls back to fallback. If fallback is nil, a
// DefaultBitHeuristic sharing r is used. If r is nil, a process-local
// source is created.
func NewPreferredBitsHeuristic(preferred *bitgrid.BitSet, fallback BitHeuristic, r *rand.Rand) *PreferredBitsHeuristic {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	if fallback == nil {
		fallback = NewDefaultBitHeuristic(r)
	}
	return &PreferredBitsHeuristic{Preferred: preferred, Fallback: fallback, Rand: r}
}

// ChooseBit implements BitHeuristic.
func (h *PreferredBitsHeuristic) ChooseBit(width, height, row, col int, table *module.Table, slotBits *bitgrid.BitSet) module.ModuleID {
	intersection := h.Preferred.Intersection(slotBits)
	if id, ok := intersection.RandomSetBit(h.Rand); ok {
		return module.ModuleID(id)
	}
	return h.Fallback.ChooseBit(width, height, row, col, table, slotBits)
}
