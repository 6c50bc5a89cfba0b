package heuristic

import (
	"math/rand"

	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/module"
)

// DefaultSlotHeuristic breaks ties among the least-open-domain candidates
// the driver hands it by picking one uniformly at random.
type DefaultSlotHeuristic struct {
	Rand *rand.Rand
}

// NewDefaultSlotHeuristic returns a DefaultSlotHeuristic drawing from r.
// If r is nil, a process-local source is created.
func NewDefaultSlotHeuristic(r *rand.Rand) *DefaultSlotHeuristic {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	return &DefaultSlotHeuristic{Rand: r}
}

// ChooseNext implements SlotHeuristic.
func (h *DefaultSlotHeuristic) ChooseNext(width, height int, table *module.Table, openIndices []int) int {
	if len(openIndices) == 0 {
		return 0
	}
	return h.Rand.Intn(len(openIndices))
}

// DefaultBitHeuristic selects a module id uniformly at random from the
// slot's remaining domain.
type DefaultBitHeuristic struct {
	Rand *rand.Rand
}

// NewDefaultBitHeuristic returns a DefaultBitHeuristic drawing from r.
// If r is nil, a process-local source is created.
func NewDefaultBitHeuristic(r *rand.Rand) *DefaultBitHeuristic {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	return &DefaultBitHeuristic{Rand: r}
}

// ChooseBit implements BitHeuristic.
func (h *DefaultBitHeuristic) ChooseBit(width, height, row, col int, table *module.Table, slotBits *bitgrid.BitSet) module.ModuleID {
	id, ok := slotBits.RandomSetBit(h.Rand)
	if !ok {
		panic("heuristic: ChooseBit called on an empty domain")
	}
	return module.ModuleID(id)
}
