package heuristic

import (
	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/module"
)

// SlotHeuristic selects which open slot to collapse next. The driver has
// already narrowed openIndices to the slots sharing the globally minimal
// open-domain popcount; ChooseNext returns a position into that slice,
// not a raw grid index.
type SlotHeuristic interface {
	ChooseNext(width, height int, table *module.Table, openIndices []int) int
}

// BitHeuristic selects which module id to keep from a slot being
// collapsed. The returned id must be a member of slotBits.
type BitHeuristic interface {
	ChooseBit(width, height, row, col int, table *module.Table, slotBits *bitgrid.BitSet) module.ModuleID
}
