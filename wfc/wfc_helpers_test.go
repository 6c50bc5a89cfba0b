package wfc

import (
	"math/rand"

	"github.com/katalvlaran/wfc/heuristic"
	"github.com/katalvlaran/wfc/module"
)

// uniformTable returns a single-module table where
// the one module tolerates itself on every side: every grid, of any
// size, collapses to all zeros with no contradiction possible.
func uniformTable() *module.Table {
	table := module.NewTable(1, 1)
	for _, d := range module.AllDirections {
		table.Modules[0].AddNeighbour(d, 0)
	}
	return table
}

// checkerboardTable returns a two-module table
// where each module only tolerates the other as a neighbour in every
// direction, forcing strict parity alternation across any grid.
func checkerboardTable() *module.Table {
	table := module.NewTable(2, 2)
	for _, d := range module.AllDirections {
		table.Modules[0].AddNeighbour(d, 1)
		table.Modules[1].AddNeighbour(d, 0)
	}
	return table
}

// checkerboardWithDeadModule returns the checkerboard table plus a third
// module nobody allows and which allows nobody: it
// must be pruned by preSeed before any attempt runs, since no amount of
// per-attempt propagation alone would ever discover it standalone.
func checkerboardWithDeadModule() *module.Table {
	table := module.NewTable(3, 3)
	for _, d := range module.AllDirections {
		table.Modules[0].AddNeighbour(d, 1)
		table.Modules[1].AddNeighbour(d, 0)
	}
	return table
}

// permissiveTable returns a two-module table where either module
// tolerates both itself and the other in every direction: no combination
// is ever illegal, so forcing any single cell never contradicts.
func permissiveTable() *module.Table {
	table := module.NewTable(2, 2)
	for _, d := range module.AllDirections {
		table.Modules[0].AddNeighbour(d, 0)
		table.Modules[0].AddNeighbour(d, 1)
		table.Modules[1].AddNeighbour(d, 0)
		table.Modules[1].AddNeighbour(d, 1)
	}
	return table
}

// impossibleTable returns a single module that tolerates no neighbour at
// all in any direction: any grid wider or taller than 1x1 is
// unsatisfiable.
func impossibleTable() *module.Table {
	return module.NewTable(1, 1)
}

func deterministicHeuristics() (heuristic.SlotHeuristic, heuristic.BitHeuristic) {
	slotH := heuristic.NewDefaultSlotHeuristic(rand.New(rand.NewSource(1)))
	bitH := heuristic.NewDefaultBitHeuristic(rand.New(rand.NewSource(2)))
	return slotH, bitH
}
