package heuristic

import (
	"math"

	"github.com/katalvlaran/wfc/module"
)

// LeastDistanceHeuristic picks, among the candidate slots it is offered,
// the one minimising squared Euclidean distance from Row, Col — the
// anchor used by local repair so that collapse grows outward from the
// forced cell. Ties keep the first candidate scanned, since the scan
// only replaces the running minimum on a strict improvement.
type LeastDistanceHeuristic struct {
	Row, Col int
}

// ChooseNext implements SlotHeuristic.
func (h *LeastDistanceHeuristic) ChooseNext(width, height int, table *module.Table, openIndices []int) int {
	if len(openIndices) == 0 {
		return 0
	}
	minID, minDist := len(openIndices)-1, math.MaxFloat64
	for i, idx := range openIndices {
		row, col := idx/width, idx%width
		d := squareDist(h.Row, h.Col, row, col)
		if d < minDist {
			minID, minDist = i, d
		}
	}
	return minID
}

func squareDist(r1, c1, r2, c2 int) float64 {
	dr := float64(r2 - r1)
	dc := float64(c2 - c1)
	return dr*dr + dc*dc
}
