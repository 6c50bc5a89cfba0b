package propagate

import (
	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/module"
)

// Outcome is the result of one Propagate call: either arc consistency
// was restored (Contradiction == false), or some slot's domain went
// empty during the pass, in which case ContradictedAt names it.
type Outcome struct {
	Contradiction  bool
	ContradictedAt int
}

// Trace is called each time a slot's domain actually narrows during a
// Propagate pass, after the initial seed; a slot that narrows more than
// once is reported each time. A nil Trace is a valid no-op.
type Trace func(idx int, bits *bitgrid.BitSet)

type workItem struct {
	idx int
	dir module.Direction
}

// NeighbourIndex steps one cell from idx in direction dir within a
// width x height grid. ok is false if the step leaves the grid.
func NeighbourIndex(width, height, idx int, dir module.Direction) (neighbour int, ok bool) {
	row, col := idx/width, idx%width
	switch dir {
	case module.North:
		row--
	case module.South:
		row++
	case module.East:
		col++
	case module.West:
		col--
	}
	if row < 0 || row >= height || col < 0 || col >= width {
		return 0, false
	}
	return row*width + col, true
}

// Propagate restores arc consistency starting from seed: it narrows
// neighbouring slots until every pair of adjacent slots agrees on what
// remains legal between them, or a slot's domain empties out.
//
// Propagate mutates grid in place. It never looks at heuristics; slot
// and bit selection happen entirely in the driver that calls it.
func Propagate(grid *bitgrid.Grid, cache *Cache, seed int, trace Trace) Outcome {
	worklist := make([]workItem, 0, 4*grid.Width*grid.Height)
	for _, d := range module.AllDirections {
		worklist = append(worklist, workItem{idx: seed, dir: d})
	}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		neighbourIdx, ok := NeighbourIndex(grid.Width, grid.Height, item.idx, item.dir)
		if !ok {
			continue
		}

		allowed := allowedMask(grid.At(item.idx), cache, item.dir)
		oldDomain := grid.At(neighbourIdx)
		newDomain := oldDomain.Intersection(allowed)

		if newDomain.Equal(oldDomain) {
			continue
		}
		if newDomain.IsEmpty() {
			return Outcome{Contradiction: true, ContradictedAt: neighbourIdx}
		}

		grid.Set(neighbourIdx, newDomain)
		if trace != nil {
			trace(neighbourIdx, newDomain.Clone())
		}

		back := item.dir.Opposite()
		for _, d := range module.AllDirections {
			if d == back {
				continue
			}
			worklist = append(worklist, workItem{idx: neighbourIdx, dir: d})
		}
	}

	return Outcome{}
}

// allowedMask unions, over every module still set in slot, the modules
// permitted on that module's dir side.
func allowedMask(slot *bitgrid.BitSet, cache *Cache, dir module.Direction) *bitgrid.BitSet {
	result := bitgrid.NewBitSet(slot.Capacity())
	it := slot.Iterator()
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		result.UnionInPlace(cache.Mask(module.ModuleID(m), dir))
	}
	return result
}
