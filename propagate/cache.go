package propagate

import (
	"fmt"

	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/module"
)

// Cache memoises, per module id, the four directional bitsets a
// propagation pass reads from a module.Table. It is built lazily: the
// first query for a module id resolves the lookup once and every
// subsequent query for the same id reads that cached entry by slice
// index, then picks the mask for dir.
type Cache struct {
	table *module.Table
	masks []*dirMasks
}

type dirMasks struct {
	north, south, east, west *bitgrid.BitSet
}

// NewCache returns a cache bound to table. The cache must not outlive
// the Table it was built from.
func NewCache(table *module.Table) *Cache {
	return &Cache{table: table, masks: make([]*dirMasks, table.Len())}
}

// Mask returns the bitset of modules allowed on id's dir side. It panics
// with ErrCacheMiss if id is outside the owning table's range: this is a
// fatal, non-recoverable invariant violation, not a value the core can
// sensibly return to the caller.
func (c *Cache) Mask(id module.ModuleID, dir module.Direction) *bitgrid.BitSet {
	if int(id) >= len(c.masks) {
		panic(fmt.Errorf("%w: module id %d, table has %d modules", ErrCacheMiss, id, len(c.masks)))
	}
	dm := c.masks[id]
	if dm == nil {
		dm = &dirMasks{
			north: c.table.Modules[id].North,
			south: c.table.Modules[id].South,
			east:  c.table.Modules[id].East,
			west:  c.table.Modules[id].West,
		}
		c.masks[id] = dm
	}
	switch dir {
	case module.North:
		return dm.north
	case module.South:
		return dm.south
	case module.East:
		return dm.east
	case module.West:
		return dm.west
	default:
		panic("propagate: invalid Direction")
	}
}

// Reset clears all memoised entries, forcing the next Mask call per
// module to re-resolve from the table.
func (c *Cache) Reset() {
	for i := range c.masks {
		c.masks[i] = nil
	}
}
