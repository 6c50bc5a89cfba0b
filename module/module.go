package module

import "github.com/katalvlaran/wfc/bitgrid"

// ModuleID indexes a module within a Table, in [0, Table.Len()).
type ModuleID uint

// WfcModule is an immutable record of which modules may legally sit on
// each side of this one. Each directional bitset is a domain over
// ModuleID, sized to the owning Table's capacity.
type WfcModule struct {
	North, South, East, West *bitgrid.BitSet
}

// NewModule returns a module with no legal neighbours in any direction,
// each directional bitset sized for capacity candidate modules.
func NewModule(capacity uint) *WfcModule {
	return &WfcModule{
		North: bitgrid.NewBitSet(capacity),
		South: bitgrid.NewBitSet(capacity),
		East:  bitgrid.NewBitSet(capacity),
		West:  bitgrid.NewBitSet(capacity),
	}
}

// Allowed returns the bitset of modules permitted on m's dir side.
func (m *WfcModule) Allowed(dir Direction) *bitgrid.BitSet {
	switch dir {
	case North:
		return m.North
	case South:
		return m.South
	case East:
		return m.East
	case West:
		return m.West
	default:
		panic("module: invalid Direction")
	}
}

// AddNeighbour marks id as a legal occupant of m's dir side. Callers are
// responsible for the symmetry precondition documented on
// Table.CheckSymmetric; AddNeighbour only ever sets the one bit asked
// for.
func (m *WfcModule) AddNeighbour(dir Direction, id ModuleID) {
	m.Allowed(dir).Set(uint(id))
}
