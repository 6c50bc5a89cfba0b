package module

import (
	"fmt"

	"github.com/katalvlaran/wfc/bitgrid"
)

// Table is the immutable catalogue of modules a solve draws from. It is
// read-only once built and may be shared across any number of solver
// contexts.
type Table struct {
	// Modules holds one WfcModule per ModuleID, in [0, len(Modules)).
	Modules []*WfcModule
	// Capacity is the fixed bit width shared by every directional bitset
	// in Modules; it must be >= len(Modules).
	Capacity uint
}

// NewTable allocates a Table of moduleCount empty modules, each able to
// hold up to capacity candidate ids.
func NewTable(moduleCount int, capacity uint) *Table {
	modules := make([]*WfcModule, moduleCount)
	for i := range modules {
		modules[i] = NewModule(capacity)
	}
	return &Table{Modules: modules, Capacity: capacity}
}

// Len returns the module count M.
func (t *Table) Len() int {
	return len(t.Modules)
}

// Full returns a fresh BitSet with bits [0, Len()) set: the "all modules
// allowed" domain a full collapse seeds every slot with.
func (t *Table) Full() *bitgrid.BitSet {
	return bitgrid.Full(t.Capacity, uint(t.Len()))
}

// CheckSymmetric is a debug-only validator for the precondition the
// propagator presumes: j is a member of Modules[i].Allowed(d) if and only
// if i is a member of Modules[j].Allowed(d.Opposite()). It is never
// called by the propagator itself; callers may run it once after
// building a Table from untrusted or hand-authored adjacency data.
func (t *Table) CheckSymmetric() error {
	for i, m := range t.Modules {
		for _, dir := range AllDirections {
			it := m.Allowed(dir).Iterator()
			for {
				j, ok := it.Next()
				if !ok {
					break
				}
				if int(j) >= len(t.Modules) {
					return fmt.Errorf("%w: module %d allows out-of-range module %d to its %s",
						ErrAsymmetric, i, j, dir)
				}
				if !t.Modules[j].Allowed(dir.Opposite()).Test(uint(i)) {
					return fmt.Errorf("%w: module %d allows %d to its %s, but %d does not allow %d to its %s",
						ErrAsymmetric, i, j, dir, j, i, dir.Opposite())
				}
			}
		}
	}
	return nil
}
