package bitgrid

// Slot is a BitSet read as the current domain of a grid cell. It carries
// no behaviour beyond BitSet's own; the alias exists so signatures in the
// rest of the solver can say "this is a cell's domain" without a second
// concrete type wrapping the same bits.
type Slot = BitSet

// IsCollapsed reports whether exactly one module remains in the domain.
func (b *BitSet) IsCollapsed() bool {
	return b.PopCount() == 1
}

// IsContradicted reports whether no module remains in the domain.
func (b *BitSet) IsContradicted() bool {
	return b.IsEmpty()
}

// IsOpen reports whether the domain holds more than one candidate.
func (b *BitSet) IsOpen() bool {
	return !b.IsCollapsed() && !b.IsContradicted()
}

// SingleModule returns the sole set bit of a collapsed slot. ok is false
// if the slot is not collapsed.
func (b *BitSet) SingleModule() (id uint, ok bool) {
	if !b.IsCollapsed() {
		return 0, false
	}
	return b.FindFirstSet(0)
}
