package bitgrid

import "testing"

func TestSlot_States(t *testing.T) {
	empty := NewBitSet(4)
	if !empty.IsContradicted() || empty.IsOpen() || empty.IsCollapsed() {
		t.Errorf("empty slot should be contradicted only")
	}

	singleton := NewBitSet(4)
	singleton.Set(1)
	if !singleton.IsCollapsed() || singleton.IsOpen() || singleton.IsContradicted() {
		t.Errorf("singleton slot should be collapsed only")
	}
	if id, ok := singleton.SingleModule(); !ok || id != 1 {
		t.Errorf("SingleModule() = (%d,%v); want (1,true)", id, ok)
	}

	open := Full(4, 3)
	if !open.IsOpen() || open.IsCollapsed() || open.IsContradicted() {
		t.Errorf("3-bit slot should be open only")
	}
	if _, ok := open.SingleModule(); ok {
		t.Errorf("SingleModule() on an open slot should report !ok")
	}
}
