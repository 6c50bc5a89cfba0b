package wfc

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wfc/module"
)

func TestNewContext_NilTable(t *testing.T) {
	slotH, bitH := deterministicHeuristics()
	_, err := NewContext(nil, 2, 2, slotH, bitH)
	if !errors.Is(err, ErrNilTable) {
		t.Fatalf("expected ErrNilTable, got %v", err)
	}
}

func TestNewContext_NilHeuristics(t *testing.T) {
	table := uniformTable()
	slotH, bitH := deterministicHeuristics()

	if _, err := NewContext(table, 2, 2, nil, bitH); !errors.Is(err, ErrNilHeuristic) {
		t.Fatalf("expected ErrNilHeuristic for nil slot heuristic, got %v", err)
	}
	if _, err := NewContext(table, 2, 2, slotH, nil); !errors.Is(err, ErrNilHeuristic) {
		t.Fatalf("expected ErrNilHeuristic for nil bit heuristic, got %v", err)
	}
}

func TestNewContext_BadDimensions(t *testing.T) {
	table := uniformTable()
	slotH, bitH := deterministicHeuristics()

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}} {
		if _, err := NewContext(table, dims[0], dims[1], slotH, bitH); err == nil {
			t.Fatalf("expected error for dims %v, got nil", dims)
		}
	}
}

func TestNewContext_ID_IsStable(t *testing.T) {
	table := uniformTable()
	slotH, bitH := deterministicHeuristics()
	ctx, err := NewContext(table, 2, 2, slotH, bitH)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.ID() != ctx.ID() {
		t.Fatal("ID() must be stable across calls")
	}
}

func TestFromExistingCollapse_PriorSolutionSizeMismatch(t *testing.T) {
	table := checkerboardTable()
	slotH, bitH := deterministicHeuristics()

	_, err := FromExistingCollapse(table, 2, 2, slotH, bitH, []module.ModuleID{0, 1, 0})
	if !errors.Is(err, ErrPriorSolutionSize) {
		t.Fatalf("expected ErrPriorSolutionSize, got %v", err)
	}
}

func TestFromExistingCollapse_Valid(t *testing.T) {
	table := checkerboardTable()
	slotH, bitH := deterministicHeuristics()

	prior := []module.ModuleID{0, 1, 1, 0}
	ctx, err := FromExistingCollapse(table, 2, 2, slotH, bitH, prior)
	if err != nil {
		t.Fatalf("FromExistingCollapse: %v", err)
	}
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
}
