package wfc

import "errors"

// Sentinel errors surfaced on the final-result channel or returned
// directly from construction.
var (
	// ErrTooManyContradictions means every attempt within the budget hit
	// a contradiction. The caller typically restarts with
	// more attempts, a different heuristic, or a relaxed tile set.
	ErrTooManyContradictions = errors.New("wfc: too many contradictions within attempt budget")

	// ErrInvalidAttempts means attempts < 1 was supplied to Collapse or
	// LocalCollapse; attempts must be at least 1.
	ErrInvalidAttempts = errors.New("wfc: attempts must be >= 1")

	// ErrOutOfBounds means a LocalCollapse target cell lies outside the
	// context's grid.
	ErrOutOfBounds = errors.New("wfc: row/col outside grid bounds")

	// ErrPriorSolutionSize means FromExistingCollapse was handed a prior
	// solution whose length does not equal width*height.
	ErrPriorSolutionSize = errors.New("wfc: prior solution length does not match width*height")

	// ErrNilTable means a nil module.Table was passed to a constructor.
	ErrNilTable = errors.New("wfc: module table is nil")

	// ErrNilHeuristic means a nil SlotHeuristic or BitHeuristic was
	// passed to a constructor.
	ErrNilHeuristic = errors.New("wfc: heuristic must not be nil")
)
