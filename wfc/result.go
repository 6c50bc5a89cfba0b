package wfc

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/module"
)

// Result is the one message a driver invocation posts to its final-result
// sink: either Solution holds exactly Width*Height module ids and Err is
// nil, or Err names the failure and Solution is nil.
type Result struct {
	// SolveID correlates this result with the TraceEvents of the same
	// solve when several Contexts run concurrently (see RunBatch).
	SolveID  uuid.UUID
	Solution []module.ModuleID
	Err      error
}

// Ok reports whether the solve succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// TraceEvent reports that a slot's domain changed during propagation.
// Events are advisory: the driver never blocks delivering one, so a slow
// consumer may miss some.
type TraceEvent struct {
	SolveID uuid.UUID
	Slot    int
	Bits    *bitgrid.BitSet
}

// FinalSink is the write end of the final-result channel: exactly one
// Result is sent per driver invocation.
type FinalSink chan<- Result

// TraceSink is the write end of the optional trace channel: zero or more
// TraceEvents are sent per driver invocation, non-blockingly.
type TraceSink chan<- TraceEvent
