package wfc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job pairs a Context with the invocation RunBatch should drive for it,
// so a caller can fan a slice of independent solves out across a worker
// pool — the "offloadable to a background worker" shape,
// generalized from one worker to N.
type Job struct {
	Ctx      *Context
	Attempts int
	Sink     FinalSink
}

// RunBatch drives every Job concurrently, each on its own goroutine, and
// waits for all of them to post a Result (or for ctx to be cancelled).
// The module.Table backing each Job's Context is shared-immutable, so no
// locking is required across the fan-out; each Context owns its own grid
// and propagation cache exclusively.
func RunBatch(ctx context.Context, jobs []Job) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		group.Go(func() error {
			job.Ctx.Collapse(groupCtx, job.Attempts, job.Sink)
			return nil
		})
	}
	return group.Wait()
}
