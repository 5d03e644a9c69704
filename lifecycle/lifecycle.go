package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle owns background goroutines that must be gone before a resource is released.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Go(task func(ctx context.Context)) {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		task(lc.ctx)
	}()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// Stop signals every task and waits for all of them to return.
func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
