package pmsort

import (
	"errors"
	"sync"
)

// errBarrierBroken is returned from await after a peer worker failed; it is
// replaced by the worker's recorded failure before Sort returns.
var errBarrierBroken = errors.New("pmsort: sort aborted by peer worker failure")

// barrier is a reusable synchronization point for a fixed set of workers.
// No worker passes an await until every worker has arrived at it. A broken
// barrier releases all waiters immediately so a failed worker cannot strand
// its peers; once broken it stays broken.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	round   int
	broken  bool
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// await blocks until all parties have called await for the current round.
// It returns errBarrierBroken if the barrier was broken before or while
// waiting.
func (b *barrier) await() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return errBarrierBroken
	}
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.round++
		b.cond.Broadcast()
		return nil
	}
	round := b.round
	for round == b.round && !b.broken {
		b.cond.Wait()
	}
	if b.broken {
		return errBarrierBroken
	}
	return nil
}

// breakBarrier wakes all current and future waiters with errBarrierBroken.
func (b *barrier) breakBarrier() {
	b.mu.Lock()
	b.broken = true
	b.cond.Broadcast()
	b.mu.Unlock()
}
