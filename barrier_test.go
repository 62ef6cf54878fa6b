package pmsort

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestBarrierPhases(t *testing.T) {
	const workers = 8
	const phases = 50
	b := newBarrier(workers)
	var counter int64

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := 0; p < phases; p++ {
				atomic.AddInt64(&counter, 1)
				if err := b.await(); err != nil {
					t.Errorf("await: %v", err)
					return
				}
				// every worker must have finished the phase by now
				if got := atomic.LoadInt64(&counter); got < int64((p+1)*workers) {
					t.Errorf("phase %d: counter %d, want at least %d", p, got, (p+1)*workers)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestBarrierSingleParty(t *testing.T) {
	b := newBarrier(1)
	for i := 0; i < 3; i++ {
		if err := b.await(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBarrierBroken(t *testing.T) {
	const workers = 4
	b := newBarrier(workers)

	errs := make(chan error, workers-1)
	for w := 0; w < workers-1; w++ {
		go func() {
			errs <- b.await()
		}()
	}
	b.breakBarrier()
	for w := 0; w < workers-1; w++ {
		if err := <-errs; err != errBarrierBroken {
			t.Fatalf("got %v, want errBarrierBroken", err)
		}
	}
	// a broken barrier stays broken
	if err := b.await(); err != errBarrierBroken {
		t.Fatalf("got %v, want errBarrierBroken", err)
	}
}
