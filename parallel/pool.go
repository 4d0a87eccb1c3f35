// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type Pool struct {
	wg    sync.WaitGroup
	work  chan func()
	close func()
}

// Start launches numWorkers goroutines. Values below 1 select GOMAXPROCS. A
// pool of one worker runs every job inline on the caller's goroutine.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting jobs and blocks until the queued ones have finished.
// Do must not be called afterwards.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}

// Each calls fn for every item on a pool of numWorkers and waits for all of
// them. fn receives the item index so results can be stored without locking.
func Each[T any](numWorkers int, items []T, fn func(i int, item T)) {
	pool := Start(min(numWorkers, max(len(items), 1)))
	for i, item := range items {
		pool.Do(func() { fn(i, item) })
	}
	pool.Wait()
}
