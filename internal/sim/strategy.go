package sim

import (
	"runtime"
	"sync"
)

// Strategy is an interchangeable driver for one simulation tick. Both
// implementations apply the identical per-ship rule (StepShip); they differ
// only in how the ship index range is scheduled.
//
// Tick returns only after every ship has been updated, so a caller never
// observes a half-updated world.
type Strategy interface {
	// ID returns a unique identifier (e.g. "sequential", "parallel").
	// Used for CLI selection and run storage.
	ID() string

	// Tick advances every ship in the world by dt.
	Tick(w *World, dt float64, cfg *Config)
}

// Sequential evaluates all ships in index order on a single goroutine.
// It is the correctness baseline and has no scheduling overhead, which makes
// it the right choice for small populations.
type Sequential struct{}

// NewSequential creates the sequential strategy.
func NewSequential() *Sequential {
	return &Sequential{}
}

// ID returns the strategy identifier.
func (*Sequential) ID() string { return "sequential" }

// Tick runs the full tick on the calling goroutine.
func (*Sequential) Tick(w *World, dt float64, cfg *Config) {
	for i := range w.Ships {
		StepShip(&w.Ships[i], w.Planets, dt, cfg)
	}
	w.Tick++
}

// Parallel partitions the ship range into contiguous chunks, one per worker
// goroutine. Ships only read planet state and their own state, so the
// disjoint partition needs no locking; a WaitGroup forms the barrier at the
// end of the tick.
type Parallel struct {
	workers int
}

// NewParallel creates the parallel strategy with the given worker count.
// A count of zero or less means one worker per CPU.
func NewParallel(workers int) *Parallel {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Parallel{workers: workers}
}

// ID returns the strategy identifier.
func (*Parallel) ID() string { return "parallel" }

// Workers returns the configured worker count.
func (p *Parallel) Workers() int { return p.workers }

// Tick fans the ship range out across the workers and waits for all of them.
func (p *Parallel) Tick(w *World, dt float64, cfg *Config) {
	n := len(w.Ships)
	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := range w.Ships {
			StepShip(&w.Ships[i], w.Planets, dt, cfg)
		}
		w.Tick++
		return
	}

	chunk := n / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for g := 0; g < workers; g++ {
		start := g * chunk
		end := start + chunk
		if g == workers-1 {
			end = n // Last worker picks up the remainder
		}
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				StepShip(&w.Ships[i], w.Planets, dt, cfg)
			}
		}(start, end)
	}
	wg.Wait()
	w.Tick++
}
