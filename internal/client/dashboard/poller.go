package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the poll period of the dashboard view.
const DefaultInterval = 10 * time.Second

// UpdateFunc receives the outcome of each completed batch: a fresh
// snapshot, or the error of a failed cycle (in which case the previous
// snapshot is still the one to show).
type UpdateFunc func(snap *Snapshot, err error)

// Poller re-runs the four-way batch on a fixed interval for as long as
// the view is up. A tick that fires while a batch is still in flight is
// skipped, so slow networks never pile up concurrent batches. Stop may
// be called at any time, from any goroutine, exactly once or more; the
// underlying teardown happens once and results completing after Stop
// are dropped.
type Poller struct {
	view     *View
	onUpdate UpdateFunc
	interval time.Duration
	inFlight atomic.Bool
	refresh  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// NewPoller creates a poller over the view. interval <= 0 falls back to
// DefaultInterval.
func NewPoller(view *View, interval time.Duration, onUpdate UpdateFunc) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		view:     view,
		onUpdate: onUpdate,
		interval: interval,
		refresh:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

// Refresh requests an immediate out-of-band batch, bypassing the timer.
// It is for callers that embed the poller and issue mutating actions
// while the loop runs; the one-shot commands refetch through the view
// directly instead. Multiple pending requests coalesce into one.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Stop tears the poller down. Safe to call multiple times and
// concurrently with a pending tick.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

type batchResult struct {
	snap *Snapshot
	err  error
}

// Run executes the polling loop: one immediate batch, then one per tick
// until the context is cancelled or Stop is called. Batch completions
// are delivered back into this loop, so onUpdate always runs serially.
func (p *Poller) Run(ctx context.Context) {
	results := make(chan batchResult, 1)

	p.startBatch(ctx, results)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-ticker.C:
			p.startBatch(ctx, results)
		case <-p.refresh:
			p.startBatch(ctx, results)
		case res := <-results:
			if p.onUpdate != nil {
				p.onUpdate(res.snap, res.err)
			}
		}
	}
}

// startBatch launches one batch unless a previous one has not resolved
// yet, in which case the request is dropped.
func (p *Poller) startBatch(ctx context.Context, results chan<- batchResult) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return
	}

	go func() {
		snap, err := p.view.FetchBatch(ctx)
		p.inFlight.Store(false)

		// A result arriving after teardown must not update anything.
		select {
		case results <- batchResult{snap: snap, err: err}:
		case <-p.stop:
		case <-ctx.Done():
		}
	}()
}
