package schedulers

import (
	"context"
	"sync"
	"time"

	"github.com/reusee/tainote/syncs"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateRunning
)

// Debounce coalesces change events into at most one callback run per
// quiet interval. An event during a pending interval re-arms the
// timer. An event during a run arms a timer in parallel; if that timer
// fires while the run is still going, exactly one follow-up run is
// queued instead of starting a second one.
type Debounce struct {
	delay time.Duration
	run   func(ctx context.Context)

	ctx    context.Context
	cancel context.CancelFunc
	sem    syncs.Semaphore

	mu     sync.Mutex
	state  State
	queued bool
	timer  *time.Timer
}

func NewDebounce(delay time.Duration, run func(ctx context.Context)) *Debounce {
	ctx, cancel := context.WithCancel(context.Background())
	return &Debounce{
		delay:  delay,
		run:    run,
		ctx:    ctx,
		cancel: cancel,
		sem:    syncs.NewSemaphore(1),
	}
}

func (d *Debounce) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Event reports one buffer change.
func (d *Debounce) Event() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ctx.Err() != nil {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.state == StateIdle {
		d.state = StatePending
	}
	d.timer = time.AfterFunc(d.delay, d.onTimeout)
}

func (d *Debounce) onTimeout() {
	d.mu.Lock()
	d.timer = nil
	if d.ctx.Err() != nil {
		d.mu.Unlock()
		return
	}
	if d.state == StateRunning {
		d.queued = true
		d.mu.Unlock()
		return
	}
	d.state = StateRunning
	d.mu.Unlock()

	go d.execute()
}

func (d *Debounce) execute() {
	d.sem.Acquire()
	defer d.sem.Release()

	for {
		d.run(d.ctx)

		d.mu.Lock()
		if d.queued && d.ctx.Err() == nil {
			d.queued = false
			d.mu.Unlock()
			continue
		}
		if d.state == StateRunning {
			if d.timer != nil {
				// an event re-armed the timer while running
				d.state = StatePending
			} else {
				d.state = StateIdle
			}
		}
		d.mu.Unlock()
		return
	}
}

// Close cancels any pending timer and the context of an in-flight run.
// A closed Debounce ignores further events.
func (d *Debounce) Close() {
	d.cancel()
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.state = StateIdle
	d.queued = false
	d.mu.Unlock()
}
