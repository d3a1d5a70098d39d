package service

import "sync"

// Loop is a serial Scheduler: a single goroutine drains scheduled
// functions in FIFO order, giving callbacks the single-threaded delivery
// context a UI event loop would provide.
type Loop struct {
	tasks chan func()
	quit  chan struct{}
	once  sync.Once
}

// NewLoop creates a Loop. Run must be called, usually on a dedicated
// goroutine owned by the caller.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 64),
		quit:  make(chan struct{}),
	}
}

// Run executes scheduled functions until Stop is called. It blocks, so
// the owner decides which goroutine is the delivery context.
func (l *Loop) Run() {
	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-l.quit:
			return
		}
	}
}

// Schedule enqueues a function for execution on the loop goroutine.
// Functions scheduled after Stop are dropped.
func (l *Loop) Schedule(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.quit:
	}
}

// Stop terminates the loop. Safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.quit)
	})
}
