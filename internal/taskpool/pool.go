// Package taskpool runs deferred work cooperatively on the caller's goroutine.
package taskpool

import (
	"fmt"
	"sync"

	"github.com/gogpu/ggsoft"
)

// Poll is the result of running a task once.
type Poll uint8

const (
	// Ready means the task finished and is dropped from the pool.
	Ready Poll = iota

	// Pending means the task is waiting. It is parked until its Waker is
	// woken, then polled again.
	Pending
)

// Task is a unit of deferred work. It is polled on the goroutine that calls
// RunUntilStalled and must not block.
type Task func(w *Waker) Poll

// ID identifies a spawned task.
type ID uint64

type taskState uint8

const (
	stateQueued taskState = iota
	stateRunning
	stateParked
	stateDone
)

type entry struct {
	id    ID
	task  Task
	state taskState
	woken bool
}

// Waker reschedules a parked task. It is safe to call from any goroutine.
type Waker struct {
	pool *Pool
	e    *entry
}

// ID returns the task the waker belongs to.
func (w *Waker) ID() ID { return w.e.id }

// Wake marks the task ready. Waking a task that is being polled makes it
// run again if the poll returns Pending. Waking a finished task is a no-op.
func (w *Waker) Wake() {
	p := w.pool
	p.mu.Lock()
	defer p.mu.Unlock()

	switch w.e.state {
	case stateParked:
		delete(p.parked, w.e.id)
		w.e.state = stateQueued
		p.queue = append(p.queue, w.e)
	case stateRunning:
		w.e.woken = true
	}
}

// Pool is a single-threaded cooperative executor.
//
// Tasks are spawned from anywhere and run only inside RunUntilStalled, in
// spawn order. A task that returns Pending waits for its Waker.
//
// Thread safety: Spawn and Waker.Wake are safe for concurrent use; tasks
// themselves always run on the goroutine draining the pool.
type Pool struct {
	mu     sync.Mutex
	queue  []*entry
	parked map[ID]*entry
	nextID ID
	polls  uint64
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{parked: make(map[ID]*entry)}
}

// Spawn queues t and returns its ID. A nil task is ignored and returns 0.
func (p *Pool) Spawn(t Task) ID {
	if t == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	p.queue = append(p.queue, &entry{id: p.nextID, task: t})
	return p.nextID
}

// RunUntilStalled polls queued tasks until none is ready and returns the
// number of polls performed. Tasks spawned or woken during the drain run in
// the same drain. It never waits for parked tasks.
//
// A task that panics is dropped and the panic is logged.
func (p *Pool) RunUntilStalled() int {
	n := 0
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return n
		}
		e := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		e.state = stateRunning
		e.woken = false
		p.mu.Unlock()

		result, err := p.poll(e)
		n++

		p.mu.Lock()
		p.polls++
		switch {
		case err != nil:
			e.state = stateDone
			ggsoft.Logger().Warn("taskpool: task panicked", "task", e.id, "err", err)
		case result == Ready:
			e.state = stateDone
		case e.woken:
			e.state = stateQueued
			p.queue = append(p.queue, e)
		default:
			e.state = stateParked
			p.parked[e.id] = e
		}
		p.mu.Unlock()
	}
}

func (p *Pool) poll(e *entry) (result Poll, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return e.task(&Waker{pool: p, e: e}), nil
}

// Len returns the number of tasks that have not finished.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) + len(p.parked)
}

// Pending returns the number of parked tasks waiting to be woken.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.parked)
}

// Polls returns the total number of polls performed by the pool.
func (p *Pool) Polls() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.polls
}
