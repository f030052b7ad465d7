package event

import (
	"sync"

	"termfolio/internal/errors"
)

// queue is an unbounded single-producer/single-consumer FIFO with blocking
// pop. Either side can end it: the consumer with close, the producer with
// finish.
type queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	items    []Event
	closed   bool
	finished bool
	err      error
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends ev. It reports false once the consumer has closed the queue.
func (q *queue) push(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, ev)
	q.cond.Signal()
	return true
}

// finish marks the producer as gone. Queued events stay poppable; after
// them pop returns err.
func (q *queue) finish(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.finished {
		return
	}
	if err == nil {
		err = errors.ErrSourceClosed
	}
	q.finished = true
	q.err = err
	q.cond.Broadcast()
}

// close marks the consumer as gone and drops anything still queued.
func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.items = nil
	q.cond.Broadcast()
}

func (q *queue) isClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func (q *queue) pop() (Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.finished && !q.closed {
		q.cond.Wait()
	}
	if q.closed {
		return nil, errors.ErrSourceClosed
	}
	if len(q.items) == 0 {
		return nil, q.err
	}
	ev := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return ev, nil
}

func (q *queue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
