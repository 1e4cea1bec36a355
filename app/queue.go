package app

import (
	"sync"

	mandel "github.com/marben/mandelzoom"
)

// Queue collects events from reader goroutines for a Session running on
// another goroutine.
type Queue struct {
	mu     sync.Mutex
	events []mandel.Event
	ready  chan struct{}
}

var _ Source = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends events and wakes the session.
func (q *Queue) Push(events ...mandel.Event) {
	if len(events) == 0 {
		return
	}
	q.mu.Lock()
	q.events = append(q.events, events...)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// PollEvents returns and clears everything pushed so far.
func (q *Queue) PollEvents() []mandel.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

// Ready fires at least once after each Push.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}
