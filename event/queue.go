package event

import "fmt"

// ReaderID is a handle to a per-consumer read cursor
type ReaderID int

// Queue is an append-only per-step event buffer with one monotonically
// advancing cursor per registered reader. N independent systems each observe
// every event exactly once without consuming each other's view.
//
// Visibility: an event pushed during step N survives the Maintain call at
// the start of step N+1 and is dropped by the Maintain call at the start of
// step N+2. This gives every reader one full step to observe the event
// regardless of where it runs in the system order, so an early-priority
// consumer (time keeper) still sees events produced by a late-priority
// producer (player) in the preceding step.
//
// All cursors must be registered during initialization, before the first
// step runs; reading with an unknown cursor is a setup error and panics
type Queue struct {
	events  []GameEvent
	base    uint64 // absolute index of events[0]
	mark    uint64 // absolute end index captured by the previous Maintain
	cursors []uint64
	names   []string
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{}
}

// RegisterReader allocates a read cursor for the named consumer.
// The name only serves diagnostics
func (q *Queue) RegisterReader(name string) ReaderID {
	q.cursors = append(q.cursors, q.base)
	q.names = append(q.names, name)
	return ReaderID(len(q.cursors) - 1)
}

// Push appends an event to the current step's buffer
func (q *Queue) Push(t EventType, payload any) {
	q.events = append(q.events, GameEvent{Type: t, Payload: payload})
}

// Read returns every event the reader has not yet observed and advances its
// cursor. A reader that fell behind the retention window silently skips the
// dropped events
func (q *Queue) Read(id ReaderID) []GameEvent {
	if int(id) < 0 || int(id) >= len(q.cursors) {
		panic(fmt.Sprintf("event: read with unregistered cursor %d", id))
	}

	end := q.base + uint64(len(q.events))
	start := q.cursors[id]
	if start < q.base {
		start = q.base
	}
	q.cursors[id] = end

	if start == end {
		return nil
	}
	return q.events[start-q.base : end-q.base]
}

// Maintain ages out events from two steps ago. Called once at the start of
// every simulation step, before any system runs
func (q *Queue) Maintain() {
	end := q.base + uint64(len(q.events))

	drop := q.mark - q.base
	if drop > 0 {
		kept := make([]GameEvent, len(q.events)-int(drop))
		copy(kept, q.events[drop:])
		q.events = kept
		q.base = q.mark
	}
	q.mark = end
}

// Len returns the number of retained events
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear drops all retained events and fast-forwards every cursor
func (q *Queue) Clear() {
	end := q.base + uint64(len(q.events))
	q.events = nil
	q.base = end
	q.mark = end
	for i := range q.cursors {
		q.cursors[i] = end
	}
}
