package sim

import "container/heap"

// scheduledEvent pairs an event with the order in which it was scheduled.
type scheduledEvent struct {
	ev  Event
	seq uint64
}

// EventQueue implements a priority queue with deterministic ordering.
// Ordering: timestamp → insertion sequence. An event scheduled for the same time as
// pending events is dispatched after all of them.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue struct {
	events  []scheduledEvent
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make([]scheduledEvent, 0)}
	heap.Init(q)
	return q
}

// Len implements heap.Interface
func (q *EventQueue) Len() int { return len(q.events) }

// Less implements heap.Interface
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]
	if ei.ev.Timestamp() != ej.ev.Timestamp() {
		return ei.ev.Timestamp() < ej.ev.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (q *EventQueue) Swap(i, j int) { q.events[i], q.events[j] = q.events[j], q.events[i] }

// Push implements heap.Interface. Use Schedule instead.
func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(scheduledEvent))
}

// Pop implements heap.Interface. Use Next instead.
func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduledEvent{}
	q.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue.
func (q *EventQueue) Schedule(ev Event) {
	if ev == nil {
		panic("Schedule: ev must not be nil")
	}
	q.nextSeq++
	heap.Push(q, scheduledEvent{ev: ev, seq: q.nextSeq})
}

// Next removes and returns the earliest-due event. ok is false when the queue is empty.
func (q *EventQueue) Next() (ev Event, ok bool) {
	if q.Len() == 0 {
		return nil, false
	}
	return heap.Pop(q).(scheduledEvent).ev, true
}

// Peek returns the earliest-due event without removing it, or nil when empty.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0].ev
}
