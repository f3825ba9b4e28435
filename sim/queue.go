// Implements the CarQueue, which holds cars waiting for a free pump.
// Cars are enqueued on arrival when every pump is busy and dequeued on departure.

package sim

import (
	"fmt"
	"strings"
)

// CarQueue represents the single FIFO lineup of cars at the station.
// It also accounts for the time it has spent empty:
//
//	EmptyTime(now) = closedEmpty                      if Len() > 0
//	EmptyTime(now) = closedEmpty + (now - emptySince) if Len() == 0
//
// where closedEmpty sums every finished empty interval and emptySince is the
// time the queue last became empty.
type CarQueue struct {
	queue       []*Car // FIFO queue of cars
	closedEmpty float64
	emptySince  float64
}

// NewCarQueue creates an empty queue whose first empty interval opens at start.
func NewCarQueue(start float64) *CarQueue {
	return &CarQueue{emptySince: start}
}

// Enqueue adds a car to the back of the queue at simulation time now.
func (q *CarQueue) Enqueue(car *Car, now float64) {
	if car == nil {
		panic("Enqueue: car must not be nil")
	}
	if len(q.queue) == 0 {
		q.closedEmpty += now - q.emptySince
	}
	q.queue = append(q.queue, car)
}

// Dequeue removes the car at the front of the queue at simulation time now.
func (q *CarQueue) Dequeue(now float64) (*Car, error) {
	if len(q.queue) == 0 {
		return nil, ErrQueueEmpty
	}
	car := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	if len(q.queue) == 0 {
		q.emptySince = now
	}
	return car, nil
}

// Peek returns the car at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *CarQueue) Peek() *Car {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of cars in the queue.
func (q *CarQueue) Len() int {
	return len(q.queue)
}

// EmptyTime returns the cumulative time the queue has held no cars up to now,
// including the open interval if it is empty right now.
func (q *CarQueue) EmptyTime(now float64) float64 {
	if len(q.queue) > 0 {
		return q.closedEmpty
	}
	return q.closedEmpty + (now - q.emptySince)
}

func (q *CarQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, car := range q.queue {
		sb.WriteString(fmt.Sprint(car))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
