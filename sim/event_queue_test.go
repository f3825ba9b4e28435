package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEventQueue_TimestampOrdering tests that events are dispatched in timestamp order
func TestEventQueue_TimestampOrdering(t *testing.T) {
	q := NewEventQueue()
	q.Schedule(NewArrivalEvent(100))
	q.Schedule(NewArrivalEvent(50))
	q.Schedule(NewArrivalEvent(150))

	var got []float64
	for {
		ev, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, ev.Timestamp())
	}
	assert.Equal(t, []float64{50, 100, 150}, got)
	assert.Equal(t, 0, q.Len())
}

// TestEventQueue_SameTimestamp_InsertionOrder tests that ties go to the earlier-scheduled event
func TestEventQueue_SameTimestamp_InsertionOrder(t *testing.T) {
	// GIVEN an EndOfSimulation and a Report at the same time, End scheduled first
	q := NewEventQueue()
	q.Schedule(NewEndOfSimulationEvent(3600))
	q.Schedule(NewReportEvent(3600))
	q.Schedule(NewArrivalEvent(3600))

	// WHEN dispatched
	// THEN they come out in insertion order regardless of kind
	want := []EventKind{KindEndOfSimulation, KindReport, KindArrival}
	for i, kind := range want {
		ev, ok := q.Next()
		require.True(t, ok)
		assert.Equal(t, kind, ev.Kind(), "event %d", i)
	}
}

func TestEventQueue_Peek_DoesNotRemove(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Peek())

	ev := NewReportEvent(10)
	q.Schedule(NewReportEvent(20))
	q.Schedule(ev)

	assert.Same(t, ev, q.Peek())
	assert.Equal(t, 2, q.Len())
}

func TestEventQueue_Empty_NextNotOK(t *testing.T) {
	q := NewEventQueue()
	ev, ok := q.Next()
	assert.False(t, ok)
	assert.Nil(t, ev)
}

func TestEventQueue_ScheduleNil_Panics(t *testing.T) {
	q := NewEventQueue()
	assert.Panics(t, func() { q.Schedule(nil) })
}
