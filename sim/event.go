package sim

import (
	"fmt"
	"math"
)

// interarrivalEpsilon keeps a zero uniform draw from producing an infinite gap.
const interarrivalEpsilon = 1e-12

// EventKind identifies the handler an event dispatches to.
type EventKind int

const (
	KindArrival EventKind = iota
	KindDeparture
	KindReport
	KindEndOfSimulation
)

func (k EventKind) String() string {
	switch k {
	case KindArrival:
		return "Arrival"
	case KindDeparture:
		return "Departure"
	case KindReport:
		return "Report"
	case KindEndOfSimulation:
		return "EndOfSimulation"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event defines the interface for all simulation events.
// Each event has a Timestamp, a Kind, and an Execute method that advances
// simulation state when invoked. Events are immutable once created; a handler that
// needs to recur schedules a fresh event.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	Execute(*Simulator) error
}

// ArrivalEvent represents a car pulling into the station.
type ArrivalEvent struct {
	time float64 // Simulation time of arrival
}

// NewArrivalEvent creates an arrival at time t.
func NewArrivalEvent(t float64) *ArrivalEvent {
	return &ArrivalEvent{time: t}
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 { return e.time }

// Kind returns KindArrival.
func (e *ArrivalEvent) Kind() EventKind { return KindArrival }

// Execute creates the arriving car, lets it balk or join the station, and schedules
// the next arrival.
func (e *ArrivalEvent) Execute(sim *Simulator) error {
	car := sim.newCar()
	sim.Stats.CountArrival()
	litres := car.LitresNeeded()

	if sim.balks(litres) {
		sim.Stats.RecordBalk(litres)
		sim.log.Debugf("<< %v balks (%.2f litres, queue %d)", car, litres, sim.Queue.Len())
	} else {
		car.ArrivalTime = e.time
		if sim.Pumps.Available() > 0 {
			pump, err := sim.Pumps.TakeAvailable()
			if err != nil {
				return err
			}
			if err := sim.startService(car, pump); err != nil {
				return err
			}
		} else {
			sim.Queue.Enqueue(car, e.time)
		}
	}

	sim.Schedule(NewArrivalEvent(e.time + sim.interarrivalTime()))
	return nil
}

// DepartureEvent represents a car leaving the pump that served it.
type DepartureEvent struct {
	time float64
	Pump *Pump // The pump whose service completes
}

// NewDepartureEvent creates a departure from pump at time t.
func NewDepartureEvent(t float64, pump *Pump) *DepartureEvent {
	return &DepartureEvent{time: t, Pump: pump}
}

// Timestamp returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Timestamp() float64 { return e.time }

// Kind returns KindDeparture.
func (e *DepartureEvent) Kind() EventKind { return KindDeparture }

// Execute records the sale and hands the pump to the next waiting car, or back to the stand.
func (e *DepartureEvent) Execute(sim *Simulator) error {
	if e.Pump == nil {
		return ErrDepartureWithoutCar
	}
	car := e.Pump.Detach()
	if car == nil {
		return fmt.Errorf("pump %d: %w", e.Pump.ID, ErrDepartureWithoutCar)
	}
	sim.Stats.RecordSale(car.LitresNeeded())
	sim.log.Debugf("<< %v leaves pump %d with %.2f litres", car, e.Pump.ID, car.LitresNeeded())

	if sim.Queue.Len() > 0 {
		next, err := sim.Queue.Dequeue(e.time)
		if err != nil {
			return err
		}
		return sim.startService(next, e.Pump)
	}
	return sim.Pumps.Release(e.Pump)
}

// ReportEvent emits an interim snapshot and recurs every ReportInterval.
type ReportEvent struct {
	time float64
}

// NewReportEvent creates a report at time t.
func NewReportEvent(t float64) *ReportEvent {
	return &ReportEvent{time: t}
}

// Timestamp returns the scheduled time of the ReportEvent.
func (e *ReportEvent) Timestamp() float64 { return e.time }

// Kind returns KindReport.
func (e *ReportEvent) Kind() EventKind { return KindReport }

// Execute emits a snapshot and schedules the next report.
func (e *ReportEvent) Execute(sim *Simulator) error {
	if err := sim.emitSnapshot(); err != nil {
		return err
	}
	next := e.time + sim.Config.ReportInterval
	if next <= sim.Clock {
		sim.log.Warnf("report interval %v does not advance the clock; no further reports", sim.Config.ReportInterval)
		return nil
	}
	sim.Schedule(NewReportEvent(next))
	return nil
}

// EndOfSimulationEvent emits the final snapshot and stops the clock loop.
type EndOfSimulationEvent struct {
	time float64
}

// NewEndOfSimulationEvent creates the end of the run at time t.
func NewEndOfSimulationEvent(t float64) *EndOfSimulationEvent {
	return &EndOfSimulationEvent{time: t}
}

// Timestamp returns the scheduled time of the EndOfSimulationEvent.
func (e *EndOfSimulationEvent) Timestamp() float64 { return e.time }

// Kind returns KindEndOfSimulation.
func (e *EndOfSimulationEvent) Kind() EventKind { return KindEndOfSimulation }

// Execute emits the final snapshot. The loop terminates once it returns.
func (e *EndOfSimulationEvent) Execute(sim *Simulator) error {
	sim.done = true
	return sim.emitSnapshot()
}

// NotBalkProbability returns the probability that a car needing litres stays when
// queueLength cars are waiting, clamped to [0,1]. An empty queue never causes balking.
func NotBalkProbability(params ModelParams, litres float64, queueLength int) float64 {
	if queueLength == 0 {
		return 1
	}
	p := (params.BalkA + litres) / (params.BalkB * (params.BalkC + float64(queueLength)))
	return math.Min(1, math.Max(0, p))
}
