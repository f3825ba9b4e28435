// sim/simulator.go
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Reporter receives every snapshot the run emits, in order.
type Reporter interface {
	Report(Snapshot) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Snapshot) error

// Report calls f(s).
func (f ReporterFunc) Report(s Snapshot) error { return f(s) }

// Observer is called after each event has executed.
type Observer func(sim *Simulator, ev Event)

// ChainObservers returns an Observer that calls each non-nil observer in order.
func ChainObservers(observers ...Observer) Observer {
	return func(sim *Simulator, ev Event) {
		for _, o := range observers {
			if o != nil {
				o(sim, ev)
			}
		}
	}
}

// Simulator is the simulation context: it owns the clock, the pending events, the
// station state, the statistics and the random streams of one run.
//
// Thread-safety: NOT thread-safe. Events execute one at a time on the caller's goroutine.
type Simulator struct {
	RunID  string
	Config Config
	Clock  float64
	// EventQueue has all pending events: arrivals, departures, reports and the end of the run
	EventQueue *EventQueue
	// Queue aka the lineup of cars waiting for a pump
	Queue   *CarQueue
	Pumps   *PumpStand
	Stats   *Statistics
	Streams *StreamSet

	// Reporter, if set, receives each snapshot as it is emitted
	Reporter Reporter
	// Observer, if set, is called after every executed event
	Observer Observer

	EventsProcessed int

	snapshots []Snapshot
	nextCarID int
	done      bool
	log       *logrus.Entry
}

// NewSimulator validates cfg, builds the station and schedules the initial events:
// the first Arrival at time 0, EndOfSimulation at cfg.EndingTime, and the first Report
// at cfg.ReportInterval when 0 < ReportInterval <= EndingTime.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	streams, err := NewStreamSet(cfg.Seeds, cfg.Generator)
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	s := &Simulator{
		RunID:      runID,
		Config:     cfg,
		Clock:      0,
		EventQueue: NewEventQueue(),
		Queue:      NewCarQueue(0),
		Pumps:      NewPumpStand(cfg.NumPumps),
		Stats:      NewStatistics(),
		Streams:    streams,
		log:        logrus.WithField("run", runID),
	}

	s.Schedule(NewArrivalEvent(0))
	s.Schedule(NewEndOfSimulationEvent(cfg.EndingTime))
	if cfg.ReportInterval > 0 && cfg.ReportInterval <= cfg.EndingTime {
		s.Schedule(NewReportEvent(cfg.ReportInterval))
	}
	return s, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Run dispatches events in time order until EndOfSimulation has executed.
// It returns an error wrapping one of the package's sentinel errors when an
// invariant breaks, or ctx.Err() when ctx is cancelled between events.
// Calling Run after the run has ended is a no-op.
func (sim *Simulator) Run(ctx context.Context) error {
	sim.log.Infof("Starting simulation with %d pumps, ending time %.3f, report interval %.3f, seeds %+v",
		sim.Pumps.Total(), sim.Config.EndingTime, sim.Config.ReportInterval, sim.Streams.Seeds())

	for !sim.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		// get the next event to be simulated
		ev, ok := sim.EventQueue.Next()
		if !ok {
			return fmt.Errorf("at t=%.3f: %w", sim.Clock, ErrEventQueueExhausted)
		}
		if ev.Timestamp() < sim.Clock {
			return fmt.Errorf("%s at t=%.3f with clock at %.3f: %w", ev.Kind(), ev.Timestamp(), sim.Clock, ErrClockRegression)
		}
		// advance the clock
		sim.Clock = ev.Timestamp()
		sim.log.Debugf("[t %012.3f] Executing %s", sim.Clock, ev.Kind())
		// process the event
		if err := ev.Execute(sim); err != nil {
			return fmt.Errorf("%s at t=%.3f: %w", ev.Kind(), sim.Clock, err)
		}
		sim.EventsProcessed++
		if sim.Observer != nil {
			sim.Observer(sim, ev)
		}
	}
	sim.log.Infof("[t %012.3f] Simulation ended after %d events", sim.Clock, sim.EventsProcessed)
	return nil
}

// Done reports whether EndOfSimulation has executed.
func (sim *Simulator) Done() bool {
	return sim.done
}

// Snapshot projects the statistics at the current clock.
func (sim *Simulator) Snapshot() Snapshot {
	return sim.Stats.Snapshot(sim.Clock, sim.Queue.EmptyTime(sim.Clock), sim.Pumps.Total(), sim.Config.Model)
}

// Snapshots returns every snapshot emitted so far, in emission order.
func (sim *Simulator) Snapshots() []Snapshot {
	return sim.snapshots
}

// InService returns the number of cars currently at a pump.
func (sim *Simulator) InService() int {
	return sim.Pumps.InService()
}

func (sim *Simulator) emitSnapshot() error {
	snap := sim.Snapshot()
	sim.snapshots = append(sim.snapshots, snap)
	if sim.Reporter == nil {
		return nil
	}
	if err := sim.Reporter.Report(snap); err != nil {
		return fmt.Errorf("reporting snapshot: %w", err)
	}
	return nil
}

// newCar draws the litres the next arriving car needs.
func (sim *Simulator) newCar() *Car {
	sim.nextCarID++
	m := sim.Config.Model
	litres := m.LitresNeededMin + sim.Streams.Litres().Float64()*m.LitresNeededRange
	return NewCar(sim.nextCarID, litres)
}

// balks decides whether a car needing litres leaves without buying. No draw is taken
// from the balking stream when the queue is empty.
func (sim *Simulator) balks(litres float64) bool {
	queueLength := sim.Queue.Len()
	if queueLength == 0 {
		return false
	}
	return sim.Streams.Balking().Float64() > NotBalkProbability(sim.Config.Model, litres, queueLength)
}

// interarrivalTime draws the exponential gap until the next arrival.
func (sim *Simulator) interarrivalTime() float64 {
	u := math.Max(interarrivalEpsilon, sim.Streams.Arrival().Float64())
	return -sim.Config.Model.MeanInterarrivalTime * math.Log(u)
}

// serviceTime draws how long a pump spends on car, never negative.
func (sim *Simulator) serviceTime(car *Car) float64 {
	m := sim.Config.Model
	t := m.ServiceTimeBase + m.ServiceTimePerLitre*car.LitresNeeded() + m.ServiceTimeSpread*sim.Streams.Service().NormFloat64()
	return math.Max(0, t)
}

// startService connects car to pump, collects its waiting and service times, and
// schedules its departure.
func (sim *Simulator) startService(car *Car, pump *Pump) error {
	if err := pump.Attach(car); err != nil {
		return err
	}
	duration := sim.serviceTime(car)
	sim.Stats.AddWaitingTime(sim.Clock - car.ArrivalTime)
	sim.Stats.AddServiceTime(duration)
	sim.Schedule(NewDepartureEvent(sim.Clock+duration, pump))
	sim.log.Debugf(">> %v starts at pump %d for %.3f", car, pump.ID, duration)
	return nil
}
