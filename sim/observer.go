package sim

import "github.com/pumpsim/pumpsim/sim/trace"

// TraceObserver returns an Observer that records every executed event into st.
func TraceObserver(st *trace.SimulationTrace) Observer {
	return func(sim *Simulator, ev Event) {
		pumpID := -1
		if dep, ok := ev.(*DepartureEvent); ok && dep.Pump != nil {
			pumpID = dep.Pump.ID
		}
		st.RecordEvent(trace.EventRecord{
			Time:           ev.Timestamp(),
			Kind:           ev.Kind().String(),
			PumpID:         pumpID,
			QueueLength:    sim.Queue.Len(),
			PumpsAvailable: sim.Pumps.Available(),
			Arrivals:       sim.Stats.Arrivals,
			Served:         sim.Stats.Served,
			Balked:         sim.Stats.Balked,
		})
	}
}
