// Package trace provides per-event trace recording for station runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures the station state right after one event executed.
type EventRecord struct {
	Seq            int     // 1-based dispatch order
	Time           float64 // Simulation time of the event
	Kind           string  // Arrival, Departure, Report or EndOfSimulation
	PumpID         int     // Pump concerned by a Departure; -1 otherwise
	QueueLength    int     // Cars waiting after the event
	PumpsAvailable int     // Free pumps after the event
	Arrivals       int     // Cumulative arrivals
	Served         int     // Cumulative completed sales
	Balked         int     // Cumulative balking customers
}
