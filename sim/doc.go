// Package sim provides the discrete-event simulation engine for a single gas station.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: Event types that drive the simulation (Arrival, Departure, Report, EndOfSimulation)
//   - event_queue.go: the time-ordered pending event heap and its tie-break rule
//   - simulator.go: the clock loop and the service helpers shared by the handlers
//
// # Station Model
//
// Cars arrive with an exponential inter-arrival time and a uniform fuel demand. An arriving car
// may balk (leave without buying) when the shared queue is non-empty. Otherwise it is served by
// a free pump or joins the FIFO queue (queue.go). Pumps are drawn from and returned to a LIFO
// pool (pump.go). Every Report and the final EndOfSimulation event emits a Snapshot (metrics.go).
//
// # Determinism
//
// Four random streams (rng.go) are seeded independently so that changing one input distribution
// never perturbs another. Two runs with identical Config produce identical snapshot sequences.
//
// Sub-packages:
//   - sim/report/: text, JSON lines and XLSX snapshot reporters
//   - sim/trace/: per-event trace recording and summaries
package sim
