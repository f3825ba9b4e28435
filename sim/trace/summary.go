package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents      int
	KindDistribution map[string]int // event kind → count of dispatches
	MaxQueueLength   int
	MinPumpsFree     int
	FirstTime        float64
	LastTime         float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindDistribution: make(map[string]int),
	}
	if st == nil || len(st.Events) == 0 {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	summary.FirstTime = st.Events[0].Time
	summary.MinPumpsFree = st.Events[0].PumpsAvailable
	for _, r := range st.Events {
		summary.KindDistribution[r.Kind]++
		if r.QueueLength > summary.MaxQueueLength {
			summary.MaxQueueLength = r.QueueLength
		}
		if r.PumpsAvailable < summary.MinPumpsFree {
			summary.MinPumpsFree = r.PumpsAvailable
		}
		summary.LastTime = r.Time
	}

	return summary
}
