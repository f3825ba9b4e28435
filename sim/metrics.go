// Tracks station-wide running statistics such as:
//   - arrivals, sales and balking customers
//   - litres sold and litres missed
//   - cumulative waiting and service time
// and projects them into point-in-time Snapshots.

package sim

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// usageEpsilon keeps pump usage finite at simulation time zero.
const usageEpsilon = 1e-9

// Statistics aggregates counters over a run. Counters only grow; nothing is reset
// between snapshots.
type Statistics struct {
	Arrivals int // Number of cars that arrived
	Served   int // Number of cars whose service completed
	Balked   int // Number of cars that left without buying

	LitresSold   float64 // Litres pumped into served cars
	LitresMissed float64 // Litres wanted by balking cars

	TotalWaitingTime float64 // Sum of (service start - arrival) over cars that started service
	TotalServiceTime float64 // Sum of service durations over cars that started service
}

// NewStatistics creates a zeroed collector.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// CountArrival records an arrival.
func (s *Statistics) CountArrival() {
	s.Arrivals++
}

// RecordBalk records and counts a lost sale.
func (s *Statistics) RecordBalk(litres float64) {
	s.Balked++
	s.LitresMissed += litres
}

// RecordSale records and counts a completed sale.
func (s *Statistics) RecordSale(litres float64) {
	s.Served++
	s.LitresSold += litres
}

// AddWaitingTime records a customer's waiting time.
func (s *Statistics) AddWaitingTime(interval float64) {
	s.TotalWaitingTime += interval
}

// AddServiceTime records a customer's service time.
func (s *Statistics) AddServiceTime(interval float64) {
	s.TotalServiceTime += interval
}

// Measure is a ratio that may be undefined (zero denominator).
// An undefined Measure renders as "Unknown" in text and null in JSON.
type Measure struct {
	Value float64
	Known bool
}

// Known wraps a defined value.
func Known(v float64) Measure {
	return Measure{Value: v, Known: true}
}

// Unknown is the undefined Measure.
var Unknown = Measure{}

// ratio returns num/den, or Unknown when den is zero.
func ratio(num float64, den int) Measure {
	if den == 0 {
		return Unknown
	}
	return Known(num / float64(den))
}

func (m Measure) String() string {
	if !m.Known {
		return "Unknown"
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// MarshalJSON encodes an unknown Measure as null.
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Known {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON decodes null as Unknown.
func (m *Measure) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Unknown
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Known(v)
	return nil
}

// Snapshot is a read-only summary of the statistics at one simulation time.
// Field order matches the station report columns.
type Snapshot struct {
	Time            float64 `json:"time"`              // Current simulation time
	TotalArrivals   int     `json:"total_arrivals"`    // Cars arrived so far
	NoQueueFraction float64 `json:"no_queue_fraction"` // Fraction of elapsed time the queue was empty
	CarToCarTime    Measure `json:"car_to_car_time"`   // Mean inter-arrival time
	AverageLitres   Measure `json:"average_litres"`    // Mean litres requested per arrival
	Balked          int     `json:"balked"`            // Balking customers so far
	AverageWait     Measure `json:"average_wait"`      // Mean wait per served customer
	PumpUsage       float64 `json:"pump_usage"`        // Fraction of pump capacity spent serving
	TotalProfit     float64 `json:"total_profit"`      // Profit on litres sold minus pump operating cost
	LostProfit      float64 `json:"lost_profit"`       // Profit forgone on litres missed
}

// Snapshot projects the counters at simulation time now. It does not modify s.
func (s *Statistics) Snapshot(now, queueEmptyTime float64, numPumps int, params ModelParams) Snapshot {
	noQueue := 0.0
	if now > 0 {
		noQueue = queueEmptyTime / now
	}
	return Snapshot{
		Time:            now,
		TotalArrivals:   s.Arrivals,
		NoQueueFraction: noQueue,
		CarToCarTime:    ratio(now, s.Arrivals),
		AverageLitres:   ratio(s.LitresSold+s.LitresMissed, s.Arrivals),
		Balked:          s.Balked,
		AverageWait:     ratio(s.TotalWaitingTime, s.Served),
		PumpUsage:       s.TotalServiceTime / (float64(numPumps) * max(usageEpsilon, now)),
		TotalProfit:     s.LitresSold*params.ProfitPerLitre - params.PumpCost*float64(numPumps),
		LostProfit:      s.LitresMissed * params.ProfitPerLitre,
	}
}
