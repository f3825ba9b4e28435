package report

import (
	"encoding/json"
	"io"

	"github.com/pumpsim/pumpsim/sim"
)

// jsonRecord is one JSON line: the snapshot fields plus the run they belong to.
type jsonRecord struct {
	RunID string `json:"run_id,omitempty"`
	sim.Snapshot
}

// JSONReporter writes one JSON object per snapshot, newline-delimited.
// Undefined ratios are encoded as null.
type JSONReporter struct {
	enc   *json.Encoder
	runID string
}

// NewJSONReporter creates a reporter writing to w. runID may be empty.
func NewJSONReporter(w io.Writer, runID string) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w), runID: runID}
}

// Report encodes the snapshot as one line.
func (r *JSONReporter) Report(s sim.Snapshot) error {
	return r.enc.Encode(jsonRecord{RunID: r.runID, Snapshot: s})
}
