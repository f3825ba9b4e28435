package report

import "github.com/pumpsim/pumpsim/sim"

// Multi fans each snapshot out to several reporters in order, stopping at the first error.
type Multi []sim.Reporter

// Report forwards s to every reporter.
func (m Multi) Report(s sim.Snapshot) error {
	for _, r := range m {
		if err := r.Report(s); err != nil {
			return err
		}
	}
	return nil
}
