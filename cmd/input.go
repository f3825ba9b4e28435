package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	sim "github.com/pumpsim/pumpsim/sim"
)

// StationInput is the seven-line station input format:
//
//	report interval
//	ending time
//	number of pumps
//	seed for the arrival stream
//	seed for the litres stream
//	seed for the balking stream
//	seed for the service stream
type StationInput struct {
	ReportInterval float64
	EndingTime     float64
	NumPumps       int
	Seeds          sim.Seeds
}

// ReadStationInput parses the seven lines from r. Surrounding whitespace is ignored;
// anything after the seventh line is not read.
func ReadStationInput(r io.Reader) (StationInput, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, 7)
	for len(lines) < 7 && scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return StationInput{}, fmt.Errorf("reading station input: %w", err)
	}
	if len(lines) < 7 {
		return StationInput{}, fmt.Errorf("station input needs 7 lines, got %d", len(lines))
	}

	var in StationInput
	var err error
	if in.ReportInterval, err = strconv.ParseFloat(lines[0], 64); err != nil {
		return StationInput{}, fmt.Errorf("line 1 (report interval): %w", err)
	}
	if in.EndingTime, err = strconv.ParseFloat(lines[1], 64); err != nil {
		return StationInput{}, fmt.Errorf("line 2 (ending time): %w", err)
	}
	if in.NumPumps, err = strconv.Atoi(lines[2]); err != nil {
		return StationInput{}, fmt.Errorf("line 3 (number of pumps): %w", err)
	}
	seeds := make([]int64, len(sim.StreamNames))
	for i, name := range sim.StreamNames {
		if seeds[i], err = strconv.ParseInt(lines[3+i], 10, 64); err != nil {
			return StationInput{}, fmt.Errorf("line %d (%s seed): %w", 4+i, name, err)
		}
	}
	in.Seeds = sim.Seeds{Arrival: seeds[0], Litres: seeds[1], Balking: seeds[2], Service: seeds[3]}
	return in, nil
}

// ApplyTo overwrites the run parameters in cfg. Model constants are left untouched.
func (in StationInput) ApplyTo(cfg *sim.Config) {
	cfg.ReportInterval = in.ReportInterval
	cfg.EndingTime = in.EndingTime
	cfg.NumPumps = in.NumPumps
	cfg.Seeds = in.Seeds
}
