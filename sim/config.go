package sim

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelParams holds the constants that describe the modelled world.
type ModelParams struct {
	// economics: profit per litre of fuel, and cost to operate one pump for a run
	ProfitPerLitre float64 `yaml:"profit_per_litre"`
	PumpCost       float64 `yaml:"pump_cost"`

	// demand: litres needed are uniform in [LitresNeededMin, LitresNeededMin+LitresNeededRange)
	LitresNeededMin   float64 `yaml:"litres_needed_min"`
	LitresNeededRange float64 `yaml:"litres_needed_range"`

	// service time = base + perLitre*litres + spread*Z, clamped at zero
	ServiceTimeBase     float64 `yaml:"service_time_base"`
	ServiceTimePerLitre float64 `yaml:"service_time_per_litre"`
	ServiceTimeSpread   float64 `yaml:"service_time_spread"`

	// P(not balk) = (BalkA + litres) / (BalkB * (BalkC + queueLength))
	BalkA float64 `yaml:"balk_a"`
	BalkB float64 `yaml:"balk_b"`
	BalkC float64 `yaml:"balk_c"`

	MeanInterarrivalTime float64 `yaml:"mean_interarrival_time"`
}

// DefaultModelParams returns the station constants used when none are configured.
func DefaultModelParams() ModelParams {
	return ModelParams{
		ProfitPerLitre:       0.025,
		PumpCost:             20.0,
		LitresNeededMin:      10.0,
		LitresNeededRange:    50.0,
		ServiceTimeBase:      150.0,
		ServiceTimePerLitre:  0.5,
		ServiceTimeSpread:    30.0,
		BalkA:                40.0,
		BalkB:                25.0,
		BalkC:                3.0,
		MeanInterarrivalTime: 50.0,
	}
}

// Config describes one simulation run.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	ReportInterval float64     `yaml:"report_interval"` // Time between interim reports; 0 disables them
	EndingTime     float64     `yaml:"ending_time"`     // Simulation time of the final snapshot
	NumPumps       int         `yaml:"num_pumps"`       // Pumps in the stand; values below 1 become 1
	Seeds          Seeds       `yaml:"seeds"`
	Generator      string      `yaml:"generator"`
	Model          ModelParams `yaml:"model"`
}

// DefaultConfig returns a ten-hour run on one pump with hourly reports.
func DefaultConfig() Config {
	return Config{
		ReportInterval: 3600,
		EndingTime:     36000,
		NumPumps:       1,
		Seeds:          Seeds{Arrival: 1, Litres: 2, Balking: 3, Service: 4},
		Generator:      GeneratorGo,
		Model:          DefaultModelParams(),
	}
}

// LoadConfig reads a YAML run configuration. Keys absent from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading station config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig parses YAML over DefaultConfig with strict field checking (typos must cause errors).
func DecodeConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading station config: %w", err)
	}
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing station config: %w", err)
	}
	return cfg, nil
}

// Validate checks that times, the generator name and model constants are usable.
// A pump count below one is not an error; NewPumpStand clamps it.
func (c Config) Validate() error {
	if !isFinite(c.ReportInterval) || c.ReportInterval < 0 {
		return fmt.Errorf("report_interval must be a non-negative number, got %v", c.ReportInterval)
	}
	if !isFinite(c.EndingTime) || c.EndingTime < 0 {
		return fmt.Errorf("ending_time must be a non-negative number, got %v", c.EndingTime)
	}
	if !ValidGenerators[c.Generator] {
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	return c.Model.Validate()
}

// Validate checks the model constants.
func (m ModelParams) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"profit_per_litre", m.ProfitPerLitre},
		{"pump_cost", m.PumpCost},
		{"litres_needed_min", m.LitresNeededMin},
		{"litres_needed_range", m.LitresNeededRange},
		{"service_time_base", m.ServiceTimeBase},
		{"service_time_per_litre", m.ServiceTimePerLitre},
		{"service_time_spread", m.ServiceTimeSpread},
		{"balk_a", m.BalkA},
		{"balk_b", m.BalkB},
		{"balk_c", m.BalkC},
		{"mean_interarrival_time", m.MeanInterarrivalTime},
	}
	for _, f := range fields {
		if !isFinite(f.v) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.v)
		}
	}
	if m.LitresNeededRange < 0 {
		return fmt.Errorf("litres_needed_range must be non-negative, got %v", m.LitresNeededRange)
	}
	if m.ServiceTimeSpread < 0 {
		return fmt.Errorf("service_time_spread must be non-negative, got %v", m.ServiceTimeSpread)
	}
	if m.BalkB <= 0 {
		return fmt.Errorf("balk_b must be positive, got %v", m.BalkB)
	}
	if m.BalkC < 0 {
		return fmt.Errorf("balk_c must be non-negative, got %v", m.BalkC)
	}
	// a zero mean would schedule every arrival at the same instant forever
	if m.MeanInterarrivalTime <= 0 {
		return fmt.Errorf("mean_interarrival_time must be positive, got %v", m.MeanInterarrivalTime)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
