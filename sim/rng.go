package sim

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
)

// === Stream Names ===

const (
	// StreamArrival drives inter-arrival times.
	StreamArrival = "arrival"
	// StreamLitres drives the litres each car needs.
	StreamLitres = "litres"
	// StreamBalking drives the balking decision.
	StreamBalking = "balking"
	// StreamService drives the normal spread of service times.
	StreamService = "service"
)

// StreamNames lists the streams in the order their seeds are read from station input.
var StreamNames = []string{StreamArrival, StreamLitres, StreamBalking, StreamService}

// === Generators ===

const (
	// GeneratorGo uses math/rand's default source.
	GeneratorGo = "go"
	// GeneratorLCG48 uses the 48-bit linear congruential generator of the original
	// station program, so seeds reproduce its streams.
	GeneratorLCG48 = "lcg48"
)

// ValidGenerators is the set of recognized generator names. Empty means GeneratorGo.
var ValidGenerators = map[string]bool{"": true, GeneratorGo: true, GeneratorLCG48: true}

// Stream yields uniform deviates in [0,1) and standard-normal deviates.
// *rand.Rand satisfies Stream.
type Stream interface {
	Float64() float64
	NormFloat64() float64
}

// === Seeds ===

// Seeds holds one seed per random stream.
type Seeds struct {
	Arrival int64 `yaml:"arrival"`
	Litres  int64 `yaml:"litres"`
	Balking int64 `yaml:"balking"`
	Service int64 `yaml:"service"`
}

// DeriveSeeds expands a single master seed into four stream seeds.
//
// Derivation formula: streamSeed = masterSeed XOR fnv1a64(streamName).
// The derivation is order-independent, so adding a stream never shifts the others.
func DeriveSeeds(master int64) Seeds {
	return Seeds{
		Arrival: master ^ fnv1a64(StreamArrival),
		Litres:  master ^ fnv1a64(StreamLitres),
		Balking: master ^ fnv1a64(StreamBalking),
		Service: master ^ fnv1a64(StreamService),
	}
}

// ForStream returns the seed of the named stream.
func (s Seeds) ForStream(name string) (int64, bool) {
	switch name {
	case StreamArrival:
		return s.Arrival, true
	case StreamLitres:
		return s.Litres, true
	case StreamBalking:
		return s.Balking, true
	case StreamService:
		return s.Service, true
	}
	return 0, false
}

// === StreamSet ===

// StreamSet provides the four independently seeded streams of a run.
//
// Thread-safety: NOT thread-safe. Must be called from the simulation goroutine.
type StreamSet struct {
	seeds     Seeds
	generator string
	streams   map[string]Stream
}

// NewStreamSet creates a StreamSet for the given seeds and generator name.
func NewStreamSet(seeds Seeds, generator string) (*StreamSet, error) {
	if !ValidGenerators[generator] {
		return nil, fmt.Errorf("unknown generator %q", generator)
	}
	if generator == "" {
		generator = GeneratorGo
	}
	return &StreamSet{
		seeds:     seeds,
		generator: generator,
		streams:   make(map[string]Stream, len(StreamNames)),
	}, nil
}

// ForStream returns the stream with the given name. The same name always returns the
// same instance. Panics on an unknown name.
func (s *StreamSet) ForStream(name string) Stream {
	if st, ok := s.streams[name]; ok {
		return st
	}
	seed, ok := s.seeds.ForStream(name)
	if !ok {
		panic(fmt.Sprintf("ForStream: unknown stream %q", name))
	}

	var st Stream
	switch s.generator {
	case GeneratorLCG48:
		st = NewLCG48(seed)
	default:
		st = rand.New(rand.NewSource(seed))
	}
	s.streams[name] = st
	return st
}

// Arrival returns the inter-arrival stream.
func (s *StreamSet) Arrival() Stream { return s.ForStream(StreamArrival) }

// Litres returns the litres-needed stream.
func (s *StreamSet) Litres() Stream { return s.ForStream(StreamLitres) }

// Balking returns the balking stream.
func (s *StreamSet) Balking() Stream { return s.ForStream(StreamBalking) }

// Service returns the service-time stream.
func (s *StreamSet) Service() Stream { return s.ForStream(StreamService) }

// Seeds returns the seeds the set was built from.
func (s *StreamSet) Seeds() Seeds { return s.seeds }

// Generator returns the resolved generator name.
func (s *StreamSet) Generator() string { return s.generator }

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === LCG48 ===

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// LCG48 is a 48-bit linear congruential generator with the uniform (53-bit, two draws)
// and polar-method normal constructions of the original station program.
type LCG48 struct {
	state        uint64
	nextGaussian float64
	haveGaussian bool
}

// NewLCG48 seeds a generator. The seed is scrambled with the multiplier before use.
func NewLCG48(seed int64) *LCG48 {
	return &LCG48{state: (uint64(seed) ^ lcgMultiplier) & lcgMask}
}

func (g *LCG48) next(bits uint) int64 {
	g.state = (g.state*lcgMultiplier + lcgAddend) & lcgMask
	return int64(int32(g.state >> (48 - bits)))
}

// Float64 returns a uniform deviate in [0,1).
func (g *LCG48) Float64() float64 {
	return float64(g.next(26)<<27+g.next(27)) * (1.0 / (1 << 53))
}

// NormFloat64 returns a standard-normal deviate. Deviates are produced in pairs; the
// second of each pair is cached for the next call.
func (g *LCG48) NormFloat64() float64 {
	if g.haveGaussian {
		g.haveGaussian = false
		return g.nextGaussian
	}
	var v1, v2, s float64
	for {
		v1 = 2*g.Float64() - 1
		v2 = 2*g.Float64() - 1
		s = v1*v1 + v2*v2
		if s < 1 && s != 0 {
			break
		}
	}
	multiplier := math.Sqrt(-2 * math.Log(s) / s)
	g.nextGaussian = v2 * multiplier
	g.haveGaussian = true
	return v1 * multiplier
}
