package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Pump serves at most one car at a time.
type Pump struct {
	ID int

	car *Car
}

// Car returns the car in service, or nil when the pump is idle.
func (p *Pump) Car() *Car {
	return p.car
}

// Busy reports whether a car is in service.
func (p *Pump) Busy() bool {
	return p.car != nil
}

// Attach connects a car to the pump.
func (p *Pump) Attach(car *Car) error {
	if car == nil {
		panic("Attach: car must not be nil")
	}
	if p.car != nil {
		return fmt.Errorf("pump %d serving %v: %w", p.ID, p.car, ErrPumpBusy)
	}
	p.car = car
	return nil
}

// Detach disconnects and returns the car in service, or nil when the pump is idle.
func (p *Pump) Detach() *Car {
	car := p.car
	p.car = nil
	return car
}

// PumpStand is the fixed pool of pumps. Available pumps form a LIFO stack:
// the most recently released pump is taken first.
type PumpStand struct {
	pumps     []*Pump // all pumps, indexed by ID
	available []*Pump // stack of free pumps, top at the end

	taken    int
	released int
}

// NewPumpStand builds a stand of numPumps pumps, all available. A count below one is
// clamped to one pump.
func NewPumpStand(numPumps int) *PumpStand {
	if numPumps < 1 {
		logrus.Warnf("pump stand needs at least 1 pump, got %d; using 1", numPumps)
		numPumps = 1
	}
	ps := &PumpStand{
		pumps:     make([]*Pump, numPumps),
		available: make([]*Pump, numPumps),
	}
	for i := range ps.pumps {
		ps.pumps[i] = &Pump{ID: i}
		ps.available[i] = ps.pumps[i]
	}
	return ps
}

// Total returns the number of pumps in the stand.
func (ps *PumpStand) Total() int {
	return len(ps.pumps)
}

// Available returns the number of free pumps.
func (ps *PumpStand) Available() int {
	return len(ps.available)
}

// InService returns the number of pumps serving a car.
func (ps *PumpStand) InService() int {
	return len(ps.pumps) - len(ps.available)
}

// Pump returns the pump with the given ID, or nil.
func (ps *PumpStand) Pump(id int) *Pump {
	if id < 0 || id >= len(ps.pumps) {
		return nil
	}
	return ps.pumps[id]
}

// TakeAvailable pops the most recently released free pump.
func (ps *PumpStand) TakeAvailable() (*Pump, error) {
	n := len(ps.available)
	if n == 0 {
		return nil, ErrNoPumpAvailable
	}
	p := ps.available[n-1]
	ps.available[n-1] = nil
	ps.available = ps.available[:n-1]
	ps.taken++
	return p, nil
}

// Release pushes a pump back onto the free stack. The pump must be idle.
func (ps *PumpStand) Release(p *Pump) error {
	if len(ps.available) >= len(ps.pumps) {
		return fmt.Errorf("releasing pump %d: %w", p.ID, ErrPumpStandFull)
	}
	if p.Busy() {
		return fmt.Errorf("releasing pump %d: %w", p.ID, ErrPumpBusy)
	}
	for _, free := range ps.available {
		if free == p {
			return fmt.Errorf("pump %d already available: %w", p.ID, ErrPumpStandFull)
		}
	}
	ps.available = append(ps.available, p)
	ps.released++
	return nil
}

// Taken returns how many times a pump has been taken from the stand.
func (ps *PumpStand) Taken() int { return ps.taken }

// Released returns how many times a pump has been released to the stand.
func (ps *PumpStand) Released() int { return ps.released }
