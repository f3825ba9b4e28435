package sim

import "errors"

// Invariant violations. Each of these aborts a run; none is expected under correct scheduling.
var (
	// ErrEventQueueExhausted means the queue emptied before EndOfSimulation was dispatched.
	ErrEventQueueExhausted = errors.New("event queue exhausted before end of simulation")
	// ErrClockRegression means an event was due before the current simulation time.
	ErrClockRegression = errors.New("event scheduled before current simulation time")
	// ErrDepartureWithoutCar means a departure referenced a pump with no car in service.
	ErrDepartureWithoutCar = errors.New("departure from a pump with no car in service")
	// ErrQueueEmpty means a car was requested from an empty car queue.
	ErrQueueEmpty = errors.New("car queue unexpectedly empty")
	// ErrNoPumpAvailable means a pump was requested while all pumps were in service.
	ErrNoPumpAvailable = errors.New("no pump available")
	// ErrPumpStandFull means a pump was released while every pump was already available.
	ErrPumpStandFull = errors.New("pump released to a full pump stand")
	// ErrPumpBusy means a car was attached to, or a pump released while, a car is in service.
	ErrPumpBusy = errors.New("pump already has a car in service")
)
