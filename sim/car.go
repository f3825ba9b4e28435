package sim

import "fmt"

// Car is a customer flowing through the station.
type Car struct {
	ID          int     // Sequence number of the arrival that created the car
	ArrivalTime float64 // Simulation time the car joined the station (set when it does not balk)

	litresNeeded float64
}

// NewCar creates a car needing the given litres of fuel.
func NewCar(id int, litresNeeded float64) *Car {
	return &Car{ID: id, litresNeeded: litresNeeded}
}

// LitresNeeded returns the fuel the car needs. Fixed at construction.
func (c *Car) LitresNeeded() float64 {
	return c.litresNeeded
}

func (c *Car) String() string {
	return fmt.Sprintf("car#%d", c.ID)
}
