package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpStand_New_AllAvailable(t *testing.T) {
	ps := NewPumpStand(3)
	assert.Equal(t, 3, ps.Total())
	assert.Equal(t, 3, ps.Available())
	assert.Equal(t, 0, ps.InService())
	assert.Equal(t, 2, ps.Pump(2).ID)
	assert.Nil(t, ps.Pump(3))
	assert.Nil(t, ps.Pump(-1))
}

func TestPumpStand_New_ClampsToOnePump(t *testing.T) {
	for _, n := range []int{0, -4} {
		assert.Equal(t, 1, NewPumpStand(n).Total(), "numPumps=%d", n)
	}
}

func TestPumpStand_LIFO(t *testing.T) {
	// GIVEN a stand of three pumps
	ps := NewPumpStand(3)

	// WHEN two pumps are taken
	first, err := ps.TakeAvailable()
	require.NoError(t, err)
	second, err := ps.TakeAvailable()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 1, ps.Available())

	// AND the first is released again
	require.NoError(t, ps.Release(first))

	// THEN the most recently released pump is taken next
	next, err := ps.TakeAvailable()
	require.NoError(t, err)
	assert.Same(t, first, next)
	assert.Equal(t, 3, ps.Taken())
	assert.Equal(t, 1, ps.Released())
}

func TestPumpStand_TakeFromEmpty_ReturnsErr(t *testing.T) {
	ps := NewPumpStand(1)
	_, err := ps.TakeAvailable()
	require.NoError(t, err)

	p, err := ps.TakeAvailable()
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrNoPumpAvailable))
}

func TestPumpStand_Release_Misuse(t *testing.T) {
	t.Run("full stand", func(t *testing.T) {
		ps := NewPumpStand(2)
		err := ps.Release(ps.Pump(0))
		assert.True(t, errors.Is(err, ErrPumpStandFull))
	})
	t.Run("busy pump", func(t *testing.T) {
		ps := NewPumpStand(2)
		p, err := ps.TakeAvailable()
		require.NoError(t, err)
		require.NoError(t, p.Attach(NewCar(1, 30)))
		assert.True(t, errors.Is(ps.Release(p), ErrPumpBusy))
	})
	t.Run("already available", func(t *testing.T) {
		ps := NewPumpStand(2)
		taken, err := ps.TakeAvailable()
		require.NoError(t, err)
		other := ps.Pump(1 - taken.ID)
		assert.True(t, errors.Is(ps.Release(other), ErrPumpStandFull))
	})
}

func TestPump_AttachDetach(t *testing.T) {
	p := &Pump{ID: 4}
	assert.False(t, p.Busy())
	assert.Nil(t, p.Detach())

	car := NewCar(9, 42)
	require.NoError(t, p.Attach(car))
	assert.True(t, p.Busy())
	assert.Same(t, car, p.Car())
	assert.True(t, errors.Is(p.Attach(NewCar(10, 10)), ErrPumpBusy))

	assert.Same(t, car, p.Detach())
	assert.False(t, p.Busy())
}
