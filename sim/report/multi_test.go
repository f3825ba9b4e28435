package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pumpsim/pumpsim/sim"
)

func TestMulti_FansOutInOrder(t *testing.T) {
	var order []string
	record := func(name string) sim.Reporter {
		return sim.ReporterFunc(func(sim.Snapshot) error {
			order = append(order, name)
			return nil
		})
	}
	m := Multi{record("a"), record("b")}

	assert.NoError(t, m.Report(sampleSnapshot()))
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestMulti_StopsAtFirstError(t *testing.T) {
	errFail := errors.New("fail")
	called := false
	m := Multi{
		sim.ReporterFunc(func(sim.Snapshot) error { return errFail }),
		sim.ReporterFunc(func(sim.Snapshot) error { called = true; return nil }),
	}

	assert.ErrorIs(t, m.Report(sampleSnapshot()), errFail)
	assert.False(t, called)
}
