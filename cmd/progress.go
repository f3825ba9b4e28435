package cmd

import (
	"io"
	"math"
	"time"

	"github.com/schollz/progressbar/v3"

	sim "github.com/pumpsim/pumpsim/sim"
)

// newProgressBar creates a bar counting whole units of simulated time up to endingTime.
func newProgressBar(w io.Writer, endingTime float64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(max(1, int64(math.Ceil(endingTime))),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// progressObserver advances bar to the simulation clock after every event.
func progressObserver(bar *progressbar.ProgressBar) sim.Observer {
	return func(s *sim.Simulator, ev sim.Event) {
		if ev.Kind() == sim.KindEndOfSimulation {
			_ = bar.Finish()
			return
		}
		_ = bar.Set64(int64(s.Clock))
	}
}
