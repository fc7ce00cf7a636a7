package profiling

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTimer(t *testing.T) {
	Convey("A timer records exactly one sample when stopped", t, func() {
		collector, now, cleanup := newTestCollector(t, "timer")
		defer cleanup()

		*now = 10 * slotUs
		timer := StartTimer(collector)
		*now += 250
		timer.Stop()
		timer.Stop()

		*now = 11 * slotUs
		stats := collector.AccumulateStats(5000)
		So(stats.NumSamples, ShouldEqual, 1)
		So(stats.MinTime, ShouldEqual, 250)
		So(stats.MaxTime, ShouldEqual, 250)
	})

	Convey("A deferred stop fires on every exit path", t, func() {
		collector, now, cleanup := newTestCollector(t, "timer")
		defer cleanup()

		*now = 10 * slotUs
		measured := func(fail bool) error {
			defer StartTimer(collector).Stop()
			*now += 100
			if fail {
				return errors.New("measured block failed")
			}
			return nil
		}

		So(measured(true), ShouldNotBeNil)
		So(measured(false), ShouldBeNil)

		*now = 11 * slotUs
		So(collector.AccumulateStats(5000).NumSamples, ShouldEqual, 2)
	})

	Convey("The sample is attributed to the bucket the work began in", t, func() {
		collector, now, cleanup := newTestCollector(t, "timer")
		defer cleanup()

		// a slow operation spanning two bucket boundaries
		*now = 10 * slotUs
		timer := StartTimer(collector)
		*now = 12*slotUs + 500
		timer.Stop()

		*now = 13 * slotUs
		// begin bucket is 3 slots back by then, so a 2s window misses it
		So(collector.AccumulateStats(2000).NumSamples, ShouldEqual, 0)
		So(collector.AccumulateStats(3000).NumSamples, ShouldEqual, 1)
	})
}
