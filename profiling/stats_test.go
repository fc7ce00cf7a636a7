package profiling

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStatsRecording(t *testing.T) {
	Convey("Recording samples", t, func() {
		var stats Stats

		Convey("empty stats have zero average and count", func() {
			So(stats.AvgTime(), ShouldEqual, 0)
			So(stats.NumSamples, ShouldEqual, 0)
		})

		Convey("the first sample sets min, max and total", func() {
			stats.RecordTime(42)
			So(stats, ShouldResemble, Stats{MinTime: 42, MaxTime: 42, TotalTime: 42, NumSamples: 1})
		})

		Convey("subsequent samples keep the true min, max, total and count", func() {
			for _, duration := range []int64{10, 30, 20} {
				stats.RecordTime(duration)
			}
			So(stats.MinTime, ShouldEqual, 10)
			So(stats.MaxTime, ShouldEqual, 30)
			So(stats.TotalTime, ShouldEqual, 60)
			So(stats.NumSamples, ShouldEqual, 3)
			So(stats.AvgTime(), ShouldEqual, 20)
		})

		Convey("reset returns to the zero value", func() {
			stats.RecordTime(5)
			stats.Reset()
			So(stats, ShouldResemble, Stats{})
		})
	})
}

func TestStatsMerging(t *testing.T) {
	Convey("Merging stats", t, func() {
		filled := Stats{MinTime: 1, MaxTime: 9, TotalTime: 10, NumSamples: 2}

		Convey("two empties stay empty", func() {
			var acc Stats
			acc.Merge(Stats{})
			So(acc, ShouldResemble, Stats{})
		})

		Convey("merging empty into non-empty is a no-op", func() {
			acc := filled
			acc.Merge(Stats{})
			So(acc, ShouldResemble, filled)
		})

		Convey("merging non-empty into empty copies it", func() {
			var acc Stats
			acc.Merge(filled)
			So(acc, ShouldResemble, filled)
		})

		Convey("merge is commutative", func() {
			x := Stats{MinTime: 3, MaxTime: 7, TotalTime: 15, NumSamples: 3}
			y := Stats{MinTime: 1, MaxTime: 5, TotalTime: 6, NumSamples: 2}

			xy, yx := x, y
			xy.Merge(y)
			yx.Merge(x)
			So(xy, ShouldResemble, yx)
		})

		Convey("merge is associative", func() {
			x := Stats{MinTime: 3, MaxTime: 7, TotalTime: 15, NumSamples: 3}
			y := Stats{MinTime: 1, MaxTime: 5, TotalTime: 6, NumSamples: 2}
			z := Stats{MinTime: 4, MaxTime: 20, TotalTime: 24, NumSamples: 1}

			left := x
			left.Merge(y)
			left.Merge(z)

			yz := y
			yz.Merge(z)
			right := x
			right.Merge(yz)

			So(left, ShouldResemble, right)
		})
	})
}
