package profiling

import (
	"testing"

	mock_rehex "github.com/PyroSamurai/rehex/mock/rehex"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"
)

func TestRegistry(t *testing.T) {
	Convey("Registry lifecycle", t, func() {
		So(GetCollectors(), ShouldBeEmpty)

		Convey("collectors register on construction and deregister on close", func() {
			a := NewCollector("a")
			b := NewCollector("b")
			So(GetCollectors(), ShouldHaveLength, 2)

			a.Close()
			remaining := GetCollectors()
			So(remaining, ShouldHaveLength, 1)
			So(remaining[0].Key(), ShouldEqual, "b")

			b.Close()
			So(GetCollectors(), ShouldBeEmpty)
		})

		Convey("closing twice is harmless", func() {
			a := NewCollector("a")
			a.Close()
			a.Close()
			So(GetCollectors(), ShouldBeEmpty)
		})

		Convey("the registry is rebuilt after the last collector closes", func() {
			a := NewCollector("a")
			a.Close()

			b := NewCollector("b")
			defer b.Close()

			live := GetCollectors()
			So(live, ShouldHaveLength, 1)
			So(live[0].Key(), ShouldEqual, "b")
		})

		Convey("snapshots stay valid while collectors close", func() {
			a := NewCollector("a")
			snapshot := GetCollectors()
			a.Close()
			So(snapshot, ShouldHaveLength, 1)
			So(snapshot[0].Key(), ShouldEqual, "a")
		})
	})
}

func TestResetCollectors(t *testing.T) {
	Convey("ResetCollectors empties every live collector", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		now := int64(10 * slotUs)
		mockClock := mock_rehex.NewMockClock(mockCtrl)
		mockClock.EXPECT().NowMicros().AnyTimes().DoAndReturn(func() int64 { return now })

		a := NewCollectorWithClock("a", mockClock)
		defer a.Close()
		b := NewCollectorWithClock("b", mockClock)
		defer b.Close()

		a.RecordTime(now, 5)
		b.RecordTime(now, 7)

		now = 11 * slotUs
		So(a.AccumulateStats(5000).NumSamples, ShouldEqual, 1)

		ResetCollectors()
		So(a.AccumulateStats(5000), ShouldResemble, Stats{})
		So(b.AccumulateStats(5000), ShouldResemble, Stats{})
	})
}
