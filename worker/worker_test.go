package worker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/PyroSamurai/rehex/logging"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWorker(t *testing.T) {
	Convey("Worker runs its action on every tick until stopped", t, func() {
		logger, err := logging.GetLogger("Test")
		So(err, ShouldBeNil)

		var mu sync.Mutex
		ticks := 0

		worker := NewWorker("test worker", logger, 5*time.Millisecond, func() error {
			mu.Lock()
			defer mu.Unlock()
			ticks++
			return nil
		})

		worker.Start()
		time.Sleep(40 * time.Millisecond)
		So(worker.Stop(), ShouldBeNil)

		mu.Lock()
		total := ticks
		mu.Unlock()
		So(total, ShouldBeGreaterThan, 0)

		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		So(ticks, ShouldEqual, total)
		mu.Unlock()
	})

	Convey("An action error does not stop the worker", t, func() {
		logger, err := logging.GetLogger("Test")
		So(err, ShouldBeNil)

		var mu sync.Mutex
		ticks := 0

		worker := NewWorker("failing worker", logger, 5*time.Millisecond, func() error {
			mu.Lock()
			defer mu.Unlock()
			ticks++
			return errors.New("tick failed")
		})

		worker.Start()
		time.Sleep(40 * time.Millisecond)
		So(worker.Stop(), ShouldBeNil)

		mu.Lock()
		So(ticks, ShouldBeGreaterThan, 1)
		mu.Unlock()
	})
}
