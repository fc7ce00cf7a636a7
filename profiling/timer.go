package profiling

// Timer measures the wall-clock duration of a block of work and records
// it into a collector when stopped:
//
//	defer profiling.StartTimer(collector).Stop()
//
// The deferred Stop fires on every exit path, so a sample is recorded no
// matter how the block returns.
type Timer struct {
	collector *Collector
	startTime int64
	stopped   bool
}

// StartTimer captures a start timestamp on the collector's clock.
func StartTimer(collector *Collector) *Timer {
	return &Timer{
		collector: collector,
		startTime: collector.clock.NowMicros(),
	}
}

// Stop records the elapsed time since StartTimer, attributed to the
// bucket the measurement began in. At most one sample is recorded, so an
// early explicit Stop followed by a deferred one is harmless.
func (timer *Timer) Stop() {
	if timer.stopped {
		return
	}
	timer.stopped = true

	endTime := timer.collector.clock.NowMicros()
	timer.collector.RecordTime(timer.startTime, endTime-timer.startTime)
}
