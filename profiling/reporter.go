package profiling

import (
	"time"

	"github.com/PyroSamurai/rehex"
	"github.com/PyroSamurai/rehex/worker"
)

// Reporter periodically writes a window aggregate for every live
// collector to the log, one line per collector. It is the headless
// equivalent of a profiling counters view: the same fixed refresh tick
// and the same caller-chosen window.
type Reporter struct {
	logger   rehex.Logger
	windowMs uint64
	worker   *worker.Worker
}

// NewReporter creates a reporter that snapshots the registry every
// interval and aggregates over the last windowMs milliseconds.
func NewReporter(logger rehex.Logger, interval time.Duration, windowMs uint64) *Reporter {
	reporter := &Reporter{
		logger:   logger,
		windowMs: windowMs,
	}
	reporter.worker = worker.NewWorker("profiling reporter", logger, interval, reporter.report)
	return reporter
}

// Start begins the refresh loop.
func (reporter *Reporter) Start() {
	reporter.worker.Start()
}

// Stop ends the refresh loop and waits for an in-flight report.
func (reporter *Reporter) Stop() error {
	return reporter.worker.Stop()
}

func (reporter *Reporter) report() error {
	for _, collector := range GetCollectors() {
		stats := collector.AccumulateStats(reporter.windowMs)
		reporter.logger.Infof("%s: samples=%d min=%dus max=%dus avg=%dus",
			collector.Key(), stats.NumSamples, stats.MinTime, stats.MaxTime, stats.AvgTime())
	}
	return nil
}
