package worker

import (
	"time"

	"github.com/PyroSamurai/rehex"
	"gopkg.in/tomb.v2"
)

// NewWorker creates Worker
func NewWorker(name string, logger rehex.Logger, interval time.Duration, action func() error) *Worker {
	return &Worker{name: name, logger: logger, interval: interval, action: action}
}

// Worker runs a named action on a fixed tick until stopped
type Worker struct {
	name     string
	logger   rehex.Logger
	interval time.Duration
	action   func() error
	tomb     tomb.Tomb
}

// Start begins ticking in a background goroutine
func (worker *Worker) Start() {
	worker.tomb.Go(worker.run)
	worker.logger.Infof("%s started", worker.name)
}

func (worker *Worker) run() error {
	ticker := time.NewTicker(worker.interval)
	defer ticker.Stop()

	for {
		select {
		case <-worker.tomb.Dying():
			worker.logger.Infof("%s stopped", worker.name)
			return nil
		case <-ticker.C:
			if err := worker.action(); err != nil {
				worker.logger.Errorf("%s tick failed: %s", worker.name, err.Error())
			}
		}
	}
}

// Stop stops the worker and waits for any in-flight tick to finish
func (worker *Worker) Stop() error {
	worker.tomb.Kill(nil)
	return worker.tomb.Wait()
}
