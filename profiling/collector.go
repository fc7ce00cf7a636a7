package profiling

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/PyroSamurai/rehex"
	"github.com/PyroSamurai/rehex/clock"
)

const (
	// numSlots is the retained history depth, one slot per slotDurationMs.
	numSlots       = 60
	slotDurationMs = 1000
	slotDurationUs = slotDurationMs * 1000
)

// Collector owns a rolling time-bucketed Stats history for one named
// metric. slots[0] is the still-open bucket covering the current
// slotDurationMs interval and slots[i] the bucket i intervals before it;
// headTimeBucket is the absolute bucket index slots[0] represents.
//
// A Collector registers itself into the process-wide registry on
// construction and must be released with Close.
type Collector struct {
	key   string
	clock rehex.Clock

	mu             sync.Mutex
	slots          [numSlots]Stats
	headTimeBucket uint64

	// registry bookkeeping, guarded by the registry mutex
	elem *list.Element
}

// NewCollector creates and registers a collector using the system
// monotonic clock.
func NewCollector(key string) *Collector {
	return NewCollectorWithClock(key, clock.NewSystemClock())
}

// NewCollectorWithClock creates and registers a collector on the given
// time source. Mostly for tests.
func NewCollectorWithClock(key string, clock rehex.Clock) *Collector {
	collector := &Collector{
		key:   key,
		clock: clock,
	}
	register(collector)
	return collector
}

// Key returns the collector's immutable name.
func (collector *Collector) Key() string {
	return collector.key
}

// Close removes the collector from the registry. Closing the last live
// collector frees the registry itself. Close is idempotent.
func (collector *Collector) Close() {
	deregister(collector)
}

// RecordTime folds a sample into the bucket its begin time falls in,
// advancing the ring to the current bucket first. Samples that began
// before the retained history are dropped silently.
func (collector *Collector) RecordTime(beginTime, duration int64) {
	collector.mu.Lock()
	defer collector.mu.Unlock()

	collector.advance()

	beginTimeBucket := uint64(beginTime) / slotDurationUs
	if beginTimeBucket <= collector.headTimeBucket && beginTimeBucket+numSlots > collector.headTimeBucket {
		slotIdx := collector.headTimeBucket - beginTimeBucket
		collector.slots[slotIdx].RecordTime(duration)
	}
}

// AccumulateStats merges the closed buckets covering the most recent
// windowDurationMs milliseconds. slots[0] is still accumulating and is
// never included, so a zero window yields an empty Stats.
func (collector *Collector) AccumulateStats(windowDurationMs uint64) Stats {
	collector.mu.Lock()
	defer collector.mu.Unlock()

	collector.advance()

	statsEnd := 1 + windowDurationMs/slotDurationMs
	if statsEnd > numSlots {
		statsEnd = numSlots
	}

	var acc Stats
	for i := uint64(1); i < statsEnd; i++ {
		acc.Merge(collector.slots[i])
	}

	return acc
}

// Reset empties every slot of the ring.
func (collector *Collector) Reset() {
	collector.mu.Lock()
	defer collector.mu.Unlock()

	collector.resetSlots(0, numSlots)
}

// advance shifts the ring so slots[0] is the bucket containing the
// clock's current time. Older buckets move to higher indexes; vacated and
// overflowed slots are reset. Caller must hold mu.
func (collector *Collector) advance() {
	nowTimeBucket := uint64(collector.clock.NowMicros()) / slotDurationUs
	if nowTimeBucket == collector.headTimeBucket {
		return
	}

	if nowTimeBucket < collector.headTimeBucket {
		panic(fmt.Sprintf("profiling: time went backwards (bucket %d, head %d)", nowTimeBucket, collector.headTimeBucket))
	}

	shiftBy := nowTimeBucket - collector.headTimeBucket

	slotsToKeep := uint64(0)
	if shiftBy < numSlots {
		slotsToKeep = numSlots - shiftBy
		copy(collector.slots[shiftBy:], collector.slots[:slotsToKeep])
	}

	collector.resetSlots(0, numSlots-slotsToKeep)
	collector.headTimeBucket = nowTimeBucket
}

func (collector *Collector) resetSlots(beginIdx, endIdx uint64) {
	for i := beginIdx; i < endIdx; i++ {
		collector.slots[i].Reset()
	}
}
