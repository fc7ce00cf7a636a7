package profiling

import (
	"container/list"
	"sync"
)

// The registry is a non-owning index of the live collectors, there so a
// single monitoring view can discover metrics declared at arbitrary
// points in the program. It is created lazily by the first NewCollector
// and freed again when the last collector is closed.
var (
	registryMu sync.Mutex
	collectors *list.List
)

func register(collector *Collector) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if collectors == nil {
		collectors = list.New()
	}

	collector.elem = collectors.PushBack(collector)
}

func deregister(collector *Collector) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if collector.elem == nil {
		return
	}

	collectors.Remove(collector.elem)
	collector.elem = nil

	if collectors.Len() == 0 {
		collectors = nil
	}
}

// GetCollectors returns a snapshot of the live collectors. The returned
// slice stays valid while collectors are created and closed elsewhere;
// never iterate the live registry directly.
func GetCollectors() []*Collector {
	registryMu.Lock()
	defer registryMu.Unlock()

	if collectors == nil {
		return nil
	}

	snapshot := make([]*Collector, 0, collectors.Len())
	for e := collectors.Front(); e != nil; e = e.Next() {
		snapshot = append(snapshot, e.Value.(*Collector))
	}

	return snapshot
}

// ResetCollectors empties every live collector's history.
func ResetCollectors() {
	for _, collector := range GetCollectors() {
		collector.Reset()
	}
}
