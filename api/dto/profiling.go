// nolint
package dto

import (
	"net/http"

	"github.com/PyroSamurai/rehex/profiling"
)

// CollectorStats is one row of the profiling counters view.
type CollectorStats struct {
	Name       string `json:"name"`
	NumSamples int64  `json:"num_samples"`
	MinTime    int64  `json:"min_us"`
	MaxTime    int64  `json:"max_us"`
	AvgTime    int64  `json:"avg_us"`
}

// CollectorStatsList is every live collector aggregated over one window.
type CollectorStatsList struct {
	WindowMs uint64           `json:"window_ms"`
	List     []CollectorStats `json:"list"`
}

func (*CollectorStatsList) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// MakeCollectorStats converts an aggregate into a view row.
func MakeCollectorStats(name string, stats profiling.Stats) CollectorStats {
	return CollectorStats{
		Name:       name,
		NumSamples: stats.NumSamples,
		MinTime:    stats.MinTime,
		MaxTime:    stats.MaxTime,
		AvgTime:    stats.AvgTime(),
	}
}
