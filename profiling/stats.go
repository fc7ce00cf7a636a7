package profiling

// Stats is an additive aggregate over recorded time samples. All durations
// are in microseconds. The zero value is an empty aggregate: min, max and
// total are meaningless until the first sample arrives.
type Stats struct {
	MinTime    int64 `json:"min"`
	MaxTime    int64 `json:"max"`
	TotalTime  int64 `json:"total"`
	NumSamples int64 `json:"num_samples"`
}

// Reset returns the aggregate to its empty state.
func (stats *Stats) Reset() {
	*stats = Stats{}
}

// RecordTime folds one sample duration into the aggregate.
func (stats *Stats) RecordTime(duration int64) {
	if stats.NumSamples == 0 {
		stats.MinTime = duration
		stats.MaxTime = duration
		stats.TotalTime = duration
	} else {
		if stats.MinTime > duration {
			stats.MinTime = duration
		}

		if stats.MaxTime < duration {
			stats.MaxTime = duration
		}

		stats.TotalTime += duration
	}

	stats.NumSamples++
}

// AvgTime returns the mean sample duration, 0 for an empty aggregate.
func (stats *Stats) AvgTime() int64 {
	if stats.NumSamples > 0 {
		return stats.TotalTime / stats.NumSamples
	}
	return 0
}

// Merge folds rhs into stats. Merging an empty aggregate is a no-op.
// Merge is commutative and associative, so summing disjoint slot ranges
// gives the same result as one pass over their union.
func (stats *Stats) Merge(rhs Stats) {
	if rhs.NumSamples == 0 {
		return
	}

	if stats.NumSamples == 0 || stats.MinTime > rhs.MinTime {
		stats.MinTime = rhs.MinTime
	}

	if stats.NumSamples == 0 || stats.MaxTime < rhs.MaxTime {
		stats.MaxTime = rhs.MaxTime
	}

	stats.TotalTime += rhs.TotalTime
	stats.NumSamples += rhs.NumSamples
}
