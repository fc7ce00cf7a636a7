package middleware

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi"

	"github.com/PyroSamurai/rehex/clock"
	"github.com/PyroSamurai/rehex/profiling"
)

var profilerClock = clock.NewSystemClock()

// Profiler times every request into a per-route profiling collector, so
// the service's own request handling shows up in the profiling counters
// it serves. Collectors live for the rest of the process.
func Profiler() func(next http.Handler) http.Handler {
	var (
		mu         sync.Mutex
		collectors = map[string]*profiling.Collector{}
	)

	collectorFor := func(key string) *profiling.Collector {
		mu.Lock()
		defer mu.Unlock()

		if collector, ok := collectors[key]; ok {
			return collector
		}
		collector := profiling.NewCollector(key)
		collectors[key] = collector
		return collector
	}

	return func(next http.Handler) http.Handler {
		fn := func(writer http.ResponseWriter, request *http.Request) {
			startTime := profilerClock.NowMicros()

			next.ServeHTTP(writer, request)

			// the route pattern is only known once routing has happened
			routePattern := chi.RouteContext(request.Context()).RoutePattern()
			if routePattern == "" {
				routePattern = request.URL.Path
			}

			collector := collectorFor(request.Method + " " + routePattern)
			collector.RecordTime(startTime, profilerClock.NowMicros()-startTime)
		}
		return http.HandlerFunc(fn)
	}
}
