package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/PyroSamurai/rehex/api"
	"github.com/PyroSamurai/rehex/api/dto"
	"github.com/PyroSamurai/rehex/profiling"
)

// defaultWindowMs matches the 5s preset the counters view starts on.
const defaultWindowMs = 5000

func profilingCounters(router chi.Router) {
	router.Get("/", getCollectorStats)
	router.Put("/reset", resetCollectors)
}

func getCollectorStats(writer http.ResponseWriter, request *http.Request) {
	windowMs := uint64(defaultWindowMs)
	if raw := request.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("invalid window '%s'", raw))) //nolint
			return
		}
		windowMs = parsed
	}

	list := &dto.CollectorStatsList{
		WindowMs: windowMs,
		List:     make([]dto.CollectorStats, 0),
	}
	for _, collector := range profiling.GetCollectors() {
		list.List = append(list.List, dto.MakeCollectorStats(collector.Key(), collector.AccumulateStats(windowMs)))
	}

	if err := render.Render(writer, request, list); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func resetCollectors(writer http.ResponseWriter, request *http.Request) {
	profiling.ResetCollectors()
	writer.WriteHeader(http.StatusOK)
}
