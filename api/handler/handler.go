package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PyroSamurai/rehex"
	"github.com/PyroSamurai/rehex/api"
	rehex_middle "github.com/PyroSamurai/rehex/api/middleware"
)

var document rehex.Document

// NewHandler routes the profiling, data type and document APIs.
func NewHandler(doc rehex.Document, logger rehex.Logger) http.Handler {
	document = doc

	router := chi.NewRouter()
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(rehex_middle.RequestLogger(logger))
	router.Use(middleware.NoCache)
	router.Use(rehex_middle.Profiler())

	router.NotFound(notFoundHandler)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api", func(router chi.Router) {
		router.Route("/profiling", profilingCounters)
		router.Route("/datatypes", dataTypes)
		router.Route("/document", documentValues)
	})
	return router
}

func notFoundHandler(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("X-Content-Type-Options", "nosniff")
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusNotFound)
	render.Render(writer, request, api.ErrNotFound) //nolint
}

func methodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusMethodNotAllowed)
	render.Render(writer, request, api.ErrMethodNotAllowed) //nolint
}
