package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PyroSamurai/rehex"
	"github.com/PyroSamurai/rehex/api"
)

// RequestLogger logs one line per request and converts panics into 500s.
func RequestLogger(logger rehex.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(writer http.ResponseWriter, request *http.Request) {
			wrapWriter := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)

			start := time.Now()
			defer func() {
				if rvr := recover(); rvr != nil {
					render.Render(wrapWriter, request, api.ErrorInternalServer(fmt.Errorf("internal server error"))) //nolint
					logger.Errorf("panic handling %s %s: %v\n%s", request.Method, request.URL.Path, rvr, debug.Stack())
					return
				}
				logger.Infof("%s %s %d %d bytes in %s",
					request.Method, request.URL.Path, wrapWriter.Status(), wrapWriter.BytesWritten(), time.Since(start))
			}()

			next.ServeHTTP(wrapWriter, request)
		}
		return http.HandlerFunc(fn)
	}
}
