package ops

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(s.notFound)
	mux.MethodNotAllowed(s.methodNotAllowed)

	mux.Use(s.traceID)
	mux.Use(s.logAccess)
	mux.Use(s.recoverPanic)

	mux.Get("/status", s.handleStatus)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/api/v1/equipment", s.handleEquipment)
	mux.Get("/api/v1/events", s.handleEvents)

	return mux
}
