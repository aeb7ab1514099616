package ops

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type jsonObject map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonObject{"status": "OK"}); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *Server) handleEquipment(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonObject{"items": s.equipment.Equipment()}); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *Server) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := writeJSON(w, status, jsonObject{"error": message}); err != nil {
		s.logger.Error(r.Context(), "write error response", "error", err)
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "server error", "error", err, "trace_id", traceIDFrom(r.Context()))
	s.errorMessage(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.errorMessage(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.errorMessage(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("the %s method is not supported for this resource", r.Method))
}
