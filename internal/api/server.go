// Package api is the thin HTTP shell around the planning core: decode
// request, validate, plan, encode response. Grounded on the teacher's
// internal/api/server.go Server/writeJSON/writeError/mux conventions.
package api

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"drove-planner/internal/config"
	"drove-planner/internal/domain"
	"drove-planner/internal/logger"
	"drove-planner/internal/planner"
	"drove-planner/internal/store"
)

// Server wires together the planner, the history store, and request
// deduplication behind a handful of JSON endpoints.
type Server struct {
	planner   planner.Planner
	history   *store.Store
	startedAt time.Time
	group     singleflight.Group
}

// NewServer builds a Server. history may be nil, in which case plan
// runs are not persisted (the planning core itself is pure in-memory
// per spec.md §3; history is purely additive).
func NewServer(p planner.Planner, history *store.Store) *Server {
	return &Server{planner: p, history: history, startedAt: time.Now()}
}

// Handler returns the routed http.Handler for this server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /optimize", s.handleOptimize)
	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"service": "drove-planner"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":          "ok",
		"uptime_seconds":  int64(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	planReq := config.WithDefaults(toPlanRequest(req))
	if err := config.Validate(planReq); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	digest := requestDigest(planReq)

	v, err, _ := s.group.Do(digest, func() (interface{}, error) {
		return s.planner.Plan(r.Context(), planReq)
	})
	if err != nil {
		logger.Error("API", fmt.Sprintf("plan failed: %v", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := *v.(*domain.PlanResult)
	if s.history != nil {
		if err := s.history.Record(result, digest); err != nil {
			logger.Warn("Store", fmt.Sprintf("failed to record plan %s: %v", result.PlanID, err))
		}
	}

	writeJSON(w, fromPlanResult(result))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func requestDigest(req any) string {
	b, _ := json.Marshal(req)
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%x", sum)
}
