// Package server exposes the analyzer over HTTP with a SQLite-backed
// result cache.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sovscan/analyzer"
	"sovscan/input"
	"sovscan/model"
	"sovscan/store"
	"sovscan/util"
)

// Analyzer runs one analysis end to end.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*model.AnalysisResult, error)
}

// Server handles analysis requests over HTTP.
type Server struct {
	analyzer    Analyzer
	store       *store.Store
	cacheMaxAge time.Duration
	version     string
}

// New creates a server. store may be nil to disable caching and
// archiving.
func New(a Analyzer, st *store.Store, cacheMaxAge time.Duration, version string) *Server {
	return &Server{analyzer: a, store: st, cacheMaxAge: cacheMaxAge, version: version}
}

// Routes returns the HTTP router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Get("/healthz", s.handleHealthz)
	r.Post("/analyze", s.handleAnalyze)
	r.Get("/history", s.handleHistory)
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

type analyzeRequest struct {
	URL     string `json:"url"`
	NoCache bool   `json:"no_cache"`
}

type analyzeResponse struct {
	Cached bool                  `json:"cached"`
	Result *model.AnalysisResult `json:"result"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	// Cache is keyed by the normalized URL; the dummy sentinel bypasses
	// it entirely.
	if s.store != nil && !req.NoCache && !input.IsDummy(req.URL) {
		if normalized, err := input.Normalize(req.URL); err == nil {
			cached, hit, err := s.store.GetCached(r.Context(), normalized, s.cacheMaxAge)
			if err != nil {
				util.Warn("Cache lookup failed for %s: %v", normalized, err)
			} else if hit {
				writeJSON(w, http.StatusOK, analyzeResponse{Cached: true, Result: cached})
				return
			}
		}
	}

	result, err := s.analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		if analyzer.IsUserError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			util.Error("Analysis of %s failed: %v", req.URL, err)
			writeError(w, http.StatusInternalServerError, "analysis failed")
		}
		return
	}

	if s.store != nil && !input.IsDummy(req.URL) {
		if _, err := s.store.SaveAnalysis(r.Context(), result); err != nil {
			util.Warn("Failed to archive analysis for %s: %v", result.URL, err)
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Cached: false, Result: result})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "history is disabled: no database configured")
		return
	}
	entries, err := s.store.History(r.Context(), 100)
	if err != nil {
		util.Error("History query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if entries == nil {
		entries = []store.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		util.Error("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
