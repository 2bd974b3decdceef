// Package api - thin, deterministic HTTP layer
// The API is only responsible for input ingestion, engine orchestration
// and output serialization. It never performs pricing logic. Requests are
// independent units of work: the registry and profiles are immutable, so
// concurrent requests need no coordination.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"retail-price/core/profile"
	"retail-price/internal/errors"
	"retail-price/internal/logging"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string, registry *profile.Registry, defaultProfile string) *Server {
	s := &Server{
		handler: NewHandler(registry, defaultProfile),
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("GET /profiles", s.handleListProfiles)
	s.mux.HandleFunc("GET /profiles/{name}", s.handleGetProfile)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := generateRequestID()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if _, ok := err.(*errors.Error); ok {
			s.writeError(w, requestID, errorDetail(err), statusFor(err))
			return
		}
		s.writeError(w, requestID, &ErrorDetail{
			Code:    "INVALID_JSON",
			Message: err.Error(),
		}, http.StatusBadRequest)
		return
	}

	quote, err := s.handler.execute(&req)
	if err != nil {
		logging.Warn("quote rejected",
			zap.String("request_id", requestID),
			zap.Error(err))
		s.writeError(w, requestID, errorDetail(err), statusFor(err))
		return
	}

	logging.Info("quote computed",
		zap.String("request_id", requestID),
		zap.String("profile", quote.Profile),
		zap.Int64("quantity", quote.Inputs.Quantity),
		zap.String("price", quote.Price.StringFixed(2)))

	s.writeJSON(w, &QuoteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "success",
		Quote:     quote,
		Metadata: &ResponseMetadata{
			InputHash:     computeInputHash(&req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleListProfiles handles GET /profiles
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	summaries := s.handler.profileSummaries()
	s.writeJSON(w, map[string]interface{}{
		"profiles": summaries,
		"count":    len(summaries),
	}, http.StatusOK)
}

// handleGetProfile handles GET /profiles/{name}
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	p, ok := s.handler.registry.Get(name)
	if !ok {
		s.writeError(w, generateRequestID(), &ErrorDetail{
			Code:    "PROFILE_ERROR",
			Field:   "profile",
			Message: fmt.Sprintf("pricing profile %q not found", name),
		}, http.StatusNotFound)
		return
	}
	s.writeJSON(w, summarize(p), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "retail-price",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, detail *ErrorDetail, status int) {
	s.writeJSON(w, &QuoteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "error",
		Error:     detail,
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func computeInputHash(req *QuoteRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func generateRequestID() string {
	return fmt.Sprintf("qt-%d", time.Now().UnixNano())
}
