// Package server provides the HTTP REST API for the match scoring engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mathieu/talent-match/internal/db"
	"github.com/mathieu/talent-match/internal/matching"
	"github.com/mathieu/talent-match/internal/notify"
	"github.com/mathieu/talent-match/internal/server/ratelimit"
	"github.com/mathieu/talent-match/internal/types"
)

// Store is the persistence surface the handlers need. *db.Store satisfies
// it; tests provide a stub.
type Store interface {
	GetTalent(ctx context.Context, talentID uuid.UUID) (*types.TalentProfile, error)
	GetOffer(ctx context.Context, offerID uuid.UUID) (*types.OfferRequirements, error)
	ListSearchableTalents(ctx context.Context) ([]types.TalentProfile, error)
	ListCommitmentsByTalent(ctx context.Context, talentIDs []uuid.UUID) (map[uuid.UUID][]types.Commitment, error)
	UpsertMatch(ctx context.Context, event types.MatchEvent) error
	MarkMatchSeen(ctx context.Context, offerID, talentID uuid.UUID) error
	ListMatchesForOffer(ctx context.Context, offerID uuid.UUID) ([]types.Match, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	notifier    notify.Notifier
	log         *zap.Logger
	rateLimiter *ratelimit.Limiter
	params      matching.Params
	minScore    int
	concurrency int
}

// Config holds server configuration
type Config struct {
	Port        int
	Store       Store
	Notifier    notify.Notifier
	Log         *zap.Logger
	Params      matching.Params
	MinScore    int
	Concurrency int
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring params: %w", err)
	}

	s := &Server{
		store:       cfg.Store,
		notifier:    cfg.Notifier,
		log:         cfg.Log,
		params:      cfg.Params,
		minScore:    cfg.MinScore,
		concurrency: cfg.Concurrency,
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Matching endpoints
	mux.HandleFunc("GET /offers/{offer_id}/match/{talent_id}", s.handleSingleMatch)
	mux.HandleFunc("POST /offers/{offer_id}/matches", s.handleRankOffer)
	mux.HandleFunc("GET /offers/{offer_id}/matches", s.handleListMatches)
	mux.HandleFunc("POST /offers/{offer_id}/matches/{talent_id}/seen", s.handleMarkSeen)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // bulk ranking of a large pool takes a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if store, ok := s.store.(*db.Store); ok {
		store.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r))
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID extracts the client identifier (the IP) from the request.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
