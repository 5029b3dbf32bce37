package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/survey-profiler/internal/config"
	"github.com/jonathan/survey-profiler/internal/db"
	"github.com/jonathan/survey-profiler/internal/server/ratelimit"
)

// Server hosts the scoring API. Completed runs are cached in memory for
// the life of the process; the database, when configured, provides
// durability across restarts.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	databaseURL string
	logger      *zap.Logger
	jwtService  *JWTService
	auth        *config.AuthConfig
	rateLimiter *ratelimit.Limiter
	embedImages bool

	mu   sync.RWMutex
	runs map[string]*runEntry
}

// Config holds server configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	EmbedImages bool
	Logger      *zap.Logger
}

// New creates a server. A database connection is only attempted when a
// URL is configured; without one the API serves from the in-memory cache.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	auth, err := config.NewAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}

	s := &Server{
		databaseURL: cfg.DatabaseURL,
		logger:      logger,
		auth:        auth,
		jwtService:  NewJWTService(auth),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		embedImages: cfg.EmbedImages,
		runs:        make(map[string]*runEntry),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // image rasterization can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.HandleFunc("POST /api/runs", s.requireAuth(s.handleRun))
	mux.HandleFunc("POST /api/runs/stream", s.requireAuth(s.handleRunStream))
	mux.HandleFunc("GET /api/runs", s.requireAuth(s.handleListRuns))
	mux.HandleFunc("GET /api/runs/{id}", s.requireAuth(s.handleGetRun))
	mux.HandleFunc("GET /api/runs/{id}/report", s.requireAuth(s.handleReport))
	mux.HandleFunc("GET /api/runs/{id}/workbook", s.requireAuth(s.handleWorkbook))

	return s.withRateLimit(s.withLogging(mux))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.db != nil {
		s.db.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// requireAuth enforces a valid bearer token.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			s.errorResponse(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		if _, err := s.jwtService.ValidateToken(token); err != nil {
			s.logger.Debug("token rejected", zap.Error(err))
			w.Header().Set("WWW-Authenticate", "Bearer")
			s.errorResponse(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r)
	}
}

// withRateLimit throttles per client IP. Scoring runs use a stricter tier.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		clientID := s.extractClientID(r)

		var allowed bool
		var info ratelimit.Info
		if r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/api/runs") {
			allowed, info = s.rateLimiter.AllowRun(clientID)
		} else {
			allowed, info = s.rateLimiter.Allow(clientID)
		}

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID returns the client IP from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		retryAfter := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = retryAfter
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	}

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
