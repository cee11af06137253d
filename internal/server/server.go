// Package server exposes the trainer over HTTP: JSON endpoints for dealing,
// grading and range lookups, plus a websocket drill stream.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lox/preflop-trainer/internal/session"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// Options configures a Server
type Options struct {
	Address   string
	CacheSize int
	Training  trainer.TrainingConfig
}

// Server serves scenarios from a shared generator
type Server struct {
	addr     string
	gen      *trainer.Generator
	training trainer.TrainingConfig
	issued   *lru.Cache[string, trainer.Scenario]
	tally    *session.Session
	upgrader websocket.Upgrader
	logger   *log.Logger
	router   chi.Router
}

// New creates a server. Scenarios handed out over HTTP are remembered, up
// to CacheSize, so answers can be graded by id.
func New(logger *log.Logger, gen *trainer.Generator, opts Options) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := opts.Training.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}
	issued, err := lru.New[string, trainer.Scenario](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario cache: %w", err)
	}

	s := &Server{
		addr:     opts.Address,
		gen:      gen,
		training: opts.Training,
		issued:   issued,
		tally:    session.New(logger, gen, opts.Training),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The drill UI may be served from anywhere
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/ws", s.handleWebSocket)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/scenario", s.handleScenario)
		r.Post("/scenario/{id}/answer", s.handleAnswer)
		r.Get("/range", s.handleRange)
		r.Get("/opponent-range", s.handleOpponentRange)
		r.Get("/stats", s.handleStats)
	})
	return r
}

// Handler returns the HTTP handler, for embedding or tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
