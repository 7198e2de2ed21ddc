// Package api is the HTTP adapter over the judging pipeline: it validates
// request payloads at the boundary and serialises verdicts back out. The
// execution core never sees an unvalidated request.
package api

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/openjudge/arbiter/internal/judge"
	"github.com/openjudge/arbiter/internal/store"
)

// Server hosts the judging API. Admission is bounded by a weighted semaphore
// so a burst of submissions cannot exhaust the container daemon.
type Server struct {
	httpServer *http.Server
	pipeline   *judge.Pipeline
	validator  *requestValidator
	store      store.Store
	admission  *semaphore.Weighted
	bind       string
	port       int
}

type ServerConfig struct {
	Bind                    string
	Port                    int
	MaxConcurrentJudgements int
	Pipeline                *judge.Pipeline
	Store                   store.Store // optional; nil disables history
}

func NewServer(cfg ServerConfig) (*Server, error) {
	validator, err := newRequestValidator()
	if err != nil {
		return nil, err
	}

	maxInFlight := cfg.MaxConcurrentJudgements
	if maxInFlight <= 0 {
		maxInFlight = 4
	}

	s := &Server{
		pipeline:  cfg.Pipeline,
		validator: validator,
		store:     cfg.Store,
		admission: semaphore.NewWeighted(int64(maxInFlight)),
		bind:      cfg.Bind,
		port:      cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Bind, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // a full judgement can span many compile+run execs
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start serves until interrupted, then drains with a shutdown grace period.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.bind, s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	fmt.Fprintf(os.Stderr, "Arbiter judging API running at http://%s\n", addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down judging API...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	if s.store != nil {
		s.store.Close()
	}
	return nil
}
