package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/visnughosh/portfolio/internal/ports"
	"github.com/visnughosh/portfolio/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

// Options configures the HTTP server.
type Options struct {
	Addr            string
	PublicDir       string // images referenced by the page
	ShutdownTimeout time.Duration
}

type Server struct {
	router   chi.Router
	opts     Options
	logger   *zap.Logger
	recorder ports.PageViewRecorder
}

func NewServer(opts Options, logger *zap.Logger, recorder ports.PageViewRecorder) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	s := &Server{
		router:   chi.NewRouter(),
		opts:     opts,
		logger:   logger,
		recorder: recorder,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimw.Recoverer)
	s.router.Use(middleware.HTMX)

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/", s.handleIndex)
	s.router.Get("/api/index", s.handleAPIIndex)

	// Profile and project images.
	s.router.Get("/*", s.handleAsset)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", zap.String("addr", s.opts.Addr), zap.String("public_dir", s.opts.PublicDir))

	failed := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
		case <-failed:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-stopped
		return nil
	}
	close(failed)
	<-stopped
	return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
}
