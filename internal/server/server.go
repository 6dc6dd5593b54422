package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"logbay/internal/catalog"
	"logbay/internal/config"
	"logbay/internal/logging"
	"logbay/internal/serviceinfo"
)

// Route prefixes the two catalogs are served under. They also form the path
// segment baked into every log URL handed to clients.
const (
	systemSegment  = "system-logs"
	serviceSegment = "service-logs"
)

// Server serves the log catalogs over HTTP. Catalogs are immutable after
// construction; handlers are stateless and safe for concurrent use.
type Server struct {
	bind     string
	logger   *slog.Logger
	system   catalog.Catalog
	services catalog.Catalog
	base     *url.URL
	maxLines int
	gate     *gate
	info     serviceinfo.Document

	lockPath string
	lock     *flock.Flock
	listener net.Listener
	server   *http.Server
}

// New constructs the HTTP server from fully built catalogs. Both catalogs
// must be complete before New is called; no partially built catalog is ever
// visible to a request.
func New(cfg *config.Config, system, services catalog.Catalog, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server requires config")
	}

	base, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}

	lockPath := filepath.Join(cfg.Logging.Dir, "logbayd.lock")
	srv := &Server{
		bind:     cfg.Server.Bind,
		logger:   logger,
		system:   system,
		services: services,
		base:     base,
		maxLines: cfg.Tail.MaxLines,
		gate:     newGate(cfg.Server),
		info:     serviceinfo.New(cfg.Server.ServiceID),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/"+systemSegment, srv.guarded(srv.handleList(system, systemSegment)))
	mux.HandleFunc("/"+systemSegment+"/", srv.guarded(srv.handleEntry(system, systemSegment)))
	mux.HandleFunc("/"+serviceSegment, srv.guarded(srv.handleList(services, serviceSegment)))
	mux.HandleFunc("/"+serviceSegment+"/", srv.guarded(srv.handleEntry(services, serviceSegment)))
	mux.HandleFunc("/service-info", srv.withRequestID(srv.handleServiceInfo))

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// guarded is the standard wrapping for log routes: request ID first, then
// the permission gate.
func (s *Server) guarded(next http.HandlerFunc) http.HandlerFunc {
	return s.withRequestID(s.gate.require(next))
}

// Start acquires the single-instance lock and begins serving. Shutdown is
// driven by ctx cancellation.
func (s *Server) Start(ctx context.Context) error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another logbay daemon instance is already running")
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("listening",
		logging.String("address", listener.Addr().String()),
		logging.Int("system_sources", s.system.Len()),
		logging.Int("service_sources", s.services.Len()))
	return nil
}

// Stop shuts the server down and releases the single-instance lock.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	if err := s.lock.Unlock(); err != nil {
		s.log().Warn("failed to release daemon lock", logging.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) log() *slog.Logger {
	return logging.NewComponentLogger(s.logger, "http-server")
}
