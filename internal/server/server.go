package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/findar/internal/config"
	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/discovery"
	"github.com/muurk/findar/internal/logging"
	"github.com/muurk/findar/internal/site"
	"github.com/muurk/findar/internal/version"
)

// Server serves the landing page and the live carousel channel
type Server struct {
	config     *config.Config
	doc        *content.Content
	handler    http.Handler
	upgrader   websocket.Upgrader
	httpServer *http.Server
	advertiser *discovery.Advertiser

	wg           sync.WaitGroup
	mu           sync.Mutex
	activeConns  map[*websocket.Conn]string
	shuttingDown bool
}

// New creates a Server for doc. The catalog must hold at least one feature.
func New(cfg *config.Config, doc *content.Content) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if _, err := site.NewCarousel(doc); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	s := &Server{
		config:      cfg,
		doc:         doc,
		activeConns: make(map[*websocket.Conn]string),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	s.handler = s.buildRouter()
	return s, nil
}

// Handler returns the HTTP handler with every route and middleware attached
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address, optionally advertises over mDNS,
// and blocks until a shutdown signal or a serve error
func (s *Server) Start() error {
	addr := s.config.Addr()
	logging.Info("Starting Findar site server",
		zap.String("addr", addr),
		zap.Int("features", len(s.doc.Features.Items)),
		zap.String("log_level", s.config.LogLevel),
	)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	logging.Info("Server listening for connections",
		zap.String("addr", listener.Addr().String()),
	)

	if s.config.Advertise {
		s.advertise(listener.Addr())
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(ctx)
	case err := <-errChan:
		return err
	}
}

// Serve accepts connections on listener until Shutdown is called
func (s *Server) Serve(listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// advertise registers the listening port over mDNS. Failure is logged and
// the server keeps running without it.
func (s *Server) advertise(addr net.Addr) {
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return
	}

	adv, err := discovery.Advertise(s.config.InstanceName, tcpAddr.Port, map[string]string{
		"path":    "/",
		"version": version.Version,
	})
	if err != nil {
		logging.Warn("mDNS advertisement failed", zap.Error(err))
		return
	}
	s.advertiser = adv
	logging.Info("Advertising over mDNS",
		zap.String("instance", s.config.InstanceName),
		zap.String("service", discovery.ServiceType),
		zap.Int("port", tcpAddr.Port),
	)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.advertiser.Shutdown()

	// Hijacked websocket connections are not tracked by http.Server
	s.mu.Lock()
	s.shuttingDown = true
	srv := s.httpServer
	for conn, addr := range s.activeConns {
		logging.Info("Closing active connection", zap.String("remote_addr", addr))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
	}
	s.mu.Unlock()

	var shutdownErr error
	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("http shutdown: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All connections closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()

	return shutdownErr
}

// GetActiveConnections returns the number of live carousel connections
func (s *Server) GetActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

// track registers a live connection and adds it to the shutdown WaitGroup.
// It returns false once Shutdown has started; the caller must then close conn.
func (s *Server) track(conn *websocket.Conn, remoteAddr string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shuttingDown {
		return false
	}
	s.wg.Add(1)
	s.activeConns[conn] = remoteAddr
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.activeConns, conn)
	s.mu.Unlock()
}
