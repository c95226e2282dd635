package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/discovery"
	"github.com/muurk/weighguide/internal/livereload"
	"github.com/muurk/weighguide/internal/logging"
	"github.com/muurk/weighguide/internal/metrics"
	"github.com/muurk/weighguide/internal/page"
	"github.com/muurk/weighguide/internal/version"
	"go.uber.org/zap"
)

// Config holds the server configuration.
type Config struct {
	Host         string
	Port         int
	AssetsDir    string // Directory served under /pitcher/ (empty = no screenshots)
	ContentPath  string // External content file (empty = embedded content)
	Watch        bool   // Reload ContentPath on change and tell open pages
	Advertise    bool   // Publish the page over mDNS
	InstanceName string // mDNS instance name
	CertPath     string // Serve HTTPS when both CertPath and KeyPath are set
	KeyPath      string
}

// Server serves the weighing reference page.
type Server struct {
	config   *Config
	holder   *content.Holder
	renderer *page.Renderer
	metrics  *metrics.Metrics
	hub      *livereload.Hub
	handler  http.Handler

	tlsConfig  *tls.Config
	httpServer *http.Server
	listener   net.Listener
	publisher  *discovery.Publisher

	cancel       context.CancelFunc
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// New loads content and builds the router. Nothing listens until Start.
func New(config *Config) (*Server, error) {
	if config.Watch && config.ContentPath == "" {
		return nil, fmt.Errorf("--watch needs an external content file (--content)")
	}

	store, err := content.Open(config.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	renderer, err := page.New()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:   config,
		holder:   content.NewHolder(store),
		renderer: renderer,
		metrics:  metrics.New(),
	}

	if config.CertPath != "" || config.KeyPath != "" {
		if config.CertPath == "" || config.KeyPath == "" {
			return nil, fmt.Errorf("both a certificate and a key are needed for HTTPS")
		}
		s.tlsConfig, err = NewTLSConfig(config.CertPath, config.KeyPath)
		if err != nil {
			return nil, err
		}
	}

	if config.Watch {
		s.hub = livereload.NewHub(livereload.WithClientGauge(func(n int) {
			s.metrics.LiveClients.Set(float64(n))
		}))
	}

	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Content returns the holder of the content currently served.
func (s *Server) Content() *content.Holder {
	return s.holder
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	if s.tlsConfig != nil {
		listener = tls.NewListener(listener, s.tlsConfig)
	}
	s.listener = listener

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(logging.GetLogger()),
	}

	logging.Info("Starting weighguide server",
		zap.String("addr", listener.Addr().String()),
		zap.String("version", version.Full()),
		zap.String("content", contentSource(s.config.ContentPath)),
		zap.String("assets_dir", s.config.AssetsDir),
		zap.Bool("watch", s.config.Watch),
		zap.Any("tls_info", GetTLSInfo(s.tlsConfig)),
	)

	if s.config.Watch {
		s.startWatcher(ctx)
	}

	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		pub, err := discovery.Publish(s.announcement(port))
		if err != nil {
			// The page is still reachable by address.
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			s.publisher = pub
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		_ = s.Shutdown(context.Background())
		return fmt.Errorf("server stopped: %w", err)
	}
}

// announcement is what --advertise publishes for a listener on port.
func (s *Server) announcement(port int) discovery.Announcement {
	return discovery.Announcement{
		Instance: s.config.InstanceName,
		Port:     port,
		Version:  version.Version,
		TLS:      s.tlsConfig != nil,
	}
}

func (s *Server) startWatcher(ctx context.Context) {
	w := livereload.NewWatcher(s.config.ContentPath, s.holder)
	w.OnReload = func(err error) {
		s.metrics.ObserveReload(err)
		if err == nil {
			s.hub.Broadcast(livereload.ReloadMessage)
		}
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := w.Run(ctx); err != nil {
			logging.Error("Content watcher stopped", zap.Error(err))
		}
	}()
}

// Shutdown gracefully shuts down the server. Safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		logging.Info("Shutting down server...")

		s.publisher.Shutdown()

		if s.cancel != nil {
			s.cancel()
		}
		if s.hub != nil {
			s.hub.Close()
		}

		if s.httpServer != nil {
			if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
				logging.Warn("HTTP shutdown incomplete", zap.Error(shutdownErr))
				err = shutdownErr
			}
		}

		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			logging.Info("Server stopped")
		case <-ctx.Done():
			logging.Warn("Shutdown timeout, forcing close")
		}

		logging.Sync()
	})
	return err
}

// Addr returns the listening address once Start has bound it.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func contentSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
