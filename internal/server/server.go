package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/handler"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer assembles the HTTP server (when handlers carry an HTTP handler)
// and the background workers. At least one of them must be present.
func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if w != nil && w.Len() > 0 {
		servers.workers = w
	}

	if servers.httpServer == nil && servers.workers == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	var ln net.Listener
	if s.httpServer != nil {
		var err error
		if ln, err = net.Listen("tcp", s.httpServer.server.Addr); err != nil {
			return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		serveMu sync.Mutex
		serveErr error
	)

	if s.httpServer != nil {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.httpServer.RunServer(ln); err != nil {
				serveMu.Lock()
				serveErr = fmt.Errorf("HTTP server: %w", err)
				serveMu.Unlock()
				cancel()
			}
		}()
	}

	if s.workers != nil {
		s.logger.Info().Int("workers", s.workers.Len()).Msg("Launching workers")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	<-ctx.Done()

	if s.httpServer != nil {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		s.httpServer.Shutdown(shutdownCtx)
		cancelShutdown()
	}

	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	serveMu.Lock()
	defer serveMu.Unlock()
	return serveErr
}
