// Package server wires the router into a configured HTTP server and
// manages its lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pagemint/pagemint-go/internal/application/container"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/presentation/http/routes"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// Server runs the HTTP surface for one application container.
type Server struct {
	httpServer *http.Server
	logger     *logging.ChanneledLogger
}

// New builds the router from the container and binds it to a server
// configured with the environment-backed timeouts.
func New(port string, appContainer *container.Container) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           routes.SetupRoutes(appContainer),
			ReadTimeout:       config.ServerReadTimeout,
			ReadHeaderTimeout: config.ServerReadTimeout,
			WriteTimeout:      config.ServerWriteTimeout,
			IdleTimeout:       config.ServerIdleTimeout,
		},
		logger: appContainer.Logger,
	}
}

// Addr returns the listen address the server binds to.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens for HTTP requests until Stop is called.
func (s *Server) Start() error {
	s.logger.System().Info("HTTP server listening",
		"address", s.httpServer.Addr,
		"readTimeout", config.ServerReadTimeout.String(),
		"writeTimeout", config.ServerWriteTimeout.String(),
		"idleTimeout", config.ServerIdleTimeout.String())

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Shutdown().Info("Shutting down HTTP server", "address", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
