package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

type config interface {
	Addr() string
}

type Server struct {
	server *http.Server
	lis    net.Listener
}

// NewServer binds the listener right away so a bad address fails at startup.
func NewServer(config config) (*Server, error) {
	lis, err := net.Listen("tcp", config.Addr())
	if err != nil {
		return nil, errors.Wrap(err, "cannot create metrics listener")
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.Handler())
	return &Server{
		server: &http.Server{Handler: mux, ReadHeaderTimeout: shutdownTimeout},
		lis:    lis,
	}, nil
}

func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

// Serve blocks until ctx is done, then shuts the server down.
func (s *Server) Serve(ctx context.Context) error {
	logger.Info("metrics server listening", zap.Any("addr", s.lis.Addr()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.lis)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serve metrics")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown metrics server")
	}
	logger.Info("metrics server stopped")
	return nil
}
