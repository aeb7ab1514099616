// Package ops serves the operational HTTP endpoints next to the gRPC
// server: a status probe, Prometheus metrics, a read-only equipment view and
// a websocket feed of reservation events.
package ops

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/macreserve/internal/events"
	"github.com/dmitrijs2005/macreserve/internal/logging"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	_defaultIdleTimeout    = time.Minute
	_defaultReadTimeout    = 5 * time.Second
	_defaultWriteTimeout   = 10 * time.Second
	_defaultShutdownPeriod = 10 * time.Second
)

// EquipmentLister is the read side of the reservation system the ops
// endpoints need.
type EquipmentLister interface {
	Equipment() []models.Equipment
}

// EventSource hands out subscriptions to the reservation event feed.
type EventSource interface {
	Subscribe(buffer int) (<-chan events.Event, func())
}

type Server struct {
	address   string
	equipment EquipmentLister
	feed      EventSource
	logger    logging.Logger
}

func NewServer(address string, equipment EquipmentLister, feed EventSource, logger logging.Logger) *Server {
	return &Server{
		address:   address,
		equipment: equipment,
		feed:      feed,
		logger:    logger.With("module", "ops_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve handles requests on listen until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(s.routes(), "ops"),
		IdleTimeout:  _defaultIdleTimeout,
		ReadTimeout:  _defaultReadTimeout,
		WriteTimeout: _defaultWriteTimeout,
		// event streams end with the server context
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	shutdownErrorChan := make(chan error, 1)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping ops server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), _defaultShutdownPeriod)
		defer cancel()

		shutdownErrorChan <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting ops server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-shutdownErrorChan
}
