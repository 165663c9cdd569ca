package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the engine's prometheus metrics to the host's scraper. It
// responds to only the `/metrics` endpoint.
type Server struct {
	server   *http.Server
	listener net.Listener
	log      zerolog.Logger
}

// NewServer creates a metrics server bound to the given port. Port 0 binds an
// ephemeral port; Addr reports the bound address either way. The server does
// not accept connections until Ready is called.
func NewServer(log zerolog.Logger, port uint) (*Server, error) {
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(int(port)))
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	endpoint := "/metrics"
	mux.Handle(endpoint, promhttp.Handler())
	log.Info().Str("address", listener.Addr().String()).Str("endpoint", endpoint).Msg("metrics server started")

	m := &Server{
		server:   &http.Server{Handler: mux},
		listener: listener,
		log:      log,
	}

	return m, nil
}

// Addr returns the address the server is bound to.
func (m *Server) Addr() string {
	return m.listener.Addr().String()
}

// Ready starts serving and returns a channel that closes when the server is
// accepting connections.
func (m *Server) Ready() <-chan struct{} {
	ready := make(chan struct{})
	go func() {
		if err := m.server.Serve(m.listener); err != nil {
			// http.ErrServerClosed is returned when Close or Shutdown is called
			// we don't consider this an error, so print this with debug level instead
			if errors.Is(err, http.ErrServerClosed) {
				m.log.Debug().Err(err).Msg("metrics server shutdown")
			} else {
				m.log.Err(err).Msg("error shutting down metrics server")
			}
		}
	}()
	go func() {
		// the listener is already bound; connections queue until Serve picks
		// them up
		close(ready)
	}()
	return ready
}

// Done returns a channel that will close when shutdown is complete.
func (m *Server) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		_ = m.server.Shutdown(ctx)
		cancel()
		close(done)
	}()
	return done
}
