package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

// ServerOptions configures the HTTP server. Zero values get defaults.
type ServerOptions struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Logger            *logger.Logger
}

type Server struct {
	http   *http.Server
	logger *logger.Logger
	opts   ServerOptions
}

func NewServer(handler http.Handler, opts ServerOptions) *Server {
	if opts.Addr == "" {
		opts.Addr = "0.0.0.0:5000"
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 5 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 30 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	return &Server{
		logger: opts.Logger,
		opts:   opts,
		http: &http.Server{
			Addr:              opts.Addr,
			Handler:           handler,
			ReadTimeout:       opts.ReadTimeout,
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
			WriteTimeout:      opts.WriteTimeout,
			IdleTimeout:       opts.IdleTimeout,
			ErrorLog:          opts.Logger.Logger,
		},
	}
}

// Start binds the listen address and serves in the background. Bind errors
// are returned; errors after that are sent on the returned channel.
func (s *Server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return nil, err
	}
	return s.Serve(ln), nil
}

// Serve serves on an existing listener in the background.
func (s *Server) Serve(ln net.Listener) <-chan error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", ln.Addr())
		if err := s.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()
	return errc
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
