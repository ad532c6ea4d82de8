// Package server implements the demo hello server: a TCP listener that
// hands every accepted connection to the worker pool as a single job.
package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"hellopool/internal/config"
	"hellopool/pkg/pool"
	"hellopool/pkg/types"
)

// slowPageDelay is the artificial delay of the /sleep page
const slowPageDelay = 5 * time.Second

// Server accepts connections and submits exactly one pool job per
// connection. It never waits for a connection to be handled before
// accepting the next one.
type Server struct {
	addr      string
	docRoot   string
	maxConns  int
	slowDelay time.Duration

	pool     *pool.Pool
	clock    types.Clock
	logger   *logrus.Entry
	listener net.Listener
}

// New creates a server from config. The pool must outlive the server;
// the caller closes it after Serve returns.
func New(cfg *config.Config, p *pool.Pool, logger *logrus.Entry) *Server {
	return &Server{
		addr:      cfg.ListenAddr,
		docRoot:   cfg.DocRoot,
		maxConns:  cfg.MaxConnections,
		slowDelay: slowPageDelay,
		pool:      p,
		clock:     types.NewRealClock(),
		logger:    logger,
	}
}

// Listen binds the TCP listener. Kept separate from Serve so callers
// can learn the bound address before serving.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound listener address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve runs the accept loop until the listener is closed or the
// connection budget is spent. A submission failure is reported and the
// connection dropped; it is never retried.
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	accepted := 0
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.WithError(err).Error("connection failed")
			continue
		}

		c := conn
		if err := s.pool.SubmitFunc(func() { s.handleConn(c) }); err != nil {
			s.logger.WithError(err).Error("failed to dispatch connection to pool")
			_ = conn.Close()
			continue
		}

		accepted++
		if s.maxConns > 0 && accepted >= s.maxConns {
			s.logger.WithField("connections", accepted).Info("connection budget spent, closing listener")
			return s.Close()
		}
	}
}

// Close shuts the listener down, ending the accept loop. Connections
// already dispatched to the pool keep draining.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}
