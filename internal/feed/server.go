// Package feed implements the CarFlow feed server.
package feed

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/yndnr/carflow-go/internal/core/wire"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

// writeTimeout bounds how long one connection may take to drain the
// payload before the server gives up on it.
const writeTimeout = 30 * time.Second

// Server is the feed listener. Per accepted connection it writes the
// full encoded sighting list and closes; it performs no reads.
type Server struct {
	addr    string
	store   *Store
	log     logger.Logger
	metrics *metric.Registry

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup
}

// NewServer creates a feed server for the given listen address.
func NewServer(addr string, store *Store, log logger.Logger, metrics *metric.Registry) *Server {
	if log == nil {
		log = logger.Default()
	}
	if metrics == nil {
		metrics = metric.NewNopRegistry()
	}
	return &Server{
		addr:    addr,
		store:   store,
		log:     log,
		metrics: metrics,
	}
}

// Start begins listening and serving in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.log.Info("feed server listening", "addr", ln.Addr().String())

	s.wg.Add(1)
	go s.acceptLoop(ln)
	return nil
}

// Addr returns the bound listen address, usable after Start. Useful
// when the configured port is 0.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Close stops the listener and waits for in-flight connections.
func (s *Server) Close() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	var err error
	if ln != nil {
		err = ln.Close()
	}
	s.wg.Wait()
	s.log.Info("feed server stopped")
	return err
}

func (s *Server) acceptLoop(ln net.Listener) {
	defer s.wg.Done()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				s.log.Error("accept failed", "error", err)
			}
			return
		}

		s.metrics.FeedConnections.Inc()
		s.wg.Add(1)
		go s.handle(conn)
	}
}

// handle writes the current sighting list and closes the connection.
// Closing is the protocol's end-of-payload signal.
func (s *Server) handle(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	payload := wire.Encode(s.store.Snapshot())

	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		s.log.Error("set write deadline failed", "error", err)
		return
	}
	if _, err := conn.Write(payload); err != nil {
		s.log.Warn("payload write failed",
			"peer", conn.RemoteAddr().String(),
			"error", err)
		return
	}

	s.log.Debug("payload served",
		"peer", conn.RemoteAddr().String(),
		"bytes", len(payload))
}
