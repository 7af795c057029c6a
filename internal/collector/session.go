// Package collector implements the CarFlow fan-out/fan-in client.
package collector

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/core/wire"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
)

// SessionState is the observable lifecycle state of a feed session.
type SessionState int32

// Session lifecycle states. A session moves Connecting -> Established
// -> Receiving -> Closed, or to Failed from any earlier state.
const (
	StateConnecting SessionState = iota
	StateEstablished
	StateReceiving
	StateClosed
	StateFailed
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateEstablished:
		return "established"
	case StateReceiving:
		return "receiving"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session owns one outbound TCP connection to one feed server.
//
// The feed protocol has no length prefix or terminator: the server
// writes its full payload and closes. The session therefore buffers
// every inbound chunk until EOF and only then decodes. Run resolves to
// exactly one Outcome; whichever event arrives first (close, transport
// failure, deadline) claims it and the other paths become unreachable.
type Session struct {
	id      string
	addr    domain.FeedAddress
	timeout time.Duration
	state   atomic.Int32
	log     logger.Logger
}

// NewSession creates a session for one feed address. A timeout of zero
// lets the session wait indefinitely for the peer to close.
func NewSession(addr domain.FeedAddress, timeout time.Duration, log logger.Logger) (*Session, error) {
	id, err := domain.GenerateSessionID()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Default()
	}

	return &Session{
		id:      id,
		addr:    addr,
		timeout: timeout,
		log:     log.With("session_id", id, "feed", addr.String()),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Address returns the feed address this session targets.
func (s *Session) Address() domain.FeedAddress {
	return s.addr
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	return SessionState(s.state.Load())
}

// Run dials the feed, reads until the peer closes, decodes the payload
// and returns the session's terminal outcome. It never returns more
// than one outcome and never panics on transport errors; every failure
// is folded into a Failure outcome.
func (s *Session) Run(ctx context.Context) domain.Outcome {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.state.Store(int32(StateConnecting))
	s.log.Debug("session connecting")

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", s.addr.Addr())
	if err != nil {
		return s.fail(classifyTransportError(err))
	}
	defer conn.Close()

	s.state.Store(int32(StateEstablished))

	// The connection deadline mirrors the context deadline so a hung
	// peer cannot stall the read past the session timeout.
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetReadDeadline(deadline); err != nil {
			return s.fail(domain.ErrTransport.WithCause(err))
		}
	}

	s.state.Store(int32(StateReceiving))

	// EOF is the protocol's completion signal; the buffer accumulated
	// before a transport failure is discarded.
	payload, err := io.ReadAll(conn)
	if err != nil {
		return s.fail(classifyTransportError(err))
	}

	s.log.Debug("payload received",
		"bytes", len(payload),
		"fingerprint", murmur3.Sum64(payload))

	records, err := wire.Decode(payload)
	if err != nil {
		return s.fail(err)
	}

	s.state.Store(int32(StateClosed))
	s.log.Debug("session closed", "records", len(records))
	return domain.SuccessOutcome(s.addr, s.id, records)
}

// fail marks the session failed and builds its failure outcome.
func (s *Session) fail(err error) domain.Outcome {
	s.state.Store(int32(StateFailed))
	s.log.Debug("session failed", "error", err)
	return domain.FailureOutcome(s.addr, s.id, err)
}

// classifyTransportError maps a dial or read error to the domain error
// kind: deadline expiry becomes CF-NET-5040, everything else CF-NET-5020.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return domain.ErrSessionTimeout.WithCause(err)
	}
	return domain.ErrTransport.WithCause(err)
}
