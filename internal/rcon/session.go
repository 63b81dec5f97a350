package rcon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/danmuck/rconctl/internal/observability"
	"github.com/danmuck/rconctl/internal/protocol"
)

// Session owns one authenticated RCON connection. The protocol is
// strictly half duplex: one outstanding request at a time, responses
// matched to requests by send order within the connection. All
// operations are serialized on an internal mutex; open independent
// sessions for parallelism.
type Session struct {
	mu      sync.Mutex
	conn    net.Conn
	state   State
	nextID  int32
	cfg     Config
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// Dial connects to addr, authenticates with password, and returns a
// Ready session. The transport is released on every failure path out of
// this function, including authentication failure.
func Dial(ctx context.Context, addr, password string, cfg Config) (*Session, error) {
	cfg = cfg.WithDefaults()
	s := newSession(cfg, addr)

	s.state = StateConnecting
	dialer := net.Dialer{Timeout: cfg.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		s.state = StateBroken
		return nil, fmt.Errorf("rcon: connect %s: %w", addr, err)
	}

	if err := s.attach(conn, password); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSession authenticates over a caller-provided connection and
// returns a Ready session. The conn must not be used outside the
// session afterwards. Useful when the transport is not plain TCP or is
// established elsewhere.
func NewSession(conn net.Conn, password string, cfg Config) (*Session, error) {
	cfg = cfg.WithDefaults()
	s := newSession(cfg, conn.RemoteAddr().String())
	if err := s.attach(conn, password); err != nil {
		return nil, err
	}
	return s, nil
}

func newSession(cfg Config, addr string) *Session {
	s := &Session{
		state:  StateDisconnected,
		nextID: 1,
		cfg:    cfg,
		logger: log.With().
			Str("component", "rcon.session").
			Str("session_id", uuid.NewString()).
			Str("addr", addr).
			Logger(),
	}
	if cfg.CommandsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.CommandsPerSecond), cfg.CommandBurst)
	}
	return s
}

// attach adopts conn and runs the AUTH exchange. On any failure the
// conn is closed and the session left Broken.
func (s *Session) attach(conn net.Conn, password string) error {
	s.conn = conn
	s.state = StateAuthenticating
	if err := s.authenticate(password); err != nil {
		_ = conn.Close()
		return err
	}
	s.state = StateReady
	s.logger.Debug().Msg("session ready")
	return nil
}

// authenticate sends one AUTH packet and validates the response id. The
// password body is never logged.
func (s *Session) authenticate(password string) error {
	id, err := s.send(protocol.TypeAuth, password)
	if err != nil {
		observability.RecordAuth("error")
		return err
	}

	resp, err := s.read()
	if err != nil {
		observability.RecordAuth("error")
		return err
	}
	// Some Source servers echo an empty RESPONSE_VALUE ahead of the
	// auth response; skip it when it carries the request id.
	if resp.Type == protocol.TypeResponseValue && resp.ID == id {
		if resp, err = s.read(); err != nil {
			observability.RecordAuth("error")
			return err
		}
	}

	// The server conventionally signals a bad password with id -1, but
	// any mismatch counts as a failed handshake.
	if resp.ID != id {
		s.state = StateBroken
		observability.RecordAuth("failure")
		s.logger.Warn().Int32("response_id", resp.ID).Msg("authentication rejected")
		return ErrAuthFailed
	}
	observability.RecordAuth("success")
	return nil
}

// Execute sends command and returns the response body. Legal only in
// the Ready state; wrong-state calls fail before any I/O.
func (s *Session) Execute(ctx context.Context, command string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateReady:
	case StateClosed:
		return "", ErrSessionClosed
	case StateBroken:
		return "", ErrSessionBroken
	default:
		return "", ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	start := time.Now()
	id, err := s.send(protocol.TypeExecCommand, command)
	if err != nil {
		return "", err
	}

	if !s.cfg.MultiPacket {
		resp, err := s.read()
		if err != nil {
			return "", err
		}
		if resp.ID != id {
			return "", s.fail(ErrUnexpectedID)
		}
		observability.RecordRoundTrip(time.Since(start))
		if len(resp.Body)+protocol.WrapperSize >= protocol.MaxCommandBytes {
			s.logger.Warn().
				Int("body_bytes", len(resp.Body)).
				Msg("response body at per-packet ceiling; output may be truncated")
		}
		return resp.Body, nil
	}

	// Multi-packet mode: a zero-body probe follows the command. The
	// server answers requests in order, so every RESPONSE_VALUE carrying
	// the command id belongs to the output, and the probe id marks the
	// end of it.
	probeID, err := s.send(protocol.TypeResponseValue, "")
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for {
		resp, err := s.read()
		if err != nil {
			return "", err
		}
		switch resp.ID {
		case id:
			out.WriteString(resp.Body)
		case probeID:
			observability.RecordRoundTrip(time.Since(start))
			return out.String(), nil
		default:
			return "", s.fail(ErrUnexpectedID)
		}
	}
}

// State reports the current lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close releases the transport. Closing an already closed session is a
// no-op; the socket is only closed once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	s.logger.Debug().Msg("session closed")
	return conn.Close()
}

// send frames and writes one request packet, consuming the next id.
func (s *Session) send(typ int32, body string) (int32, error) {
	id := s.nextID
	s.nextID++

	if err := s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
		return 0, s.fail(err)
	}
	if err := protocol.Encode(s.conn, protocol.Packet{ID: id, Type: typ, Body: body}, s.cfg.Limits); err != nil {
		if errors.Is(err, protocol.ErrBodyEncoding) || errors.Is(err, protocol.ErrPacketTooLarge) {
			// Rejected before any bytes hit the wire; the stream is
			// still positioned on a packet boundary.
			return 0, err
		}
		return 0, s.fail(err)
	}
	observability.RecordPacketSent()
	return id, nil
}

// read decodes one response packet under the configured read deadline.
func (s *Session) read() (protocol.Packet, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
		return protocol.Packet{}, s.fail(err)
	}
	pkt, err := protocol.Decode(s.conn, s.cfg.Limits)
	if err != nil {
		return protocol.Packet{}, s.fail(err)
	}
	observability.RecordPacketReceived()
	return pkt, nil
}

// fail moves the session to Broken. The stream position is no longer
// trustworthy; the caller must Close and dial a fresh session.
func (s *Session) fail(err error) error {
	s.state = StateBroken
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		err = fmt.Errorf("%w: %v", ErrTimeout, nerr)
	}
	s.logger.Error().Err(err).Msg("session broken")
	return err
}
