package rpc

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
)

// Server serves a Context over TCP with line framing: one frame per
// line in, one reply frame per line out.
type Server struct {
	rctx *Context
	log  *slog.Logger

	listener net.Listener

	conns   map[int64]net.Conn
	connsMu sync.Mutex
	connSeq atomic.Int64

	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewServer listens on addr. A nil logger falls back to slog.Default.
func NewServer(addr string, rctx *Context, log *slog.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		rctx:     rctx,
		log:      log,
		listener: listener,
		conns:    make(map[int64]net.Conn),
	}, nil
}

// Addr returns the listener's network address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until Close is called or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("rpc listener started", "addr", s.listener.Addr().String())

	go func() {
		<-ctx.Done()
		s.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			s.log.Error("accept error", "error", err)
			continue
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()

	id := s.connSeq.Add(1)
	s.log.Debug("new connection", "conn", id, "remote", conn.RemoteAddr().String())

	s.connsMu.Lock()
	s.conns[id] = conn
	s.connsMu.Unlock()
	defer func() {
		s.connsMu.Lock()
		delete(s.conns, id)
		s.connsMu.Unlock()
		conn.Close()
		s.log.Debug("connection closed", "conn", id)
	}()

	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	w := bufio.NewWriter(conn)
	for sc.Scan() {
		frame := sc.Bytes()
		if len(frame) == 0 {
			continue
		}
		if err := s.rctx.Process(frame, w); err != nil {
			s.log.Error("process error", "conn", id, "error", err)
			return
		}
		if err := w.Flush(); err != nil {
			return
		}
	}
	if err := sc.Err(); err != nil && !s.closed.Load() {
		s.log.Debug("read error", "conn", id, "error", err)
	}
}

// Close stops accepting, closes active connections and waits for
// their goroutines to finish.
func (s *Server) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	err := s.listener.Close()

	s.connsMu.Lock()
	for _, conn := range s.conns {
		conn.Close()
	}
	s.connsMu.Unlock()

	s.wg.Wait()
	s.log.Info("rpc listener stopped")
	return err
}

// ConnCount returns the number of active connections.
func (s *Server) ConnCount() int {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	return len(s.conns)
}
