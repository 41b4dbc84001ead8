// Package logstream manages live training-log sessions: history fetch,
// SSE streaming, and terminal-emulated rendering for one run at a time.
package logstream

import (
	"context"
	"sync"

	"github.com/hinshun/vt10x"

	"github.com/text2song/studio/internal/api"
)

// State is the lifecycle of a log session.
type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StateOpen       State = "open"
	StateError      State = "error"
	StateClosed     State = "closed"
)

// Session owns the log data for one training run. Chunks append in receipt
// order to both a raw buffer and a vt10x terminal; the terminal interprets
// control sequences (progress bars, carriage returns) the way a real
// terminal would. A session is built once per run and discarded on run
// change; retry means a new session.
type Session struct {
	mu sync.Mutex

	runID  string
	live   bool
	client *api.Client

	vt   vt10x.Terminal
	rows int
	cols int
	buf  []byte

	state    State
	err      error
	exitCode *int
	cancel   context.CancelFunc

	// notify fires outside the lock after every visible change.
	notify func()
}

// NewSession creates an idle session for a run. live controls whether Start
// opens the SSE stream after the history fetch. notify may be nil.
func NewSession(client *api.Client, runID string, live bool, cols, rows int, notify func()) *Session {
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	if notify == nil {
		notify = func() {}
	}
	return &Session{
		runID:  runID,
		live:   live,
		client: client,
		vt:     vt10x.New(vt10x.WithSize(cols, rows)),
		rows:   rows,
		cols:   cols,
		state:  StateIdle,
		notify: notify,
	}
}

// RunID returns the run this session belongs to.
func (s *Session) RunID() string {
	return s.runID
}

// Start fetches the log history and, for live runs, opens the SSE stream.
// History lands before any streamed chunk. Calling Start on a session that
// already ran closes the prior stream first.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.state = StateConnecting
	s.mu.Unlock()
	s.notify()

	go s.run(ctx)
}

func (s *Session) run(ctx context.Context) {
	history, err := s.client.GetRunLogs(ctx, s.runID)
	if err != nil {
		s.fail(err)
		return
	}
	raw, err := history.Bytes()
	if err != nil {
		s.fail(err)
		return
	}
	if len(raw) > 0 {
		s.append(raw)
	}

	if !s.live {
		s.close(nil)
		return
	}

	s.setState(StateOpen)

	events, errs := s.client.StreamRunLogs(ctx, s.runID)
	for event := range events {
		switch event.Type {
		case api.SSELog:
			s.append(event.Chunk)
		case api.SSEDone:
			s.close(event.ExitCode)
			return
		case api.SSEHeartbeat:
			// Keepalive only.
		}
	}
	if err := <-errs; err != nil {
		s.fail(err)
		return
	}
	s.close(nil)
}

// append writes one chunk to the buffer and the terminal, in order.
func (s *Session) append(chunk []byte) {
	s.mu.Lock()
	s.buf = append(s.buf, chunk...)
	s.vt.Write(chunk)
	s.mu.Unlock()
	s.notify()
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.notify()
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	if s.state != StateClosed {
		s.state = StateError
		s.err = err
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Session) close(exitCode *int) {
	s.mu.Lock()
	s.state = StateClosed
	s.exitCode = exitCode
	s.mu.Unlock()
	s.notify()
}

// Close tears the session down. The buffer stays readable.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.state == StateConnecting || s.state == StateOpen {
		s.state = StateClosed
	}
	s.mu.Unlock()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error that moved the session to StateError, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ExitCode returns the run's exit code once a done event arrived.
func (s *Session) ExitCode() *int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitCode
}

// Bytes returns a copy of the raw log buffer.
func (s *Session) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Size returns the raw buffer length.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Resize changes the emulated terminal dimensions.
func (s *Session) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.mu.Lock()
	s.cols, s.rows = cols, rows
	s.vt.Resize(cols, rows)
	s.mu.Unlock()
}

// Render returns the current screen as SGR-colored text.
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return renderScreen(s.vt, s.rows, s.cols)
}
