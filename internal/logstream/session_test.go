package logstream

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/text2song/studio/internal/api"
)

// fakeLogServer serves a fixed history plus a scripted SSE stream.
type fakeLogServer struct {
	history      []byte
	chunks       [][]byte
	exitCode     int
	streamOpens  atomic.Int32
	historyCalls atomic.Int32
}

func (f *fakeLogServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /runs/{id}/logs", func(w http.ResponseWriter, r *http.Request) {
		f.historyCalls.Add(1)
		fmt.Fprintf(w, `{"run_id": %q, "data": %q, "size": %d, "updated_at": "2026-01-02T03:04:05Z"}`,
			r.PathValue("id"), base64.StdEncoding.EncodeToString(f.history), len(f.history))
	})
	mux.HandleFunc("GET /runs/{id}/logs/stream", func(w http.ResponseWriter, r *http.Request) {
		f.streamOpens.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range f.chunks {
			fmt.Fprintf(w, "event: log\ndata: {\"chunk\": %q}\n\n", base64.StdEncoding.EncodeToString(chunk))
		}
		total := len(f.history)
		for _, c := range f.chunks {
			total += len(c)
		}
		fmt.Fprintf(w, "event: done\ndata: {\"exit_code\": %d, \"final_size\": %d}\n\n", f.exitCode, total)
	})
	return mux
}

func waitForState(t *testing.T, s *Session, want State) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("session never reached state %q, stuck at %q", want, s.State())
}

func TestSessionAppendsChunksInOrder(t *testing.T) {
	fake := &fakeLogServer{
		chunks:   [][]byte{[]byte("A"), []byte("B"), []byte("C")},
		exitCode: 0,
	}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL})
	session := NewSession(client, "run-1", true, 80, 24, nil)
	session.Start(context.Background())
	waitForState(t, session, StateClosed)

	assert.Equal(t, []byte("ABC"), session.Bytes())
	require.NotNil(t, session.ExitCode())
	assert.Equal(t, 0, *session.ExitCode())
}

func TestSessionHistoryBeforeStream(t *testing.T) {
	fake := &fakeLogServer{
		history:  []byte("old output\n"),
		chunks:   [][]byte{[]byte("new output\n")},
		exitCode: 0,
	}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL})
	session := NewSession(client, "run-1", true, 80, 24, nil)
	session.Start(context.Background())
	waitForState(t, session, StateClosed)

	assert.Equal(t, []byte("old output\nnew output\n"), session.Bytes())
	assert.Equal(t, int32(1), fake.historyCalls.Load())
	assert.Equal(t, int32(1), fake.streamOpens.Load())
}

func TestSessionFinishedRunSkipsStream(t *testing.T) {
	fake := &fakeLogServer{history: []byte("complete log")}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL})
	session := NewSession(client, "run-1", false, 80, 24, nil)
	session.Start(context.Background())
	waitForState(t, session, StateClosed)

	assert.Equal(t, []byte("complete log"), session.Bytes())
	assert.Equal(t, int32(1), fake.historyCalls.Load())
	assert.Equal(t, int32(0), fake.streamOpens.Load())
	assert.Nil(t, session.ExitCode())
}

func TestSessionHistoryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Run not found"}`))
	}))
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL})
	session := NewSession(client, "missing", true, 80, 24, nil)
	session.Start(context.Background())
	waitForState(t, session, StateError)

	require.Error(t, session.Err())
	assert.Contains(t, session.Err().Error(), "Run not found")
}

func TestSessionNotifyFires(t *testing.T) {
	fake := &fakeLogServer{chunks: [][]byte{[]byte("x")}, exitCode: 0}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	var notifies atomic.Int32
	client := api.NewClient(api.Config{BaseURL: server.URL})
	session := NewSession(client, "run-1", true, 80, 24, func() { notifies.Add(1) })
	session.Start(context.Background())
	waitForState(t, session, StateClosed)

	// At least connecting, open, chunk, and closed transitions.
	assert.GreaterOrEqual(t, notifies.Load(), int32(4))
}

func TestSessionRenderShowsOutput(t *testing.T) {
	fake := &fakeLogServer{history: []byte("loss=0.42")}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL})
	session := NewSession(client, "run-1", false, 40, 5, nil)
	session.Start(context.Background())
	waitForState(t, session, StateClosed)

	assert.Contains(t, session.Render(), "loss=0.42")
}
