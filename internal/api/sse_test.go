package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogEvent(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		data      string
		want      *LogEvent
	}{
		{
			name:      "log chunk",
			eventType: "log",
			data:      `{"chunk": "dGVzdA=="}`,
			want:      &LogEvent{Type: SSELog, Chunk: []byte("test")},
		},
		{
			name:      "heartbeat",
			eventType: "heartbeat",
			data:      `{}`,
			want:      &LogEvent{Type: SSEHeartbeat},
		},
		{
			name:      "done with exit code",
			eventType: "done",
			data:      `{"exit_code": 0, "final_size": 2048}`,
			want:      &LogEvent{Type: SSEDone, ExitCode: intPtr(0), FinalSize: 2048},
		},
		{
			name:      "malformed json dropped",
			eventType: "log",
			data:      `{"chunk": `,
			want:      nil,
		},
		{
			name:      "invalid base64 dropped",
			eventType: "log",
			data:      `{"chunk": "not base64!!!"}`,
			want:      nil,
		},
		{
			name:      "unknown event type dropped",
			eventType: "progress",
			data:      `{"pct": 50}`,
			want:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLogEvent(tt.eventType, tt.data)
			assert.Equal(t, tt.want, got)
		})
	}
}

func intPtr(v int) *int { return &v }

func TestStreamRunLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/runs/run-1/logs/stream", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("event: log\ndata: {\"chunk\": \"QQ==\"}\n\n"))
		w.Write([]byte("event: heartbeat\ndata: {}\n\n"))
		w.Write([]byte("event: log\ndata: not json\n\n"))
		w.Write([]byte("event: log\ndata: {\"chunk\": \"Qg==\"}\n\n"))
		w.Write([]byte("event: done\ndata: {\"exit_code\": 0, \"final_size\": 2}\n\n"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	events, errs := client.StreamRunLogs(context.Background(), "run-1")

	var got []LogEvent
	for ev := range events {
		got = append(got, ev)
	}
	require.NoError(t, <-errs)

	// The malformed event is dropped, everything else arrives in order.
	require.Len(t, got, 4)
	assert.Equal(t, []byte("A"), got[0].Chunk)
	assert.Equal(t, SSEHeartbeat, got[1].Type)
	assert.Equal(t, []byte("B"), got[2].Chunk)
	assert.Equal(t, SSEDone, got[3].Type)
	assert.Equal(t, 2, got[3].FinalSize)
}

func TestStreamRunLogsCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("event: log\ndata: {\"chunk\": \"QQ==\"}\n\n"))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(Config{BaseURL: server.URL})
	events, errs := client.StreamRunLogs(ctx, "run-1")

	ev, ok := <-events
	require.True(t, ok)
	assert.Equal(t, []byte("A"), ev.Chunk)

	cancel()
	for range events {
	}
	// Cancellation is not reported as a stream error.
	select {
	case err := <-errs:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stream did not shut down after cancel")
	}
}

func TestGetRunLogsDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/runs/run-1/logs", r.URL.Path)
		w.Write([]byte(`{"run_id": "run-1", "data": "aGVsbG8=", "size": 5, "updated_at": "2026-01-02T03:04:05Z"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	logs, err := client.GetRunLogs(context.Background(), "run-1")
	require.NoError(t, err)
	raw, err := logs.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), raw)
	assert.Equal(t, 5, logs.Size)
}
