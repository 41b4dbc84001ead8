package api

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SSEEventType names the events on the run-log stream.
type SSEEventType string

const (
	SSELog       SSEEventType = "log"
	SSEHeartbeat SSEEventType = "heartbeat"
	SSEDone      SSEEventType = "done"
)

// LogEvent is a decoded event from the run-log stream. Exactly one of the
// payload fields is meaningful, keyed by Type: Chunk for log events, ExitCode
// and FinalSize for done.
type LogEvent struct {
	Type      SSEEventType
	Chunk     []byte
	ExitCode  *int
	FinalSize int
}

// ParseLogEvent decodes one SSE data payload. Malformed payloads and unknown
// event types return nil so the stream survives a bad event.
func ParseLogEvent(eventType, data string) *LogEvent {
	switch SSEEventType(eventType) {
	case SSELog:
		var payload struct {
			Chunk string `json:"chunk"`
		}
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			return nil
		}
		raw, err := base64.StdEncoding.DecodeString(payload.Chunk)
		if err != nil {
			return nil
		}
		return &LogEvent{Type: SSELog, Chunk: raw}
	case SSEHeartbeat:
		return &LogEvent{Type: SSEHeartbeat}
	case SSEDone:
		var payload struct {
			ExitCode  *int `json:"exit_code"`
			FinalSize int  `json:"final_size"`
		}
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			return nil
		}
		return &LogEvent{Type: SSEDone, ExitCode: payload.ExitCode, FinalSize: payload.FinalSize}
	default:
		return nil
	}
}

// StreamRunLogs opens the SSE log stream for a run. Events arrive on the
// returned channel until a done event, a transport error, or ctx
// cancellation; both channels are closed when the stream ends. The error
// channel delivers at most one error. There is no automatic reconnect.
func (c *Client) StreamRunLogs(ctx context.Context, runID string) (<-chan LogEvent, <-chan error) {
	events := make(chan LogEvent)
	errs := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errs)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/runs/"+runID+"/logs/stream", nil)
		if err != nil {
			errs <- fmt.Errorf("failed to create stream request: %w", err)
			return
		}
		req.Header.Set("Accept", "text/event-stream")

		// The shared client enforces a request timeout, which would kill a
		// long-lived stream. Streams get their own client and rely on ctx.
		streamClient := &http.Client{}
		resp, err := streamClient.Do(req)
		if err != nil {
			errs <- fmt.Errorf("stream request failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(resp.Body)
			errs <- parseAPIError(resp.StatusCode, data)
			return
		}

		var eventType, data string
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				eventType = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "":
				// Blank line terminates one event.
				if eventType == "" && data == "" {
					continue
				}
				event := ParseLogEvent(eventType, data)
				eventType, data = "", ""
				if event == nil {
					continue
				}
				select {
				case events <- *event:
				case <-ctx.Done():
					return
				}
				if event.Type == SSEDone {
					return
				}
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			errs <- fmt.Errorf("stream read failed: %w", err)
		}
	}()

	return events, errs
}
