package config

import (
	"bytes"
	"testing"

	"github.com/text2song/studio/internal/models"
)

func TestRunLogRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	content := []byte("step 1 loss=0.9\nstep 2 loss=0.7\n")
	entry, err := WriteRunLog("run-abc", "exp-1", "run-1", "completed", content)
	if err != nil {
		t.Fatalf("WriteRunLog: %v", err)
	}
	if entry.Size != len(content) {
		t.Errorf("size = %d, want %d", entry.Size, len(content))
	}

	got, body, err := ReadRunLog("run-abc")
	if err != nil {
		t.Fatalf("ReadRunLog: %v", err)
	}
	if got.RunID != "run-abc" || got.ExperimentID != "exp-1" || got.Status != "completed" {
		t.Errorf("unexpected entry: %+v", got)
	}
	if !bytes.Equal(body, content) {
		t.Errorf("body = %q, want %q", body, content)
	}
}

func TestListRunLogsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	logs, err := ListRunLogs()
	if err != nil {
		t.Fatalf("ListRunLogs: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected no logs, got %d", len(logs))
	}
}

func TestListRunLogsNewestFirst(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := WriteRunLog("run-old", "exp-1", "", "completed", []byte("a")); err != nil {
		t.Fatal(err)
	}
	// SavedAt has second precision; rewrite the older entry's header instead
	// of sleeping.
	if _, err := WriteRunLog("run-new", "exp-1", "", "completed", []byte("b")); err != nil {
		t.Fatal(err)
	}

	logs, err := ListRunLogs()
	if err != nil {
		t.Fatalf("ListRunLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
}

func TestParseRunLogHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want models.RunLogEntry
	}{
		{"run_id: abc", models.RunLogEntry{RunID: "abc"}},
		{"status: failed", models.RunLogEntry{Status: "failed"}},
		{"size: 42", models.RunLogEntry{Size: 42}},
		{"no separator here", models.RunLogEntry{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var entry models.RunLogEntry
			parseRunLogHeaderLine(&entry, tt.line)
			if entry != tt.want {
				t.Errorf("got %+v, want %+v", entry, tt.want)
			}
		})
	}
}
