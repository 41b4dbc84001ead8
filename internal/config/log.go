package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/text2song/studio/internal/models"
)

// WriteRunLog saves a training-run log to disk with a small header followed
// by the raw log content.
func WriteRunLog(runID, experimentID, runName, status string, content []byte) (*models.RunLogEntry, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure logs dir: %w", err)
	}

	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}

	entry := &models.RunLogEntry{
		RunID:        runID,
		ExperimentID: experimentID,
		RunName:      runName,
		Status:       status,
		Size:         len(content),
		SavedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	filePath := filepath.Join(logsDir, runID+".log")
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "run_id: %s\n", entry.RunID)
	fmt.Fprintf(w, "experiment_id: %s\n", entry.ExperimentID)
	fmt.Fprintf(w, "run_name: %s\n", entry.RunName)
	fmt.Fprintf(w, "status: %s\n", entry.Status)
	fmt.Fprintf(w, "size: %d\n", entry.Size)
	fmt.Fprintf(w, "saved_at: %s\n", entry.SavedAt)
	fmt.Fprintln(w, "---")
	w.Write(content)

	return entry, w.Flush()
}

// ListRunLogs reads all saved log files and returns their metadata (newest
// first).
func ListRunLogs() ([]*models.RunLogEntry, error) {
	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []*models.RunLogEntry
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		entry, err := parseRunLogHeader(filepath.Join(logsDir, e.Name()))
		if err != nil {
			continue
		}
		logs = append(logs, entry)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].SavedAt > logs[j].SavedAt
	})

	return logs, nil
}

// ReadRunLog reads a saved log and returns metadata + content.
func ReadRunLog(runID string) (*models.RunLogEntry, []byte, error) {
	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(filepath.Join(logsDir, runID+".log"))
	if err != nil {
		return nil, nil, fmt.Errorf("log not found: %w", err)
	}

	entry, body := parseRunLogContent(string(data))
	if entry == nil {
		return nil, nil, fmt.Errorf("invalid log format")
	}
	return entry, []byte(body), nil
}

func parseRunLogHeader(path string) (*models.RunLogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	entry := &models.RunLogEntry{}
	inHeader := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			break
		}
		if inHeader {
			parseRunLogHeaderLine(entry, line)
		}
	}

	if entry.RunID == "" {
		entry.RunID = strings.TrimSuffix(filepath.Base(path), ".log")
	}
	return entry, nil
}

func parseRunLogContent(content string) (*models.RunLogEntry, string) {
	lines := strings.Split(content, "\n")
	entry := &models.RunLogEntry{}
	headerEnd := -1
	inHeader := false

	for i, line := range lines {
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			headerEnd = i
			break
		}
		if inHeader {
			parseRunLogHeaderLine(entry, line)
		}
	}

	if headerEnd < 0 {
		return nil, ""
	}
	return entry, strings.Join(lines[headerEnd+1:], "\n")
}

func parseRunLogHeaderLine(entry *models.RunLogEntry, line string) {
	parts := strings.SplitN(line, ": ", 2)
	if len(parts) != 2 {
		return
	}
	key := strings.TrimSpace(parts[0])
	val := strings.TrimSpace(parts[1])

	switch key {
	case "run_id":
		entry.RunID = val
	case "experiment_id":
		entry.ExperimentID = val
	case "run_name":
		entry.RunName = val
	case "status":
		entry.Status = val
	case "size":
		fmt.Sscanf(val, "%d", &entry.Size)
	case "saved_at":
		entry.SavedAt = val
	}
}
