package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone = iota
	confirmDeleteAdapter
	confirmDeleteDataset
	confirmCancelJob
	confirmQuit
)

func renderStatusBar(m *Model, width int) string {
	switch m.confirmMode {
	case confirmDeleteAdapter:
		return renderConfirmBar("Delete adapter \""+m.confirmTarget+"\"? (y/n)", width)
	case confirmDeleteDataset:
		return renderConfirmBar("Delete dataset \""+m.confirmTarget+"\"? (y/n)", width)
	case confirmCancelJob:
		return renderConfirmBar("Cancel running generation job? (y/n)", width)
	case confirmQuit:
		return renderConfirmBar("Generation in progress. Quit? (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	if m.savedNote != "" {
		return renderSavedBar(m.savedNote, width)
	}

	hints := getKeyHints(m)
	left := " " + hints

	right := hintStyle.Render(m.client.BaseURL()) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay == overlayRunCompare {
		return keyHint("Esc", "close")
	}
	if m.activeOverlay != overlayNone {
		return keyHint("Ctrl+s", "save") + "  " + keyHint("Esc", "cancel")
	}

	base := keyHint("Ctrl+q", "quit") + "  " + keyHint("Ctrl+h", "help") + "  " + keyHint("Tab", "switch")

	if m.focusedPanel == 0 {
		switch m.leftTab {
		case tabPrompts:
			return base + "  " + keyHint("a", "new") + "  " + keyHint("Enter", "generate") + "  " +
				keyHint("g", "edit") + "  " + keyHint("f", "favorite")
		case tabExperiments:
			return base + "  " + keyHint("a", "new") + "  " + keyHint("Enter", "attach run") + "  " +
				keyHint("c", "mark") + "  " + keyHint("C", "compare")
		case tabAdapters:
			return base + "  " + keyHint("a", "new") + "  " + keyHint("v", "activate") + "  " +
				keyHint("x", "delete")
		case tabDatasets:
			return base + "  " + keyHint("a", "new") + "  " + keyHint("e", "export") + "  " +
				keyHint("x", "delete")
		case tabSettings:
			return base + "  " + keyHint("j/k", "navigate") + "  " +
				keyHint("Enter", "edit") + "  " + keyHint("Space", "toggle")
		}
	} else {
		switch m.rightTab {
		case tabLogs:
			return base + "  " + keyHint("[/]", "view") + "  " + keyHint("s", "save log") + "  " +
				keyHint("PgUp/PgDn", "scroll")
		case tabMetrics:
			return base + "  " + keyHint("[/]", "view")
		case tabFeedback:
			return base + "  " + keyHint("[/]", "view") + "  " + keyHint("h/l", "sample") + "  " +
				keyHint("m", "mode") + "  " + keyHint("Enter", "submit")
		}
	}

	return base
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderSavedBar(note string, width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(note))
}
