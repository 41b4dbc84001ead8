package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/logstream"
)

// LogViewer shows a training run's log session in the right panel.
type LogViewer struct {
	session      *logstream.Session
	run          *api.ExperimentRun
	viewport     viewport.Model
	width        int
	height       int
	userScrolled bool // true when user scrolled away from bottom
}

// NewLogViewer creates a new log viewer.
func NewLogViewer() *LogViewer {
	vp := viewport.New(80, 24)
	vp.Style = lipgloss.NewStyle()
	return &LogViewer{
		viewport: vp,
	}
}

// Attach binds the viewer to a run and opens a fresh log session.
// Any previous session is closed first.
func (l *LogViewer) Attach(client *api.Client, run api.ExperimentRun, notify func()) {
	if l.session != nil {
		l.session.Close()
	}
	l.run = &run
	l.userScrolled = false
	l.session = logstream.NewSession(client, run.ID, run.Status.Live(), l.width, l.contentHeight(), notify)
	l.session.Start(context.Background())
	l.viewport.SetContent("")
}

// Detach closes the current session, if any.
func (l *LogViewer) Detach() {
	if l.session != nil {
		l.session.Close()
		l.session = nil
	}
	l.run = nil
}

// Run returns the attached run, or nil.
func (l *LogViewer) Run() *api.ExperimentRun {
	return l.run
}

// Session returns the underlying log session, or nil.
func (l *LogViewer) Session() *logstream.Session {
	return l.session
}

// Refresh re-renders the session screen into the viewport. Called when
// the session signals new data.
func (l *LogViewer) Refresh() {
	if l.session == nil {
		return
	}
	l.viewport.SetContent(l.session.Render())
	if !l.userScrolled {
		l.viewport.GotoBottom()
	}
}

// SetSize updates dimensions and resizes the emulated screen.
func (l *LogViewer) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = width
	l.viewport.Height = l.contentHeight()
	if l.session != nil {
		l.session.Resize(width, l.contentHeight())
		l.Refresh()
	}
}

// contentHeight is the viewport height minus the status line.
func (l *LogViewer) contentHeight() int {
	h := l.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

// ScrollUp scrolls the viewport up.
func (l *LogViewer) ScrollUp(n int) {
	l.viewport.ScrollUp(n)
	l.userScrolled = !l.viewport.AtBottom()
}

// ScrollDown scrolls the viewport down.
func (l *LogViewer) ScrollDown(n int) {
	l.viewport.ScrollDown(n)
	l.userScrolled = !l.viewport.AtBottom()
}

// PageUp scrolls half a page up.
func (l *LogViewer) PageUp() {
	l.viewport.HalfPageUp()
	l.userScrolled = !l.viewport.AtBottom()
}

// PageDown scrolls half a page down.
func (l *LogViewer) PageDown() {
	l.viewport.HalfPageDown()
	l.userScrolled = !l.viewport.AtBottom()
}

// View renders the log viewer.
func (l *LogViewer) View() string {
	if l.session == nil {
		return emptyStateStyle.
			Width(l.width).
			Align(lipgloss.Center).
			Render("\nNo run attached. Select a run and press Enter.")
	}

	return l.statusLine() + "\n" + l.viewport.View()
}

func (l *LogViewer) statusLine() string {
	name := l.session.RunID()
	if len(name) > 8 {
		name = name[:8]
	}
	if l.run != nil && l.run.Name != nil && *l.run.Name != "" {
		name = *l.run.Name
	}

	var state string
	switch l.session.State() {
	case logstream.StateConnecting:
		state = logStateConnecting.Render("connecting")
	case logstream.StateOpen:
		state = logStateOpen.Render("live")
	case logstream.StateClosed:
		if code := l.session.ExitCode(); code != nil {
			if *code == 0 {
				state = logStateClosed.Render("finished (exit 0)")
			} else {
				state = logStateError.Render(fmt.Sprintf("finished (exit %d)", *code))
			}
		} else {
			state = logStateClosed.Render("closed")
		}
	case logstream.StateError:
		msg := "error"
		if err := l.session.Err(); err != nil {
			msg = err.Error()
		}
		state = logStateError.Render(msg)
	default:
		state = logStateClosed.Render("idle")
	}

	size := emptyStateStyle.Render(fmt.Sprintf("%d bytes", l.session.Size()))
	return logHeaderStyle.Width(l.width).Render(fmt.Sprintf("%s  %s  %s", name, state, size))
}
