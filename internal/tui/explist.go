package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/text2song/studio/internal/api"
)

// Spinner frames for live run animation.
var spinnerFrames = []string{"●", "○"}

// ExperimentList shows experiments with their runs nested beneath.
type ExperimentList struct {
	experiments  []api.Experiment
	runs         map[string][]api.ExperimentRun // keyed by experiment ID
	marked       map[string]bool                // run IDs marked for comparison
	flatItems    []expItem
	cursor       int
	scrollOffset int
	height       int
	spinnerFrame int
	loaded       bool
}

type expItem struct {
	exp *api.Experiment
	run *api.ExperimentRun
}

// NewExperimentList creates a new experiment list.
func NewExperimentList() *ExperimentList {
	return &ExperimentList{
		runs:   map[string][]api.ExperimentRun{},
		marked: map[string]bool{},
	}
}

// SetExperiments updates the experiment data and rebuilds the flat list.
func (el *ExperimentList) SetExperiments(experiments []api.Experiment) {
	el.experiments = experiments
	el.loaded = true
	el.rebuild()
}

// SetRuns stores the runs of one experiment.
func (el *ExperimentList) SetRuns(experimentID string, runs []api.ExperimentRun) {
	el.runs[experimentID] = runs
	el.rebuild()
}

// Runs returns the cached runs of an experiment.
func (el *ExperimentList) Runs(experimentID string) []api.ExperimentRun {
	return el.runs[experimentID]
}

// SetHeight sets the visible height.
func (el *ExperimentList) SetHeight(h int) {
	el.height = h
}

// SelectedExperiment returns the experiment under or above the cursor.
func (el *ExperimentList) SelectedExperiment() *api.Experiment {
	if el.cursor < 0 || el.cursor >= len(el.flatItems) {
		return nil
	}
	return el.flatItems[el.cursor].exp
}

// SelectedRun returns the run under the cursor, or nil when an
// experiment row is selected.
func (el *ExperimentList) SelectedRun() *api.ExperimentRun {
	if el.cursor < 0 || el.cursor >= len(el.flatItems) {
		return nil
	}
	return el.flatItems[el.cursor].run
}

// ToggleMark flips the comparison mark on the selected run.
func (el *ExperimentList) ToggleMark() {
	run := el.SelectedRun()
	if run == nil {
		return
	}
	if el.marked[run.ID] {
		delete(el.marked, run.ID)
	} else {
		el.marked[run.ID] = true
	}
}

// MarkedRuns returns the runs currently marked for comparison, in
// listing order.
func (el *ExperimentList) MarkedRuns() []api.ExperimentRun {
	var out []api.ExperimentRun
	for _, item := range el.flatItems {
		if item.run != nil && el.marked[item.run.ID] {
			out = append(out, *item.run)
		}
	}
	return out
}

// ClearMarks drops all comparison marks.
func (el *ExperimentList) ClearMarks() {
	el.marked = map[string]bool{}
}

// HasLiveRun reports whether any cached run is still pending or running.
func (el *ExperimentList) HasLiveRun() bool {
	for _, runs := range el.runs {
		for _, r := range runs {
			if r.Status.Live() {
				return true
			}
		}
	}
	return false
}

// MoveUp moves the cursor up.
func (el *ExperimentList) MoveUp() {
	if el.cursor > 0 {
		el.cursor--
		el.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (el *ExperimentList) MoveDown() {
	if el.cursor < len(el.flatItems)-1 {
		el.cursor++
		el.ensureVisible()
	}
}

func (el *ExperimentList) ensureVisible() {
	if el.cursor < el.scrollOffset {
		el.scrollOffset = el.cursor
	}
	if el.cursor >= el.scrollOffset+el.height {
		el.scrollOffset = el.cursor - el.height + 1
	}
}

func (el *ExperimentList) rebuild() {
	var items []expItem
	for i := range el.experiments {
		exp := &el.experiments[i]
		items = append(items, expItem{exp: exp})
		runs := el.runs[exp.ID]
		for j := range runs {
			items = append(items, expItem{exp: exp, run: &runs[j]})
		}
	}
	el.flatItems = items

	if el.cursor >= len(items) {
		el.cursor = len(items) - 1
	}
	if el.cursor < 0 {
		el.cursor = 0
	}
}

// Tick advances the spinner frame.
func (el *ExperimentList) Tick() {
	el.spinnerFrame = (el.spinnerFrame + 1) % len(spinnerFrames)
}

// View renders the experiment list.
func (el *ExperimentList) View(width int) string {
	if !el.loaded {
		return emptyStateStyle.Render("Loading experiments...")
	}
	if len(el.flatItems) == 0 {
		return emptyStateStyle.Render("No experiments. Press 'a' to create one.")
	}

	var lines []string
	end := el.scrollOffset + el.height
	if end > len(el.flatItems) {
		end = len(el.flatItems)
	}

	for i := el.scrollOffset; i < end; i++ {
		item := el.flatItems[i]

		var line string
		if item.run == nil {
			line = el.renderExperiment(item.exp)
		} else {
			line = el.renderRun(item.run)
		}

		maxWidth := width - 2
		if maxWidth > 0 {
			line = ansi.Truncate(line, maxWidth, "…")
		}
		if i == el.cursor {
			line = selectedItemStyle.Width(width).Render(line)
		}
		lines = append(lines, "  "+line)
	}

	if el.scrollOffset > 0 {
		lines = append([]string{emptyStateStyle.Render("  ▲ more")}, lines...)
	}
	if end < len(el.flatItems) {
		lines = append(lines, emptyStateStyle.Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (el *ExperimentList) renderExperiment(exp *api.Experiment) string {
	var style = sectionHeaderStyle
	switch exp.Status {
	case api.ExperimentRunning:
		style = itemRunningStyle
	case api.ExperimentFailed:
		style = itemFailedStyle
	case api.ExperimentArchived:
		style = itemArchivedStyle
	}

	label := fmt.Sprintf("%s (%d runs)", exp.Name, exp.RunCount)
	if exp.BestLoss != nil {
		label += fmt.Sprintf("  best %.4f", *exp.BestLoss)
	}
	return style.Render(label)
}

func (el *ExperimentList) renderRun(run *api.ExperimentRun) string {
	badge := el.runBadge(run)

	name := run.ID
	if len(name) > 8 {
		name = name[:8]
	}
	if run.Name != nil && *run.Name != "" {
		name = *run.Name
	}

	mark := " "
	if el.marked[run.ID] {
		mark = compareMarkStyle.Render("◆")
	}

	tail := ""
	if run.FinalLoss != nil {
		tail = fmt.Sprintf("  loss %.4f", *run.FinalLoss)
	}

	return fmt.Sprintf("  %s %s %s%s", mark, badge, name, tail)
}

func (el *ExperimentList) runBadge(run *api.ExperimentRun) string {
	switch run.Status {
	case api.RunPending:
		return itemPendingStyle.Render("[·]")
	case api.RunRunning:
		frame := spinnerFrames[el.spinnerFrame%len(spinnerFrames)]
		return itemRunningStyle.Render("[" + frame + "]")
	case api.RunCompleted:
		return itemCompletedStyle.Render("[✓]")
	case api.RunFailed:
		return itemFailedStyle.Render("[✗]")
	case api.RunCancelled:
		return itemPendingStyle.Render("[−]")
	}
	return "[ ]"
}
