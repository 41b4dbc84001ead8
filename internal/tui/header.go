package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

var leftTabNames = []string{"Prompts", "Experiments", "Adapters", "Datasets", "Settings"}
var rightTabNames = []string{"Logs", "Metrics", "Feedback"}

func renderHeader(leftTab, rightTab int, job *api.GenerationJob, width int) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color("#c678dd")).Render("♪")
	name := lipgloss.NewStyle().Bold(true).Render("Text2Song Studio")

	leftTabs := renderTabs(leftTabNames, leftTab)
	rightTabs := renderTabs(rightTabNames, rightTab)
	badge := renderJobBadge(job)

	left := fmt.Sprintf(" %s %s  %s", dot, name, leftTabs)
	right := fmt.Sprintf("%s  %s ", rightTabs, badge)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

// renderJobBadge shows the state of the active generation job, if any.
func renderJobBadge(job *api.GenerationJob) string {
	if job == nil {
		return badgeIdleStyle.Render("● Idle")
	}

	switch job.Status {
	case api.JobQueued:
		return badgeActiveStyle.Render("● Queued")
	case api.JobProcessing:
		if job.Progress != nil {
			return badgeActiveStyle.Render(fmt.Sprintf("● Generating %d%%", int(*job.Progress*100)))
		}
		return badgeActiveStyle.Render("● Generating")
	case api.JobCompleted:
		return badgeActiveStyle.Render(fmt.Sprintf("● Done (%d samples)", len(job.AudioIDs)))
	case api.JobFailed:
		return badgeFailedStyle.Render("✗ Failed")
	case api.JobCancelled:
		return badgeIdleStyle.Render("● Cancelled")
	default:
		return badgeIdleStyle.Render("● " + string(job.Status))
	}
}
