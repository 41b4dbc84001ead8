package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

// Adaptive colors matching the TUI palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleVersion = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
	styleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleUpdate  = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
)

// Status badge styles.
var (
	badgePending = lipgloss.NewStyle().Foreground(colorDim)
	badgeRunning = lipgloss.NewStyle().Foreground(colorCyan)
	badgeDone    = lipgloss.NewStyle().Foreground(colorGreen)
	badgeFailed  = lipgloss.NewStyle().Foreground(colorRed)
)

func styleJobStatus(s api.JobStatus) string {
	switch s {
	case api.JobQueued:
		return badgePending.Render(string(s))
	case api.JobProcessing:
		return badgeRunning.Render(string(s))
	case api.JobCompleted:
		return badgeDone.Render(string(s))
	default:
		return badgeFailed.Render(string(s))
	}
}

func styleRunStatus(s api.RunStatus) string {
	switch s {
	case api.RunPending:
		return badgePending.Render(string(s))
	case api.RunRunning:
		return badgeRunning.Render(string(s))
	case api.RunCompleted:
		return badgeDone.Render(string(s))
	default:
		return badgeFailed.Render(string(s))
	}
}

func styleExperimentStatus(s api.ExperimentStatus) string {
	switch s {
	case api.ExperimentRunning:
		return badgeRunning.Render(string(s))
	case api.ExperimentCompleted:
		return badgeDone.Render(string(s))
	case api.ExperimentFailed:
		return badgeFailed.Render(string(s))
	default:
		return badgePending.Render(string(s))
	}
}
