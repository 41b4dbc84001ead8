package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorPink   = lipgloss.AdaptiveColor{Light: "125", Dark: "212"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite)

	unfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// List item styles keyed by status.
var (
	itemPendingStyle   = lipgloss.NewStyle().Foreground(colorDim)
	itemRunningStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	itemCompletedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	itemFailedStyle    = lipgloss.NewStyle().Foreground(colorRed)
	itemArchivedStyle  = lipgloss.NewStyle().Foreground(colorDim).Faint(true)
	itemActiveStyle    = lipgloss.NewStyle().Foreground(colorCyan)

	favoriteMarkStyle = lipgloss.NewStyle().Foreground(colorPink)
	compareMarkStyle  = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	emptyStateStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Generation job badge styles.
var (
	badgeIdleStyle   = lipgloss.NewStyle().Foreground(colorDim)
	badgeActiveStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	badgeFailedStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Log session state line styles.
var (
	logStateConnecting = lipgloss.NewStyle().Foreground(colorYellow)
	logStateOpen       = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	logStateClosed     = lipgloss.NewStyle().Foreground(colorDim)
	logStateError      = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	logHeaderStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "237", Dark: "237"}).
			Foreground(colorGreen).
			Bold(true).
			Padding(0, 1)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Settings form styles.
var (
	settingsLabelStyle = lipgloss.NewStyle().
				Width(20).
				Foreground(colorDim)

	settingsValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite)

	settingsToggleOn = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	settingsToggleOff = lipgloss.NewStyle().
				Foreground(colorRed)

	settingsCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Metrics chart styles.
var (
	chartLabelStyle = lipgloss.NewStyle().Foreground(colorDim).Width(14)
	chartLineStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	chartBestStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// Feedback panel styles.
var (
	sampleLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				Padding(0, 1)

	sampleSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"}).
				Padding(0, 1)

	feedbackModeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)
)
