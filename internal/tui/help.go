package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+q", "Quit"},
			{"Ctrl+h", "Toggle help"},
			{"Tab", "Switch panel focus"},
			{"1-5", "Switch left panel tab"},
			{"[/]", "Cycle right panel view"},
		},
	},
	{
		title: "Prompts",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate prompts"},
			{"a", "New prompt in editor"},
			{"Enter", "Generate from prompt"},
			{"g", "Open prompt in editor"},
			{"f", "Toggle favorite"},
			{"R", "Refresh list"},
		},
	},
	{
		title: "Experiments",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate experiments and runs"},
			{"a", "New experiment"},
			{"Enter", "Attach run to Logs/Metrics"},
			{"c", "Mark run for comparison"},
			{"C", "Show run comparison"},
		},
	},
	{
		title: "Adapters",
		keys: []helpKey{
			{"a", "Register adapter"},
			{"v", "Activate latest version"},
			{"x", "Delete adapter"},
		},
	},
	{
		title: "Datasets",
		keys: []helpKey{
			{"a", "Build dataset from feedback"},
			{"e", "Export to JSONL"},
			{"x", "Delete dataset"},
		},
	},
	{
		title: "Logs",
		keys: []helpKey{
			{"PgUp/PgDn", "Scroll"},
			{"s", "Save log buffer to disk"},
		},
	},
	{
		title: "Feedback",
		keys: []helpKey{
			{"h/l ←/→", "Select sample"},
			{"m", "Switch mode (rating/preference/tags)"},
			{"1-5", "Pick rating"},
			{"o", "Cycle rejected sample"},
			{"Enter", "Submit feedback"},
		},
	},
	{
		title: "Overlays",
		keys: []helpKey{
			{"Ctrl+s", "Save / submit"},
			{"Esc", "Cancel / Close"},
			{"Tab", "Next field"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or Ctrl+h to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
