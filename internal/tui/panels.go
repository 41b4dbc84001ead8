package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const minPanelWidth = 12

// panelLayout holds computed dimensions for the two-panel layout.
type panelLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
	dividerCol    int // x position of the divider for mouse hit testing
}

func computeLayout(width, height int, splitRatio float64) panelLayout {
	// Reserve one line for the header and one for the status bar.
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	// The divider takes one column; the rest is split by ratio.
	usable := width - 1
	leftWidth := int(float64(usable) * splitRatio)
	rightWidth := usable - leftWidth

	if leftWidth < minPanelWidth {
		leftWidth = minPanelWidth
	}
	if rightWidth < minPanelWidth {
		rightWidth = minPanelWidth
	}

	return panelLayout{
		leftWidth:     leftWidth,
		rightWidth:    rightWidth,
		contentHeight: contentHeight,
		dividerCol:    leftWidth,
	}
}

func renderPanels(leftContent, rightContent string, layout panelLayout, focusedPanel int) string {
	leftStyle := unfocusedBorderStyle
	rightStyle := unfocusedBorderStyle
	if focusedPanel == 0 {
		leftStyle = focusedBorderStyle
	} else {
		rightStyle = focusedBorderStyle
	}

	// Inner dimensions exclude the border columns and rows.
	leftInner := layout.leftWidth - 2
	rightInner := layout.rightWidth - 2
	innerHeight := layout.contentHeight - 2

	if leftInner < 1 {
		leftInner = 1
	}
	if rightInner < 1 {
		rightInner = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	left := leftStyle.
		Width(leftInner).
		Height(innerHeight).
		Render(clipContent(leftContent, leftInner, innerHeight))

	right := rightStyle.
		Width(rightInner).
		Height(innerHeight).
		Render(clipContent(rightContent, rightInner, innerHeight))

	divider := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(strings.Repeat("│\n", lipgloss.Height(left)))
	divider = strings.TrimSuffix(divider, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
}

// clipContent fits content into the given box, truncating lines ANSI-aware.
func clipContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}

	return strings.Join(lines, "\n")
}
