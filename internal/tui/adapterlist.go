package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/text2song/studio/internal/api"
)

// AdapterList shows registered adapters in the left panel.
type AdapterList struct {
	adapters     []api.Adapter
	cursor       int
	scrollOffset int
	height       int
	loaded       bool
}

// NewAdapterList creates a new adapter list.
func NewAdapterList() *AdapterList {
	return &AdapterList{}
}

// SetAdapters updates the adapter data.
func (al *AdapterList) SetAdapters(adapters []api.Adapter) {
	al.adapters = adapters
	al.loaded = true
	if al.cursor >= len(adapters) {
		al.cursor = len(adapters) - 1
	}
	if al.cursor < 0 {
		al.cursor = 0
	}
}

// SetHeight sets the visible height.
func (al *AdapterList) SetHeight(h int) {
	al.height = h
}

// Selected returns the adapter under the cursor, or nil.
func (al *AdapterList) Selected() *api.Adapter {
	if al.cursor < 0 || al.cursor >= len(al.adapters) {
		return nil
	}
	return &al.adapters[al.cursor]
}

// MoveUp moves the cursor up.
func (al *AdapterList) MoveUp() {
	if al.cursor > 0 {
		al.cursor--
		al.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (al *AdapterList) MoveDown() {
	if al.cursor < len(al.adapters)-1 {
		al.cursor++
		al.ensureVisible()
	}
}

func (al *AdapterList) ensureVisible() {
	if al.cursor < al.scrollOffset {
		al.scrollOffset = al.cursor
	}
	if al.cursor >= al.scrollOffset+al.height {
		al.scrollOffset = al.cursor - al.height + 1
	}
}

// View renders the adapter list.
func (al *AdapterList) View(width int) string {
	if !al.loaded {
		return emptyStateStyle.Render("Loading adapters...")
	}
	if len(al.adapters) == 0 {
		return emptyStateStyle.Render("No adapters registered. Press 'a' to add one.")
	}

	var lines []string
	end := al.scrollOffset + al.height
	if end > len(al.adapters) {
		end = len(al.adapters)
	}

	for i := al.scrollOffset; i < end; i++ {
		a := al.adapters[i]

		badge := itemPendingStyle.Render("[ ]")
		if a.IsActive {
			badge = itemActiveStyle.Render("[●]")
		}

		version := ""
		if a.CurrentVersion != nil && *a.CurrentVersion != "" {
			version = "  " + emptyStateStyle.Render("v"+*a.CurrentVersion)
		}

		line := fmt.Sprintf("%s %s%s  %s", badge, a.Name, version,
			emptyStateStyle.Render(a.BaseModel))

		maxWidth := width - 2
		if maxWidth > 0 {
			line = ansi.Truncate(line, maxWidth, "…")
		}
		if i == al.cursor {
			line = selectedItemStyle.Width(width).Render(line)
		}
		lines = append(lines, "  "+line)
	}

	if al.scrollOffset > 0 {
		lines = append([]string{emptyStateStyle.Render("  ▲ more")}, lines...)
	}
	if end < len(al.adapters) {
		lines = append(lines, emptyStateStyle.Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}
