package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/text2song/studio/internal/api"
)

// DatasetList shows training datasets in the left panel.
type DatasetList struct {
	datasets     []api.Dataset
	cursor       int
	scrollOffset int
	height       int
	loaded       bool
}

// NewDatasetList creates a new dataset list.
func NewDatasetList() *DatasetList {
	return &DatasetList{}
}

// SetDatasets updates the dataset data.
func (dl *DatasetList) SetDatasets(datasets []api.Dataset) {
	dl.datasets = datasets
	dl.loaded = true
	if dl.cursor >= len(datasets) {
		dl.cursor = len(datasets) - 1
	}
	if dl.cursor < 0 {
		dl.cursor = 0
	}
}

// SetHeight sets the visible height.
func (dl *DatasetList) SetHeight(h int) {
	dl.height = h
}

// Selected returns the dataset under the cursor, or nil.
func (dl *DatasetList) Selected() *api.Dataset {
	if dl.cursor < 0 || dl.cursor >= len(dl.datasets) {
		return nil
	}
	return &dl.datasets[dl.cursor]
}

// MoveUp moves the cursor up.
func (dl *DatasetList) MoveUp() {
	if dl.cursor > 0 {
		dl.cursor--
		dl.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (dl *DatasetList) MoveDown() {
	if dl.cursor < len(dl.datasets)-1 {
		dl.cursor++
		dl.ensureVisible()
	}
}

func (dl *DatasetList) ensureVisible() {
	if dl.cursor < dl.scrollOffset {
		dl.scrollOffset = dl.cursor
	}
	if dl.cursor >= dl.scrollOffset+dl.height {
		dl.scrollOffset = dl.cursor - dl.height + 1
	}
}

// View renders the dataset list.
func (dl *DatasetList) View(width int) string {
	if !dl.loaded {
		return emptyStateStyle.Render("Loading datasets...")
	}
	if len(dl.datasets) == 0 {
		return emptyStateStyle.Render("No datasets. Press 'a' to build one from feedback.")
	}

	var lines []string
	end := dl.scrollOffset + dl.height
	if end > len(dl.datasets) {
		end = len(dl.datasets)
	}

	for i := dl.scrollOffset; i < end; i++ {
		d := dl.datasets[i]

		typeBadge := itemActiveStyle.Render("[S]")
		if d.Type == api.DatasetPreference {
			typeBadge = compareMarkStyle.Render("[P]")
		}

		exported := ""
		if d.ExportPath != nil && *d.ExportPath != "" {
			exported = "  " + itemCompletedStyle.Render("exported")
		}

		line := fmt.Sprintf("%s %s  %s%s", typeBadge, d.Name,
			emptyStateStyle.Render(fmt.Sprintf("%d samples", d.SampleCount)), exported)

		maxWidth := width - 2
		if maxWidth > 0 {
			line = ansi.Truncate(line, maxWidth, "…")
		}
		if i == dl.cursor {
			line = selectedItemStyle.Width(width).Render(line)
		}
		lines = append(lines, "  "+line)
	}

	if dl.scrollOffset > 0 {
		lines = append([]string{emptyStateStyle.Render("  ▲ more")}, lines...)
	}
	if end < len(dl.datasets) {
		lines = append(lines, emptyStateStyle.Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}
