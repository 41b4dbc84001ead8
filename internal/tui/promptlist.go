package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/text2song/studio/internal/api"
)

// PromptList is the recent-prompts component for the left panel.
type PromptList struct {
	prompts      []api.Prompt
	favorites    map[string]bool
	cursor       int
	scrollOffset int
	height       int
	loaded       bool
}

// NewPromptList creates a new prompt list.
func NewPromptList() *PromptList {
	return &PromptList{favorites: map[string]bool{}}
}

// SetPrompts updates the prompt data.
func (pl *PromptList) SetPrompts(prompts []api.Prompt) {
	pl.prompts = prompts
	pl.loaded = true
	if pl.cursor >= len(prompts) {
		pl.cursor = len(prompts) - 1
	}
	if pl.cursor < 0 {
		pl.cursor = 0
	}
}

// SetFavorites replaces the favorited-ID set.
func (pl *PromptList) SetFavorites(ids map[string]bool) {
	if ids == nil {
		ids = map[string]bool{}
	}
	pl.favorites = ids
}

// SetFavorite marks or unmarks one prompt.
func (pl *PromptList) SetFavorite(id string, on bool) {
	if on {
		pl.favorites[id] = true
	} else {
		delete(pl.favorites, id)
	}
}

// IsFavorite reports whether the prompt is favorited.
func (pl *PromptList) IsFavorite(id string) bool {
	return pl.favorites[id]
}

// SetHeight sets the visible height.
func (pl *PromptList) SetHeight(h int) {
	pl.height = h
}

// Selected returns the prompt under the cursor, or nil.
func (pl *PromptList) Selected() *api.Prompt {
	if pl.cursor < 0 || pl.cursor >= len(pl.prompts) {
		return nil
	}
	return &pl.prompts[pl.cursor]
}

// MoveUp moves the cursor up.
func (pl *PromptList) MoveUp() {
	if pl.cursor > 0 {
		pl.cursor--
		pl.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (pl *PromptList) MoveDown() {
	if pl.cursor < len(pl.prompts)-1 {
		pl.cursor++
		pl.ensureVisible()
	}
}

func (pl *PromptList) ensureVisible() {
	if pl.cursor < pl.scrollOffset {
		pl.scrollOffset = pl.cursor
	}
	if pl.cursor >= pl.scrollOffset+pl.height {
		pl.scrollOffset = pl.cursor - pl.height + 1
	}
}

// View renders the prompt list.
func (pl *PromptList) View(width int) string {
	if !pl.loaded {
		return emptyStateStyle.Render("Loading prompts...")
	}
	if len(pl.prompts) == 0 {
		return emptyStateStyle.Render("No prompts yet. Press 'a' to write one.")
	}

	var lines []string
	end := pl.scrollOffset + pl.height
	if end > len(pl.prompts) {
		end = len(pl.prompts)
	}

	for i := pl.scrollOffset; i < end; i++ {
		p := pl.prompts[i]

		mark := " "
		if pl.favorites[p.ID] {
			mark = favoriteMarkStyle.Render("♥")
		}

		text := strings.ReplaceAll(p.Text, "\n", " ")
		line := fmt.Sprintf("%s %s  %s", mark, text, promptAttrSummary(p.Attributes))

		maxWidth := width - 2
		if maxWidth > 0 {
			line = ansi.Truncate(line, maxWidth, "…")
		}

		if i == pl.cursor {
			line = selectedItemStyle.Width(width).Render(line)
		}
		lines = append(lines, "  "+line)
	}

	if pl.scrollOffset > 0 {
		lines = append([]string{emptyStateStyle.Render("  ▲ more")}, lines...)
	}
	if end < len(pl.prompts) {
		lines = append(lines, emptyStateStyle.Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

// promptAttrSummary renders a compact attribute tail, e.g. "[jazz · calm · 95bpm]".
func promptAttrSummary(a *api.PromptAttributes) string {
	if a == nil {
		return ""
	}
	var parts []string
	if a.Style != "" {
		parts = append(parts, a.Style)
	}
	if a.Mood != "" {
		parts = append(parts, a.Mood)
	}
	if a.Tempo != nil {
		parts = append(parts, fmt.Sprintf("%dbpm", *a.Tempo))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(colorDim).Render("[" + strings.Join(parts, " · ") + "]")
}
