package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

// AdapterForm is the new-adapter overlay.
type AdapterForm struct {
	nameInput  textinput.Model
	descInput  textinput.Model
	modelInput textinput.Model
	pathInput  textinput.Model
	focusIndex int // 0=name, 1=description, 2=base model, 3=storage path
	width      int
}

// NewAdapterForm creates an adapter form.
func NewAdapterForm(width int) *AdapterForm {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = width - 8
		return ti
	}

	af := &AdapterForm{
		nameInput:  mk("Adapter name", 120),
		descInput:  mk("Description (optional)", 200),
		modelInput: mk("Base model (optional)", 120),
		pathInput:  mk("Storage path (optional)", 200),
		width:      width,
	}
	af.nameInput.Focus()
	return af
}

// FocusNext moves to the next field.
func (af *AdapterForm) FocusNext() {
	af.blurAll()
	af.focusIndex = (af.focusIndex + 1) % 4
	af.focusCurrent()
}

// FocusPrev moves to the previous field.
func (af *AdapterForm) FocusPrev() {
	af.blurAll()
	af.focusIndex--
	if af.focusIndex < 0 {
		af.focusIndex = 3
	}
	af.focusCurrent()
}

func (af *AdapterForm) blurAll() {
	af.nameInput.Blur()
	af.descInput.Blur()
	af.modelInput.Blur()
	af.pathInput.Blur()
}

func (af *AdapterForm) focusCurrent() {
	af.Inputs()[af.focusIndex].Focus()
}

// Inputs returns the inputs in focus order.
func (af *AdapterForm) Inputs() []*textinput.Model {
	return []*textinput.Model{
		&af.nameInput, &af.descInput, &af.modelInput, &af.pathInput,
	}
}

// FocusIndex returns the currently focused field index.
func (af *AdapterForm) FocusIndex() int {
	return af.focusIndex
}

// Build validates and assembles the create request.
func (af *AdapterForm) Build() (api.AdapterCreate, error) {
	name := strings.TrimSpace(af.nameInput.Value())
	if name == "" {
		return api.AdapterCreate{}, errNameRequired
	}
	return api.AdapterCreate{
		Name:        name,
		Description: strings.TrimSpace(af.descInput.Value()),
		BaseModel:   strings.TrimSpace(af.modelInput.Value()),
		StoragePath: strings.TrimSpace(af.pathInput.Value()),
	}, nil
}

// View renders the adapter form.
func (af *AdapterForm) View() string {
	formWidth := af.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	label := func(s string) string {
		return lipgloss.NewStyle().Bold(true).Render(s)
	}

	parts := []string{
		overlayTitleStyle.Render("Register Adapter"),
		label("Name:"), af.nameInput.View(), "",
		label("Description:"), af.descInput.View(), "",
		label("Base Model:"), af.modelInput.View(), "",
		label("Storage Path:"), af.pathInput.View(), "",
		emptyStateStyle.Render("Ctrl+s create  |  Tab next field  |  Esc cancel"),
	}

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
