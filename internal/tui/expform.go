package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

var errNameRequired = errors.New("name is required")

// ExperimentForm is the new-experiment overlay.
type ExperimentForm struct {
	nameInput  textinput.Model
	descArea   textarea.Model
	dsInput    textinput.Model
	focusIndex int // 0=name, 1=description, 2=dataset
	width      int
}

// NewExperimentForm creates an experiment form.
func NewExperimentForm(width int) *ExperimentForm {
	ni := textinput.New()
	ni.Placeholder = "Experiment name"
	ni.CharLimit = 120
	ni.Width = width - 8

	da := textarea.New()
	da.Placeholder = "What this experiment tries (optional)"
	da.SetWidth(width - 8)
	da.SetHeight(3)

	di := textinput.New()
	di.Placeholder = "Dataset ID (optional)"
	di.CharLimit = 64
	di.Width = width - 8

	ef := &ExperimentForm{
		nameInput: ni,
		descArea:  da,
		dsInput:   di,
		width:     width,
	}
	ef.nameInput.Focus()
	return ef
}

// FocusNext moves to the next field.
func (ef *ExperimentForm) FocusNext() {
	ef.blurAll()
	ef.focusIndex = (ef.focusIndex + 1) % 3
	ef.focusCurrent()
}

// FocusPrev moves to the previous field.
func (ef *ExperimentForm) FocusPrev() {
	ef.blurAll()
	ef.focusIndex--
	if ef.focusIndex < 0 {
		ef.focusIndex = 2
	}
	ef.focusCurrent()
}

func (ef *ExperimentForm) blurAll() {
	ef.nameInput.Blur()
	ef.descArea.Blur()
	ef.dsInput.Blur()
}

func (ef *ExperimentForm) focusCurrent() {
	switch ef.focusIndex {
	case 0:
		ef.nameInput.Focus()
	case 1:
		ef.descArea.Focus()
	case 2:
		ef.dsInput.Focus()
	}
}

// FocusIndex returns the currently focused field index.
func (ef *ExperimentForm) FocusIndex() int {
	return ef.focusIndex
}

// NameInput returns the name input for update forwarding.
func (ef *ExperimentForm) NameInput() *textinput.Model {
	return &ef.nameInput
}

// DescArea returns the description textarea for update forwarding.
func (ef *ExperimentForm) DescArea() *textarea.Model {
	return &ef.descArea
}

// DatasetInput returns the dataset input for update forwarding.
func (ef *ExperimentForm) DatasetInput() *textinput.Model {
	return &ef.dsInput
}

// Build validates and assembles the create request.
func (ef *ExperimentForm) Build() (api.ExperimentCreate, error) {
	name := strings.TrimSpace(ef.nameInput.Value())
	if name == "" {
		return api.ExperimentCreate{}, errNameRequired
	}
	req := api.ExperimentCreate{
		Name:        name,
		Description: strings.TrimSpace(ef.descArea.Value()),
	}
	if ds := strings.TrimSpace(ef.dsInput.Value()); ds != "" {
		req.DatasetID = &ds
	}
	return req, nil
}

// View renders the experiment form.
func (ef *ExperimentForm) View() string {
	formWidth := ef.width
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
		overlayTitleStyle.Render("New Experiment"),
		label("Name:"), ef.nameInput.View(), "",
		label("Description:"), ef.descArea.View(), "",
		label("Dataset:"), ef.dsInput.View(), "",
		emptyStateStyle.Render("Ctrl+s create  |  Tab next field  |  Esc cancel"),
	}

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
