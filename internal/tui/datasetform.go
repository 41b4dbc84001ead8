package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

// DatasetForm is the new-dataset overlay: name, type, and feedback filter.
type DatasetForm struct {
	nameInput   textinput.Model
	ratingInput textinput.Model
	tagsInput   textinput.Model
	dsType      api.DatasetType
	focusIndex  int // 0=name, 1=min rating, 2=tags, 3=type
	width       int
}

const datasetFormFields = 4

// NewDatasetForm creates a dataset form.
func NewDatasetForm(width int) *DatasetForm {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = width - 8
		return ti
	}

	df := &DatasetForm{
		nameInput:   mk("Dataset name", 120),
		ratingInput: mk("Minimum rating, e.g. 4 (optional)", 4),
		tagsInput:   mk("Required tags, comma separated (optional)", 200),
		dsType:      api.DatasetSupervised,
		width:       width,
	}
	df.nameInput.Focus()
	return df
}

// FocusNext moves to the next field.
func (df *DatasetForm) FocusNext() {
	df.blurAll()
	df.focusIndex = (df.focusIndex + 1) % datasetFormFields
	df.focusCurrent()
}

// FocusPrev moves to the previous field.
func (df *DatasetForm) FocusPrev() {
	df.blurAll()
	df.focusIndex--
	if df.focusIndex < 0 {
		df.focusIndex = datasetFormFields - 1
	}
	df.focusCurrent()
}

func (df *DatasetForm) blurAll() {
	df.nameInput.Blur()
	df.ratingInput.Blur()
	df.tagsInput.Blur()
}

func (df *DatasetForm) focusCurrent() {
	switch df.focusIndex {
	case 0:
		df.nameInput.Focus()
	case 1:
		df.ratingInput.Focus()
	case 2:
		df.tagsInput.Focus()
	case 3:
		// Type field toggles with Space, no input to focus.
	}
}

// FocusIndex returns the currently focused field index.
func (df *DatasetForm) FocusIndex() int {
	return df.focusIndex
}

// Inputs returns the text inputs in focus order.
func (df *DatasetForm) Inputs() []*textinput.Model {
	return []*textinput.Model{&df.nameInput, &df.ratingInput, &df.tagsInput}
}

// ToggleType flips between supervised and preference.
func (df *DatasetForm) ToggleType() {
	if df.dsType == api.DatasetSupervised {
		df.dsType = api.DatasetPreference
	} else {
		df.dsType = api.DatasetSupervised
	}
}

// Build validates and assembles the create request.
func (df *DatasetForm) Build() (api.DatasetCreate, error) {
	name := strings.TrimSpace(df.nameInput.Value())
	if name == "" {
		return api.DatasetCreate{}, errNameRequired
	}

	var filter *api.DatasetFilter
	if v := strings.TrimSpace(df.ratingInput.Value()); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			filter = &api.DatasetFilter{MinRating: &r}
		}
	}
	for _, tag := range strings.Split(df.tagsInput.Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			if filter == nil {
				filter = &api.DatasetFilter{}
			}
			filter.RequiredTags = append(filter.RequiredTags, tag)
		}
	}

	return api.DatasetCreate{
		Name:        name,
		Type:        df.dsType,
		FilterQuery: filter,
	}, nil
}

// View renders the dataset form.
func (df *DatasetForm) View() string {
	formWidth := df.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	label := func(s string) string {
		return lipgloss.NewStyle().Bold(true).Render(s)
	}

	typeDisplay := itemActiveStyle.Render("Supervised")
	if df.dsType == api.DatasetPreference {
		typeDisplay = compareMarkStyle.Render("Preference")
	}
	if df.focusIndex == 3 {
		typeDisplay += emptyStateStyle.Render("  (Space to toggle)")
	}

	parts := []string{
		overlayTitleStyle.Render("Build Dataset"),
		label("Name:"), df.nameInput.View(), "",
		label("Min Rating:"), df.ratingInput.View(), "",
		label("Required Tags:"), df.tagsInput.View(), "",
		label("Type:") + " " + typeDisplay, "",
		emptyStateStyle.Render("Ctrl+s create  |  Tab next field  |  Esc cancel"),
	}

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
