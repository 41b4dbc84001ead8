package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/text2song/studio/internal/models"
)

// FieldType defines the type of a settings field.
type FieldType int

const (
	fieldText FieldType = iota
	fieldInt
	fieldToggle
)

// SettingsField is a single field in the settings form.
type SettingsField struct {
	Label     string
	Key       string
	Value     string
	BoolValue bool
	Type      FieldType
}

// SettingsForm manages the settings tab over the global settings file.
type SettingsForm struct {
	fields  []SettingsField
	cursor  int
	editing bool
	input   textinput.Model
	width   int
	height  int
}

// NewSettingsForm creates a new settings form.
func NewSettingsForm() *SettingsForm {
	ti := textinput.New()
	ti.CharLimit = 200
	return &SettingsForm{
		input: ti,
	}
}

// Load populates fields from settings.
func (s *SettingsForm) Load(settings *models.Settings) {
	s.fields = []SettingsField{
		{Label: "API URL", Key: "api_url", Value: settings.Backend.APIURL, Type: fieldText},
		{Label: "Timeout (s)", Key: "timeout_seconds", Value: strconv.Itoa(settings.Backend.TimeoutSeconds), Type: fieldInt},
		{Label: "Samples per job", Key: "num_samples", Value: strconv.Itoa(settings.Generation.NumSamples), Type: fieldInt},
		{Label: "Duration (s)", Key: "duration", Value: strconv.Itoa(settings.Generation.Duration), Type: fieldInt},
		{Label: "Check for updates", Key: "check_on_startup", BoolValue: settings.Updates.CheckOnStartup, Type: fieldToggle},
		{Label: "Telemetry", Key: "telemetry", BoolValue: settings.Telemetry.Enabled, Type: fieldToggle},
	}
}

// Apply writes the form values back onto settings.
func (s *SettingsForm) Apply(settings *models.Settings) {
	for _, f := range s.fields {
		switch f.Key {
		case "api_url":
			settings.Backend.APIURL = f.Value
		case "timeout_seconds":
			if n, err := strconv.Atoi(f.Value); err == nil && n > 0 {
				settings.Backend.TimeoutSeconds = n
			}
		case "num_samples":
			if n, err := strconv.Atoi(f.Value); err == nil && n > 0 {
				settings.Generation.NumSamples = n
			}
		case "duration":
			if n, err := strconv.Atoi(f.Value); err == nil && n > 0 {
				settings.Generation.Duration = n
			}
		case "check_on_startup":
			settings.Updates.CheckOnStartup = f.BoolValue
		case "telemetry":
			settings.Telemetry.Enabled = f.BoolValue
		}
	}
}

// SetSize updates dimensions.
func (s *SettingsForm) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = width - 24
}

// MoveUp moves cursor up.
func (s *SettingsForm) MoveUp() {
	if !s.editing && s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves cursor down.
func (s *SettingsForm) MoveDown() {
	if !s.editing && s.cursor < len(s.fields)-1 {
		s.cursor++
	}
}

// Toggle flips a boolean field. Returns true when a value changed.
func (s *SettingsForm) Toggle() bool {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false
	}
	f := &s.fields[s.cursor]
	if f.Type != fieldToggle {
		return false
	}
	f.BoolValue = !f.BoolValue
	return true
}

// StartEdit begins inline editing of the current text field.
func (s *SettingsForm) StartEdit() bool {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false
	}
	f := s.fields[s.cursor]
	if f.Type == fieldToggle {
		return false
	}
	s.editing = true
	s.input.SetValue(f.Value)
	s.input.Focus()
	return true
}

// FinishEdit confirms the current edit. Returns true when a value changed.
func (s *SettingsForm) FinishEdit() bool {
	if !s.editing {
		return false
	}
	s.editing = false
	s.input.Blur()

	f := &s.fields[s.cursor]
	newVal := strings.TrimSpace(s.input.Value())

	if f.Type == fieldInt {
		if _, err := strconv.Atoi(newVal); err != nil {
			return false
		}
	}
	if newVal != f.Value {
		f.Value = newVal
		return true
	}
	return false
}

// CancelEdit cancels the current edit.
func (s *SettingsForm) CancelEdit() {
	s.editing = false
	s.input.Blur()
}

// IsEditing returns whether a field is being edited.
func (s *SettingsForm) IsEditing() bool {
	return s.editing
}

// InputModel returns the text input model for Update forwarding.
func (s *SettingsForm) InputModel() *textinput.Model {
	return &s.input
}

// View renders the settings form.
func (s *SettingsForm) View() string {
	if len(s.fields) == 0 {
		return emptyStateStyle.Render("Loading settings...")
	}

	var lines []string
	for i, f := range s.fields {
		var line string
		label := settingsLabelStyle.Render(f.Label + ":")

		if f.Type == fieldToggle {
			var val string
			if f.BoolValue {
				val = settingsToggleOn.Render("[ON]")
			} else {
				val = settingsToggleOff.Render("[OFF]")
			}
			line = label + " " + val
		} else {
			if s.editing && i == s.cursor {
				line = label + " " + s.input.View()
			} else {
				val := f.Value
				if val == "" {
					val = emptyStateStyle.Render("(empty)")
				} else {
					val = settingsValueStyle.Render(val)
				}
				line = label + " " + val
			}
		}

		if i == s.cursor {
			line = settingsCursorStyle.Width(s.width).Render(line)
		}
		lines = append(lines, line)
	}

	note := emptyStateStyle.Render("Settings persist to ~/.t2s-studio/settings.yaml")
	lines = append(lines, "", note)

	return strings.Join(lines, "\n")
}
