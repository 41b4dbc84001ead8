package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

// ErrEmptyPrompt is returned when the editor is submitted without text.
var ErrEmptyPrompt = errors.New("prompt text must not be empty")

// PromptForm is the prompt editor overlay: free text plus musical
// attributes, submitted as a generation request.
type PromptForm struct {
	textArea    textarea.Model
	styleInput  textinput.Model
	moodInput   textinput.Model
	tempoInput  textinput.Model
	instrInput  textinput.Model
	durInput    textinput.Model
	focusIndex  int // 0=text, 1=style, 2=mood, 3=tempo, 4=instruments, 5=duration
	width       int
	fieldErr    string
}

const promptFormFields = 6

// NewPromptForm creates an empty prompt editor.
func NewPromptForm(width int) *PromptForm {
	ta := textarea.New()
	ta.Placeholder = "Describe the music to generate"
	ta.SetWidth(width - 8)
	ta.SetHeight(4)

	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = width - 8
		return ti
	}

	pf := &PromptForm{
		textArea:   ta,
		styleInput: mk("jazz, lo-fi, orchestral...", 60),
		moodInput:  mk("calm, energetic...", 60),
		tempoInput: mk("bpm (optional)", 3),
		instrInput: mk("piano, drums (comma separated)", 120),
		durInput:   mk("seconds (optional)", 3),
		width:      width,
	}
	pf.textArea.Focus()
	return pf
}

// PreFill loads an existing prompt into the editor.
func (pf *PromptForm) PreFill(p *api.Prompt) {
	pf.textArea.SetValue(p.Text)
	if a := p.Attributes; a != nil {
		pf.styleInput.SetValue(a.Style)
		pf.moodInput.SetValue(a.Mood)
		if a.Tempo != nil {
			pf.tempoInput.SetValue(strconv.Itoa(*a.Tempo))
		}
		pf.instrInput.SetValue(strings.Join(a.PrimaryInstruments, ", "))
		if a.Duration != nil {
			pf.durInput.SetValue(strconv.Itoa(*a.Duration))
		}
	}
}

// FocusNext moves to the next field.
func (pf *PromptForm) FocusNext() {
	pf.blurAll()
	pf.focusIndex = (pf.focusIndex + 1) % promptFormFields
	pf.focusCurrent()
}

// FocusPrev moves to the previous field.
func (pf *PromptForm) FocusPrev() {
	pf.blurAll()
	pf.focusIndex--
	if pf.focusIndex < 0 {
		pf.focusIndex = promptFormFields - 1
	}
	pf.focusCurrent()
}

func (pf *PromptForm) blurAll() {
	pf.textArea.Blur()
	pf.styleInput.Blur()
	pf.moodInput.Blur()
	pf.tempoInput.Blur()
	pf.instrInput.Blur()
	pf.durInput.Blur()
}

func (pf *PromptForm) focusCurrent() {
	switch pf.focusIndex {
	case 0:
		pf.textArea.Focus()
	case 1:
		pf.styleInput.Focus()
	case 2:
		pf.moodInput.Focus()
	case 3:
		pf.tempoInput.Focus()
	case 4:
		pf.instrInput.Focus()
	case 5:
		pf.durInput.Focus()
	}
}

// FocusIndex returns the currently focused field index.
func (pf *PromptForm) FocusIndex() int {
	return pf.focusIndex
}

// TextArea returns the text area model for update forwarding.
func (pf *PromptForm) TextArea() *textarea.Model {
	return &pf.textArea
}

// Inputs returns the attribute inputs in focus order, after the text area.
func (pf *PromptForm) Inputs() []*textinput.Model {
	return []*textinput.Model{
		&pf.styleInput, &pf.moodInput, &pf.tempoInput, &pf.instrInput, &pf.durInput,
	}
}

// Build validates the form and assembles the create request. Empty text
// is rejected here, before anything touches the network.
func (pf *PromptForm) Build() (api.PromptCreate, error) {
	text := strings.TrimSpace(pf.textArea.Value())
	if text == "" {
		pf.fieldErr = "Prompt text is required"
		return api.PromptCreate{}, ErrEmptyPrompt
	}
	pf.fieldErr = ""

	attrs := &api.PromptAttributes{
		Style: strings.TrimSpace(pf.styleInput.Value()),
		Mood:  strings.TrimSpace(pf.moodInput.Value()),
	}
	if v := strings.TrimSpace(pf.tempoInput.Value()); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			attrs.Tempo = &n
		}
	}
	if v := strings.TrimSpace(pf.durInput.Value()); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			attrs.Duration = &n
		}
	}
	for _, instr := range strings.Split(pf.instrInput.Value(), ",") {
		if instr = strings.TrimSpace(instr); instr != "" {
			attrs.PrimaryInstruments = append(attrs.PrimaryInstruments, instr)
		}
	}

	if attrs.Style == "" && attrs.Mood == "" && attrs.Tempo == nil &&
		attrs.Duration == nil && len(attrs.PrimaryInstruments) == 0 {
		attrs = nil
	}

	return api.PromptCreate{Text: text, Attributes: attrs}, nil
}

// View renders the prompt editor.
func (pf *PromptForm) View() string {
	formWidth := pf.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	label := func(s string) string {
		return lipgloss.NewStyle().Bold(true).Render(s)
	}

	parts := make([]string, 0, 20)
	parts = append(parts, overlayTitleStyle.Render("Prompt Editor"))

	if pf.fieldErr != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorRed).Render(pf.fieldErr), "")
	}

	parts = append(parts, label("Text:"), pf.textArea.View(), "")
	parts = append(parts, label("Style:"), pf.styleInput.View(), "")
	parts = append(parts, label("Mood:"), pf.moodInput.View(), "")
	parts = append(parts, label("Tempo:"), pf.tempoInput.View(), "")
	parts = append(parts, label("Instruments:"), pf.instrInput.View(), "")
	parts = append(parts, label("Duration:"), pf.durInput.View(), "")

	footer := emptyStateStyle.Render("Ctrl+s generate  |  Tab next field  |  Esc cancel")
	parts = append(parts, footer)

	content := strings.Join(parts, "\n")
	return overlayStyle.Width(formWidth).Render(content)
}
