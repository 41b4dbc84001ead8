package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

// Feedback modes. Exactly one is active at a time and shapes the
// submitted record.
type feedbackMode int

const (
	modeRating feedbackMode = iota
	modePreference
	modeTags
)

var feedbackModeNames = []string{"Rating", "Preference", "Tags"}

var errNoSample = errors.New("no sample selected")

// FeedbackPanel collects feedback on the labeled samples of a
// generation job: a 1-5 rating, a pairwise preference, or tags.
type FeedbackPanel struct {
	feedback   *api.JobFeedback
	promptText string
	mode       feedbackMode
	cursor     int // selected sample index
	rejected   int // offset of the rejected sample in preference mode
	rating     int // pending rating value, 0 = unset
	tagsInput  textinput.Model
	width      int
	height     int
}

// NewFeedbackPanel creates a new feedback panel.
func NewFeedbackPanel() *FeedbackPanel {
	ti := textinput.New()
	ti.Placeholder = "groovy, muddy-mix, good-melody"
	ti.CharLimit = 200
	return &FeedbackPanel{
		tagsInput: ti,
		rejected:  1,
	}
}

// SetFeedback replaces the job feedback data.
func (fp *FeedbackPanel) SetFeedback(fb *api.JobFeedback) {
	fp.feedback = fb
	if fb != nil && fp.cursor >= len(fb.Samples) {
		fp.cursor = 0
	}
	fp.rating = 0
}

// SetPromptText sets the resolved prompt text shown in the header.
func (fp *FeedbackPanel) SetPromptText(text string) {
	fp.promptText = text
}

// PromptID returns the job's prompt ID, or "".
func (fp *FeedbackPanel) PromptID() string {
	if fp.feedback == nil {
		return ""
	}
	return fp.feedback.PromptID
}

// SetSize updates dimensions.
func (fp *FeedbackPanel) SetSize(width, height int) {
	fp.width = width
	fp.height = height
	fp.tagsInput.Width = width - 12
}

// Samples returns the labeled sample groups.
func (fp *FeedbackPanel) Samples() []api.SampleFeedbackGroup {
	if fp.feedback == nil {
		return nil
	}
	return fp.feedback.Samples
}

// Selected returns the sample under the cursor, or nil.
func (fp *FeedbackPanel) Selected() *api.SampleFeedbackGroup {
	samples := fp.Samples()
	if fp.cursor < 0 || fp.cursor >= len(samples) {
		return nil
	}
	return &samples[fp.cursor]
}

// MoveLeft selects the previous sample.
func (fp *FeedbackPanel) MoveLeft() {
	if fp.cursor > 0 {
		fp.cursor--
	}
}

// MoveRight selects the next sample.
func (fp *FeedbackPanel) MoveRight() {
	if fp.cursor < len(fp.Samples())-1 {
		fp.cursor++
	}
}

// CycleMode advances to the next feedback mode.
func (fp *FeedbackPanel) CycleMode() {
	fp.mode = (fp.mode + 1) % 3
	fp.rating = 0
	if fp.mode == modeTags {
		fp.tagsInput.Focus()
	} else {
		fp.tagsInput.Blur()
	}
}

// Mode returns the active feedback mode.
func (fp *FeedbackPanel) Mode() feedbackMode {
	return fp.mode
}

// SetRating stores a pending 1-5 rating.
func (fp *FeedbackPanel) SetRating(n int) {
	if n >= 1 && n <= 5 {
		fp.rating = n
	}
}

// CycleRejected advances the rejected sample in preference mode,
// skipping the selected winner.
func (fp *FeedbackPanel) CycleRejected() {
	n := len(fp.Samples())
	if n < 2 {
		return
	}
	fp.rejected++
	if fp.rejected >= n {
		fp.rejected = 0
	}
	if fp.rejected == fp.cursor {
		fp.rejected = (fp.rejected + 1) % n
	}
}

// TagsInput returns the tags input for update forwarding.
func (fp *FeedbackPanel) TagsInput() *textinput.Model {
	return &fp.tagsInput
}

// TagsFocused reports whether typed keys should go to the tags input.
func (fp *FeedbackPanel) TagsFocused() bool {
	return fp.mode == modeTags && fp.tagsInput.Focused()
}

// Build assembles the feedback record for the active mode. The union
// shape mirrors what the backend validates: exactly one variant.
func (fp *FeedbackPanel) Build() (api.FeedbackInput, error) {
	selected := fp.Selected()
	if selected == nil {
		return api.FeedbackInput{}, errNoSample
	}

	in := api.FeedbackInput{AudioID: selected.AudioID}

	switch fp.mode {
	case modeRating:
		if fp.rating == 0 {
			return api.FeedbackInput{}, errors.New("press 1-5 to pick a rating first")
		}
		in.Rating = &api.RatingFeedback{Value: float64(fp.rating), Criterion: "overall"}

	case modePreference:
		samples := fp.Samples()
		if len(samples) < 2 {
			return api.FeedbackInput{}, errors.New("preference needs at least two samples")
		}
		rejected := fp.rejected
		if rejected == fp.cursor || rejected >= len(samples) {
			rejected = (fp.cursor + 1) % len(samples)
		}
		in.Preference = &api.PreferenceFeedback{PreferredOver: samples[rejected].AudioID}

	case modeTags:
		var tags []string
		for _, t := range strings.Split(fp.tagsInput.Value(), ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		if len(tags) == 0 {
			return api.FeedbackInput{}, errors.New("enter at least one tag")
		}
		in.Tags = tags
	}

	return in, nil
}

// ClearPending resets mode-specific pending state after a submit.
func (fp *FeedbackPanel) ClearPending() {
	fp.rating = 0
	fp.tagsInput.SetValue("")
}

// View renders the feedback panel.
func (fp *FeedbackPanel) View() string {
	if fp.feedback == nil || len(fp.feedback.Samples) == 0 {
		return emptyStateStyle.
			Width(fp.width).
			Align(lipgloss.Center).
			Render("\nNo samples to review. Generate from a prompt first.")
	}

	var lines []string

	// Prompt header
	prompt := fp.promptText
	if prompt == "" {
		prompt = fp.feedback.PromptID
	}
	lines = append(lines, sectionHeaderStyle.Render("Prompt: ")+
		emptyStateStyle.Render(prompt), "")

	// Sample selector
	var tabs []string
	for i, s := range fp.feedback.Samples {
		label := s.Label
		if s.AverageRating != nil {
			label += fmt.Sprintf(" %.1f", *s.AverageRating)
		}
		if i == fp.cursor {
			tabs = append(tabs, sampleSelectedStyle.Render(label))
		} else {
			tabs = append(tabs, sampleLabelStyle.Render(label))
		}
	}
	lines = append(lines, strings.Join(tabs, " "), "")

	// Mode selector
	var modes []string
	for i, name := range feedbackModeNames {
		if feedbackMode(i) == fp.mode {
			modes = append(modes, feedbackModeStyle.Render("["+name+"]"))
		} else {
			modes = append(modes, emptyStateStyle.Render(" "+name+" "))
		}
	}
	lines = append(lines, strings.Join(modes, " ")+emptyStateStyle.Render("  (m to switch)"), "")

	// Mode body
	switch fp.mode {
	case modeRating:
		lines = append(lines, fp.viewRating())
	case modePreference:
		lines = append(lines, fp.viewPreference())
	case modeTags:
		lines = append(lines, "Tags: "+fp.tagsInput.View())
	}

	// Existing feedback on the selected sample
	if sel := fp.Selected(); sel != nil && sel.FeedbackCount > 0 {
		lines = append(lines, "", emptyStateStyle.Render(
			fmt.Sprintf("%d feedback records on sample %s", sel.FeedbackCount, sel.Label)))
		if len(sel.Tags) > 0 {
			lines = append(lines, emptyStateStyle.Render("tags: "+strings.Join(sel.Tags, ", ")))
		}
	}

	lines = append(lines, "", emptyStateStyle.Render("Enter submits one feedback record"))

	return strings.Join(lines, "\n")
}

func (fp *FeedbackPanel) viewRating() string {
	var stars []string
	for i := 1; i <= 5; i++ {
		if i <= fp.rating {
			stars = append(stars, compareMarkStyle.Render("★"))
		} else {
			stars = append(stars, emptyStateStyle.Render("☆"))
		}
	}
	return "Rating: " + strings.Join(stars, " ") + emptyStateStyle.Render("  (press 1-5)")
}

func (fp *FeedbackPanel) viewPreference() string {
	samples := fp.Samples()
	if len(samples) < 2 {
		return emptyStateStyle.Render("Preference needs at least two samples.")
	}
	rejected := fp.rejected
	if rejected == fp.cursor || rejected >= len(samples) {
		rejected = (fp.cursor + 1) % len(samples)
	}
	winner := samples[fp.cursor].Label
	loser := samples[rejected].Label
	return fmt.Sprintf("%s %s %s%s",
		itemCompletedStyle.Render(winner+" wins"),
		emptyStateStyle.Render("over"),
		itemFailedStyle.Render(loser),
		emptyStateStyle.Render("  (o cycles the loser)"))
}
