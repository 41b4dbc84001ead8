package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit key.Binding
	Help key.Binding
	Tab  key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("Ctrl+q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("Ctrl+h", "help"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch panel"),
	),
}

// PromptListKeys are active when the prompt list is focused.
type PromptListKeys struct {
	Up       key.Binding
	Down     key.Binding
	New      key.Binding
	Generate key.Binding
	Favorite key.Binding
	Open     key.Binding
	Refresh  key.Binding
}

var promptListKeys = PromptListKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	New: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "new prompt"),
	),
	Generate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "generate"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	Open: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "open in editor"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
}

// ExperimentKeys are active when the experiment list is focused.
type ExperimentKeys struct {
	Up      key.Binding
	Down    key.Binding
	New     key.Binding
	Select  key.Binding
	Compare key.Binding
	Results key.Binding
	Refresh key.Binding
}

var experimentKeys = ExperimentKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	New: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "new experiment"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "attach run"),
	),
	Compare: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "mark for compare"),
	),
	Results: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "show comparison"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
}

// AdapterKeys are active when the adapter list is focused.
type AdapterKeys struct {
	Up       key.Binding
	Down     key.Binding
	New      key.Binding
	Activate key.Binding
	Delete   key.Binding
	Refresh  key.Binding
}

var adapterKeys = AdapterKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	New: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "new adapter"),
	),
	Activate: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "activate latest"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
}

// DatasetKeys are active when the dataset list is focused.
type DatasetKeys struct {
	Up      key.Binding
	Down    key.Binding
	New     key.Binding
	Export  key.Binding
	Delete  key.Binding
	Refresh key.Binding
}

var datasetKeys = DatasetKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	New: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "new dataset"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
}

// SettingsKeys are active when the settings form is focused.
type SettingsKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Enter  key.Binding
}

var settingsKeys = SettingsKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "toggle"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "edit"),
	),
}

// LogKeys are active when the log viewer is focused.
type LogKeys struct {
	Save key.Binding
}

var logKeys = LogKeys{
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save log"),
	),
}

// FeedbackKeys are active when the feedback panel is focused.
type FeedbackKeys struct {
	Left   key.Binding
	Right  key.Binding
	Mode   key.Binding
	Submit key.Binding
}

var feedbackKeys = FeedbackKeys{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/l", "select sample"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("h/l", "select sample"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "switch mode"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "submit"),
	),
}

// TabSwitchKeys switch left panel tabs.
type TabSwitchKeys struct {
	Tab1 key.Binding
	Tab2 key.Binding
	Tab3 key.Binding
	Tab4 key.Binding
	Tab5 key.Binding
}

var tabSwitchKeys = TabSwitchKeys{
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Prompts"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Experiments"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Adapters"),
	),
	Tab4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Datasets"),
	),
	Tab5: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "Settings"),
	),
}

// RightTabKeys cycle right panel tabs.
type RightTabKeys struct {
	Prev key.Binding
	Next key.Binding
}

var rightTabKeys = RightTabKeys{
	Prev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[/]", "cycle view"),
	),
	Next: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("[/]", "cycle view"),
	),
}

// OverlayKeys are active when an overlay is shown.
type OverlayKeys struct {
	Save   key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

var overlayKeys = OverlayKeys{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
