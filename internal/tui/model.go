package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/config"
	"github.com/text2song/studio/internal/models"
	"github.com/text2song/studio/internal/telemetry"
)

// Left tab indexes.
const (
	tabPrompts = iota
	tabExperiments
	tabAdapters
	tabDatasets
	tabSettings
)

// Right tab indexes.
const (
	tabLogs = iota
	tabMetrics
	tabFeedback
)

const jobPollLimit = 120

// Model is the root bubbletea model.
type Model struct {
	client    *api.Client
	settings  *models.Settings
	program   *programRef
	watcher   *config.Watcher
	analytics *telemetry.Client

	// promptCache avoids refetching prompt text when the feedback panel
	// revisits the same job.
	promptCache *lru.Cache[string, string]

	width  int
	height int
	ready  bool

	splitRatio   float64
	dragging     bool
	focusedPanel int // 0 = left, 1 = right
	leftTab      int
	rightTab     int

	promptList    *PromptList
	expList       *ExperimentList
	adapterList   *AdapterList
	datasetList   *DatasetList
	settingsForm  *SettingsForm
	logViewer     *LogViewer
	metricsChart  *MetricsChart
	feedbackPanel *FeedbackPanel

	activeOverlay int
	promptForm    *PromptForm
	expForm       *ExperimentForm
	adapterForm   *AdapterForm
	datasetForm   *DatasetForm
	compareRuns   []api.ExperimentRun

	confirmMode   int
	confirmTarget string // name shown in the prompt
	confirmID     string // id acted on

	activeJob *api.GenerationJob
	jobPolls  int

	err       error
	savedNote string
}

// NewModel creates the root model.
func NewModel(client *api.Client, settings *models.Settings, watcher *config.Watcher, analytics *telemetry.Client, program *programRef) *Model {
	cache, _ := lru.New[string, string](256)

	sf := NewSettingsForm()
	sf.Load(settings)

	return &Model{
		client:        client,
		settings:      settings,
		program:       program,
		watcher:       watcher,
		analytics:     analytics,
		promptCache:   cache,
		splitRatio:    0.45,
		promptList:    NewPromptList(),
		expList:       NewExperimentList(),
		adapterList:   NewAdapterList(),
		datasetList:   NewDatasetList(),
		settingsForm:  sf,
		logViewer:     NewLogViewer(),
		metricsChart:  NewMetricsChart(),
		feedbackPanel: NewFeedbackPanel(),
	}
}

// Init kicks off the initial data loads and background ticks.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadPromptsCmd(m.client),
		loadPromptFavoritesCmd(m.client),
		loadExperimentsCmd(m.client),
		loadAdaptersCmd(m.client),
		loadDatasetsCmd(m.client),
		spinnerTick(),
		runPollTick(),
	}
	if m.watcher != nil {
		cmds = append(cmds, watchSettingsCmd(m.watcher, m.program))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case PromptsLoadedMsg:
		m.promptList.SetPrompts(msg.Prompts)
		return m, nil

	case PromptFavoritesMsg:
		m.promptList.SetFavorites(msg.IDs)
		return m, nil

	case FavoriteToggledMsg:
		m.promptList.SetFavorite(msg.TargetID, msg.Favorite != nil)
		return m, nil

	case ExperimentsLoadedMsg:
		m.expList.SetExperiments(msg.Experiments)
		// Fetch runs eagerly so they nest under their experiments.
		var cmds []tea.Cmd
		for _, exp := range msg.Experiments {
			if exp.RunCount > 0 {
				cmds = append(cmds, loadRunsCmd(m.client, exp.ID))
			}
		}
		return m, tea.Batch(cmds...)

	case RunsLoadedMsg:
		m.expList.SetRuns(msg.ExperimentID, msg.Runs)
		if exp := m.expList.SelectedExperiment(); exp != nil && exp.ID == msg.ExperimentID {
			m.metricsChart.SetRuns(msg.Runs)
		}
		return m, nil

	case AdaptersLoadedMsg:
		m.adapterList.SetAdapters(msg.Adapters)
		return m, nil

	case DatasetsLoadedMsg:
		m.datasetList.SetDatasets(msg.Datasets)
		return m, nil

	case GenerationStartedMsg:
		m.activeJob = msg.Job
		m.jobPolls = 0
		m.closeOverlay()
		m.analytics.Capture("generation_started", map[string]any{"job_id": msg.Job.ID})
		return m, jobPollTick()

	case jobPollTickMsg:
		if m.activeJob == nil || m.activeJob.Status.Terminal() {
			return m, nil
		}
		if m.jobPolls >= jobPollLimit {
			m.err = errJobTimeout
			return m, clearErrorAfter(5 * time.Second)
		}
		m.jobPolls++
		return m, tea.Batch(pollJobCmd(m.client, m.activeJob.ID), jobPollTick())

	case JobUpdatedMsg:
		m.activeJob = msg.Job
		if msg.Job.Status == api.JobCompleted {
			return m, loadJobFeedbackCmd(m.client, msg.Job.ID)
		}
		return m, nil

	case JobFeedbackLoadedMsg:
		m.feedbackPanel.SetFeedback(msg.Feedback)
		if msg.Feedback != nil && msg.Feedback.PromptID != "" {
			return m, loadPromptTextCmd(m.client, m.promptCache, msg.Feedback.PromptID)
		}
		return m, nil

	case PromptTextMsg:
		if m.feedbackPanel.PromptID() == msg.ID {
			m.feedbackPanel.SetPromptText(msg.Text)
		}
		return m, nil

	case FeedbackSavedMsg:
		m.savedNote = "Feedback saved"
		m.feedbackPanel.ClearPending()
		var cmd tea.Cmd
		if m.activeJob != nil {
			cmd = loadJobFeedbackCmd(m.client, m.activeJob.ID)
		}
		return m, tea.Batch(cmd, clearSavedAfter(2*time.Second))

	case ExperimentSavedMsg:
		m.closeOverlay()
		m.savedNote = "Experiment created"
		return m, tea.Batch(loadExperimentsCmd(m.client), clearSavedAfter(2*time.Second))

	case AdapterSavedMsg:
		m.closeOverlay()
		m.savedNote = "Adapter saved"
		return m, tea.Batch(loadAdaptersCmd(m.client), clearSavedAfter(2*time.Second))

	case AdapterDeletedMsg:
		m.savedNote = "Adapter deleted"
		return m, tea.Batch(loadAdaptersCmd(m.client), clearSavedAfter(2*time.Second))

	case AdapterVersionActivatedMsg:
		m.savedNote = "Version activated"
		return m, tea.Batch(loadAdaptersCmd(m.client), clearSavedAfter(2*time.Second))

	case DatasetSavedMsg:
		m.closeOverlay()
		m.savedNote = "Dataset created"
		return m, tea.Batch(loadDatasetsCmd(m.client), clearSavedAfter(2*time.Second))

	case DatasetDeletedMsg:
		m.savedNote = "Dataset deleted"
		return m, tea.Batch(loadDatasetsCmd(m.client), clearSavedAfter(2*time.Second))

	case DatasetExportedMsg:
		m.savedNote = "Exported to " + msg.Export.ExportPath
		return m, tea.Batch(loadDatasetsCmd(m.client), clearSavedAfter(4*time.Second))

	case LogSavedMsg:
		m.savedNote = "Log saved (" + msg.Entry.RunID + ")"
		return m, clearSavedAfter(2*time.Second)

	case SettingsSavedMsg:
		m.savedNote = "Settings saved"
		return m, clearSavedAfter(2*time.Second)

	case SettingsChangedMsg:
		// Another process rewrote the settings file; adopt it and point
		// the client at the possibly-new backend.
		m.settings = msg.Settings
		m.client = api.NewClient(config.APIConfig(msg.Settings))
		m.settingsForm.Load(msg.Settings)
		return m, nil

	case LogSessionMsg:
		m.logViewer.Refresh()
		return m, nil

	case runPollTickMsg:
		var cmd tea.Cmd
		if exp := m.expList.SelectedExperiment(); exp != nil && m.expList.HasLiveRun() {
			cmd = loadRunsCmd(m.client, exp.ID)
		}
		return m, tea.Batch(cmd, runPollTick())

	case spinnerTickMsg:
		m.expList.Tick()
		return m, spinnerTick()

	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearSavedMsg:
		m.savedNote = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirmation prompts swallow everything else.
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Overlays get keys before global shortcuts (except quit).
	if m.activeOverlay != overlayNone {
		if msg.String() == "ctrl+q" {
			return m.doQuit()
		}
		return m.handleOverlayKey(msg)
	}

	switch msg.String() {
	case "ctrl+q":
		if m.activeJob != nil && !m.activeJob.Status.Terminal() {
			m.confirmMode = confirmQuit
			return m, nil
		}
		return m.doQuit()
	case "ctrl+h":
		m.activeOverlay = overlayHelp
		return m, nil
	case "tab":
		m.focusedPanel = 1 - m.focusedPanel
		return m, nil
	case "ctrl+x":
		if m.activeJob != nil && !m.activeJob.Status.Terminal() {
			m.confirmMode = confirmCancelJob
			m.confirmID = m.activeJob.ID
		}
		return m, nil
	}

	// Tab switching is global unless a text input is capturing keys.
	if !m.inputCapturing() {
		switch msg.String() {
		case "1":
			m.leftTab = tabPrompts
			m.focusedPanel = 0
			return m, nil
		case "2":
			m.leftTab = tabExperiments
			m.focusedPanel = 0
			return m, nil
		case "3":
			m.leftTab = tabAdapters
			m.focusedPanel = 0
			return m, nil
		case "4":
			m.leftTab = tabDatasets
			m.focusedPanel = 0
			return m, nil
		case "5":
			m.leftTab = tabSettings
			m.focusedPanel = 0
			return m, nil
		case "[":
			m.rightTab--
			if m.rightTab < 0 {
				m.rightTab = tabFeedback
			}
			return m, nil
		case "]":
			m.rightTab = (m.rightTab + 1) % 3
			return m, nil
		}
	}

	if m.focusedPanel == 0 {
		return m.handleLeftPanelKey(msg)
	}
	return m.handleRightPanelKey(msg)
}

// inputCapturing reports whether a focused text field should receive
// digit keys instead of the tab-switch shortcuts.
func (m *Model) inputCapturing() bool {
	if m.leftTab == tabSettings && m.focusedPanel == 0 && m.settingsForm.IsEditing() {
		return true
	}
	if m.focusedPanel == 1 && m.rightTab == tabFeedback {
		// Digits pick ratings in the feedback panel.
		return true
	}
	return false
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		mode := m.confirmMode
		id := m.confirmID
		m.confirmMode = confirmNone
		m.confirmID = ""
		m.confirmTarget = ""
		switch mode {
		case confirmDeleteAdapter:
			return m, deleteAdapterCmd(m.client, id)
		case confirmDeleteDataset:
			return m, deleteDatasetCmd(m.client, id)
		case confirmCancelJob:
			return m, cancelJobCmd(m.client, id)
		case confirmQuit:
			return m.doQuit()
		}
	case "n", "esc":
		m.confirmMode = confirmNone
		m.confirmID = ""
		m.confirmTarget = ""
	}
	return m, nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.activeOverlay {
	case overlayHelp:
		if msg.String() == "esc" || msg.String() == "ctrl+h" {
			m.activeOverlay = overlayNone
		}
		return m, nil

	case overlayRunCompare:
		if msg.String() == "esc" {
			m.activeOverlay = overlayNone
			m.compareRuns = nil
		}
		return m, nil

	case overlayPromptEditor:
		return m.handlePromptFormKey(msg)

	case overlayExperimentForm:
		return m.handleExperimentFormKey(msg)

	case overlayAdapterForm:
		return m.handleAdapterFormKey(msg)

	case overlayDatasetForm:
		return m.handleDatasetFormKey(msg)
	}
	return m, nil
}

func (m *Model) handlePromptFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeOverlay()
		return m, nil
	case "tab":
		m.promptForm.FocusNext()
		return m, nil
	case "shift+tab":
		m.promptForm.FocusPrev()
		return m, nil
	case "ctrl+s":
		req, err := m.promptForm.Build()
		if err != nil {
			// Validation failed locally; nothing goes on the wire.
			return m, nil
		}
		return m, submitGenerationCmd(m.client, req, m.settings.Generation)
	}

	if m.promptForm.FocusIndex() == 0 {
		ta := m.promptForm.TextArea()
		newTA, cmd := ta.Update(msg)
		*ta = newTA
		return m, cmd
	}
	ti := m.promptForm.Inputs()[m.promptForm.FocusIndex()-1]
	newTI, cmd := ti.Update(msg)
	*ti = newTI
	return m, cmd
}

func (m *Model) handleExperimentFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeOverlay()
		return m, nil
	case "tab":
		m.expForm.FocusNext()
		return m, nil
	case "shift+tab":
		m.expForm.FocusPrev()
		return m, nil
	case "ctrl+s":
		req, err := m.expForm.Build()
		if err != nil {
			return m, nil
		}
		return m, createExperimentCmd(m.client, req)
	}

	switch m.expForm.FocusIndex() {
	case 0:
		ti := m.expForm.NameInput()
		newTI, cmd := ti.Update(msg)
		*ti = newTI
		return m, cmd
	case 1:
		ta := m.expForm.DescArea()
		newTA, cmd := ta.Update(msg)
		*ta = newTA
		return m, cmd
	default:
		ti := m.expForm.DatasetInput()
		newTI, cmd := ti.Update(msg)
		*ti = newTI
		return m, cmd
	}
}

func (m *Model) handleAdapterFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeOverlay()
		return m, nil
	case "tab":
		m.adapterForm.FocusNext()
		return m, nil
	case "shift+tab":
		m.adapterForm.FocusPrev()
		return m, nil
	case "ctrl+s":
		req, err := m.adapterForm.Build()
		if err != nil {
			return m, nil
		}
		return m, createAdapterCmd(m.client, req)
	}

	ti := m.adapterForm.Inputs()[m.adapterForm.FocusIndex()]
	newTI, cmd := ti.Update(msg)
	*ti = newTI
	return m, cmd
}

func (m *Model) handleDatasetFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeOverlay()
		return m, nil
	case "tab":
		m.datasetForm.FocusNext()
		return m, nil
	case "shift+tab":
		m.datasetForm.FocusPrev()
		return m, nil
	case "ctrl+s":
		req, err := m.datasetForm.Build()
		if err != nil {
			return m, nil
		}
		return m, createDatasetCmd(m.client, req)
	case " ":
		if m.datasetForm.FocusIndex() == 3 {
			m.datasetForm.ToggleType()
			return m, nil
		}
	}

	if m.datasetForm.FocusIndex() < 3 {
		ti := m.datasetForm.Inputs()[m.datasetForm.FocusIndex()]
		newTI, cmd := ti.Update(msg)
		*ti = newTI
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleLeftPanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.leftTab {
	case tabPrompts:
		return m.handlePromptListKey(msg)
	case tabExperiments:
		return m.handleExperimentListKey(msg)
	case tabAdapters:
		return m.handleAdapterListKey(msg)
	case tabDatasets:
		return m.handleDatasetListKey(msg)
	case tabSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m *Model) handlePromptListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.promptList.MoveUp()
	case "down", "j":
		m.promptList.MoveDown()
	case "a":
		m.promptForm = NewPromptForm(m.overlayWidth())
		m.activeOverlay = overlayPromptEditor
	case "g":
		if p := m.promptList.Selected(); p != nil {
			m.promptForm = NewPromptForm(m.overlayWidth())
			m.promptForm.PreFill(p)
			m.activeOverlay = overlayPromptEditor
		}
	case "f":
		if p := m.promptList.Selected(); p != nil {
			return m, toggleFavoriteCmd(m.client, api.TargetPrompt, p.ID)
		}
	case "enter":
		if p := m.promptList.Selected(); p != nil {
			return m, generateFromPromptCmd(m.client, p.ID, m.settings.Generation)
		}
	case "R":
		return m, tea.Batch(loadPromptsCmd(m.client), loadPromptFavoritesCmd(m.client))
	}
	return m, nil
}

func (m *Model) handleExperimentListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.expList.MoveUp()
		m.syncMetricsToSelection()
	case "down", "j":
		m.expList.MoveDown()
		m.syncMetricsToSelection()
	case "a":
		m.expForm = NewExperimentForm(m.overlayWidth())
		m.activeOverlay = overlayExperimentForm
	case "enter":
		if run := m.expList.SelectedRun(); run != nil {
			m.attachRun(*run)
		} else if exp := m.expList.SelectedExperiment(); exp != nil {
			return m, loadRunsCmd(m.client, exp.ID)
		}
	case "c":
		m.expList.ToggleMark()
	case "C":
		m.compareRuns = m.expList.MarkedRuns()
		m.activeOverlay = overlayRunCompare
	case "R":
		return m, loadExperimentsCmd(m.client)
	}
	return m, nil
}

func (m *Model) handleAdapterListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.adapterList.MoveUp()
	case "down", "j":
		m.adapterList.MoveDown()
	case "a":
		m.adapterForm = NewAdapterForm(m.overlayWidth())
		m.activeOverlay = overlayAdapterForm
	case "v":
		if a := m.adapterList.Selected(); a != nil {
			return m, activateLatestVersionCmd(m.client, a.ID)
		}
	case "x":
		if a := m.adapterList.Selected(); a != nil {
			m.confirmMode = confirmDeleteAdapter
			m.confirmTarget = a.Name
			m.confirmID = a.ID
		}
	case "R":
		return m, loadAdaptersCmd(m.client)
	}
	return m, nil
}

func (m *Model) handleDatasetListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.datasetList.MoveUp()
	case "down", "j":
		m.datasetList.MoveDown()
	case "a":
		m.datasetForm = NewDatasetForm(m.overlayWidth())
		m.activeOverlay = overlayDatasetForm
	case "e":
		if d := m.datasetList.Selected(); d != nil {
			return m, exportDatasetCmd(m.client, d.ID)
		}
	case "x":
		if d := m.datasetList.Selected(); d != nil {
			m.confirmMode = confirmDeleteDataset
			m.confirmTarget = d.Name
			m.confirmID = d.ID
		}
	case "R":
		return m, loadDatasetsCmd(m.client)
	}
	return m, nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.settingsForm.IsEditing() {
		switch msg.String() {
		case "enter":
			if m.settingsForm.FinishEdit() {
				m.settingsForm.Apply(m.settings)
				return m, saveSettingsCmd(m.settings)
			}
			return m, nil
		case "esc":
			m.settingsForm.CancelEdit()
			return m, nil
		}
		ti := m.settingsForm.InputModel()
		newTI, cmd := ti.Update(msg)
		*ti = newTI
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		m.settingsForm.MoveUp()
	case "down", "j":
		m.settingsForm.MoveDown()
	case " ":
		if m.settingsForm.Toggle() {
			m.settingsForm.Apply(m.settings)
			return m, saveSettingsCmd(m.settings)
		}
	case "enter":
		m.settingsForm.StartEdit()
	}
	return m, nil
}

func (m *Model) handleRightPanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.rightTab {
	case tabLogs:
		return m.handleLogKey(msg)
	case tabMetrics:
		return m, nil
	case tabFeedback:
		return m.handleFeedbackKey(msg)
	}
	return m, nil
}

func (m *Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.logViewer.ScrollUp(1)
	case "down", "j":
		m.logViewer.ScrollDown(1)
	case "pgup":
		m.logViewer.PageUp()
	case "pgdown":
		m.logViewer.PageDown()
	case "s":
		run := m.logViewer.Run()
		session := m.logViewer.Session()
		if run == nil || session == nil {
			return m, nil
		}
		name := ""
		if run.Name != nil {
			name = *run.Name
		}
		return m, saveRunLogCmd(run.ID, run.ExperimentID, name, string(run.Status), session.Bytes())
	}
	return m, nil
}

func (m *Model) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.feedbackPanel.TagsFocused() {
		switch msg.String() {
		case "enter":
			return m.submitFeedback()
		case "esc":
			m.feedbackPanel.TagsInput().Blur()
			return m, nil
		}
		ti := m.feedbackPanel.TagsInput()
		newTI, cmd := ti.Update(msg)
		*ti = newTI
		return m, cmd
	}

	switch msg.String() {
	case "left", "h":
		m.feedbackPanel.MoveLeft()
	case "right", "l":
		m.feedbackPanel.MoveRight()
	case "m":
		m.feedbackPanel.CycleMode()
	case "1", "2", "3", "4", "5":
		if m.feedbackPanel.Mode() == modeRating {
			m.feedbackPanel.SetRating(int(msg.String()[0] - '0'))
		}
	case "o":
		m.feedbackPanel.CycleRejected()
	case "enter":
		return m.submitFeedback()
	}
	return m, nil
}

func (m *Model) submitFeedback() (tea.Model, tea.Cmd) {
	in, err := m.feedbackPanel.Build()
	if err != nil {
		m.err = err
		return m, clearErrorAfter(3 * time.Second)
	}
	return m, submitFeedbackCmd(m.client, in)
}

// attachRun points the right panel at a run: a fresh log session plus
// the metrics of its sibling runs.
func (m *Model) attachRun(run api.ExperimentRun) {
	m.logViewer.Attach(m.client, run, func() {
		m.program.Send(LogSessionMsg{})
	})
	m.metricsChart.SetRuns(m.expList.Runs(run.ExperimentID))
	m.focusedPanel = 1
	m.rightTab = tabLogs
	m.analytics.Capture("run_attached", map[string]any{"run_id": run.ID})
}

// syncMetricsToSelection keeps the metrics chart on the cursor's experiment.
func (m *Model) syncMetricsToSelection() {
	if exp := m.expList.SelectedExperiment(); exp != nil {
		m.metricsChart.SetRuns(m.expList.Runs(exp.ID))
	}
}

func (m *Model) closeOverlay() {
	m.activeOverlay = overlayNone
	m.promptForm = nil
	m.expForm = nil
	m.adapterForm = nil
	m.datasetForm = nil
	m.compareRuns = nil
}

func (m *Model) doQuit() (tea.Model, tea.Cmd) {
	m.logViewer.Detach()
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.program.Clear()
	return m, tea.Quit
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		layout := computeLayout(m.width, m.height, m.splitRatio)
		x := msg.X

		if x >= layout.dividerCol-1 && x <= layout.dividerCol+1 {
			m.dragging = true
			return nil
		}

		if x < layout.dividerCol {
			m.focusedPanel = 0
		} else {
			m.focusedPanel = 1
		}

	case tea.MouseActionRelease:
		m.dragging = false

	case tea.MouseActionMotion:
		if m.dragging {
			ratio := float64(msg.X) / float64(m.width)
			if ratio < 0.2 {
				ratio = 0.2
			}
			if ratio > 0.8 {
				ratio = 0.8
			}
			m.splitRatio = ratio
			m.updateDimensions()
		}
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollFocused(-3)
		case tea.MouseButtonWheelDown:
			m.scrollFocused(3)
		}
	}

	return nil
}

func (m *Model) scrollFocused(n int) {
	if m.focusedPanel == 0 {
		for i := 0; i < abs(n); i++ {
			switch m.leftTab {
			case tabPrompts:
				if n < 0 {
					m.promptList.MoveUp()
				} else {
					m.promptList.MoveDown()
				}
			case tabExperiments:
				if n < 0 {
					m.expList.MoveUp()
				} else {
					m.expList.MoveDown()
				}
			case tabAdapters:
				if n < 0 {
					m.adapterList.MoveUp()
				} else {
					m.adapterList.MoveDown()
				}
			case tabDatasets:
				if n < 0 {
					m.datasetList.MoveUp()
				} else {
					m.datasetList.MoveDown()
				}
			}
		}
		return
	}
	if m.rightTab == tabLogs {
		if n < 0 {
			m.logViewer.ScrollUp(-n)
		} else {
			m.logViewer.ScrollDown(n)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (m *Model) overlayWidth() int {
	w := m.width - 10
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height, m.splitRatio)
	innerHeight := layout.contentHeight - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	m.promptList.SetHeight(innerHeight)
	m.expList.SetHeight(innerHeight)
	m.adapterList.SetHeight(innerHeight)
	m.datasetList.SetHeight(innerHeight)
	m.settingsForm.SetSize(layout.leftWidth-2, innerHeight)
	m.logViewer.SetSize(layout.rightWidth-2, innerHeight)
	m.metricsChart.SetSize(layout.rightWidth-2, innerHeight)
	m.feedbackPanel.SetSize(layout.rightWidth-2, innerHeight)
}

// View renders the full screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < 60 || m.height < 15 {
		return "Terminal too small. Resize to at least 60x15."
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	header := renderHeader(m.leftTab, m.rightTab, m.activeJob, m.width)
	left := m.renderLeftPanel(layout)
	right := m.renderRightPanel(layout)
	panels := renderPanels(left, right, layout, m.focusedPanel)
	status := renderStatusBar(m, m.width)

	base := header + "\n" + panels + "\n" + status

	switch m.activeOverlay {
	case overlayHelp:
		return renderOverlay(base, renderHelp(m.width), m.width, m.height)
	case overlayPromptEditor:
		return renderOverlay(base, m.promptForm.View(), m.width, m.height)
	case overlayExperimentForm:
		return renderOverlay(base, m.expForm.View(), m.width, m.height)
	case overlayAdapterForm:
		return renderOverlay(base, m.adapterForm.View(), m.width, m.height)
	case overlayDatasetForm:
		return renderOverlay(base, m.datasetForm.View(), m.width, m.height)
	case overlayRunCompare:
		return renderOverlay(base, renderRunCompare(m.compareRuns, m.width), m.width, m.height)
	}

	return base
}

func (m *Model) renderLeftPanel(layout panelLayout) string {
	width := layout.leftWidth - 2
	switch m.leftTab {
	case tabPrompts:
		return m.promptList.View(width)
	case tabExperiments:
		return m.expList.View(width)
	case tabAdapters:
		return m.adapterList.View(width)
	case tabDatasets:
		return m.datasetList.View(width)
	case tabSettings:
		return m.settingsForm.View()
	}
	return ""
}

func (m *Model) renderRightPanel(layout panelLayout) string {
	switch m.rightTab {
	case tabLogs:
		return m.logViewer.View()
	case tabMetrics:
		return m.metricsChart.View()
	case tabFeedback:
		return m.feedbackPanel.View()
	}
	return ""
}

var errJobTimeout = errors.New("generation is taking too long; still running on the server")
